package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"onesat-market/internal/auth"
)

const (
	// TokenCookieName carries the opaque provider credential. HttpOnly.
	TokenCookieName = "handcash_auth_token"

	// ProfileCookieName carries the display snapshot read by page script.
	ProfileCookieName = "handcash_user"

	// MaxAge is the lifetime of both cookies.
	MaxAge = 7 * 24 * time.Hour
)

// ErrNoSession is returned when the secret cookie is absent.
var ErrNoSession = errors.New("session: no auth token cookie")

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// OptionsFor returns the cookie policy of a deployment. Production must
// tolerate the cross-site return from the provider.
func OptionsFor(production bool) CookieOptions {
	if production {
		return CookieOptions{Path: "/", Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookieOptions{Path: "/", Secure: false, SameSite: http.SameSiteStrictMode}
}

func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	return o
}

func (o CookieOptions) cookie(name, value string, httpOnly bool, maxAge int) *http.Cookie {
	o = o.normalize()
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	}
}

// Issue writes both session cookies.
func Issue(w http.ResponseWriter, token auth.AuthToken, profile auth.Profile, opts CookieOptions) error {
	if token.Empty() {
		return ErrNoSession
	}

	encoded, err := EncodeProfile(profile)
	if err != nil {
		return err
	}

	maxAge := int(MaxAge.Seconds())
	http.SetCookie(w, opts.cookie(TokenCookieName, token.Reveal(), true, maxAge))
	http.SetCookie(w, opts.cookie(ProfileCookieName, encoded, false, maxAge))
	return nil
}

// Clear deletes both session cookies. Safe when they are already absent.
func Clear(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, opts.cookie(TokenCookieName, "", true, -1))
	http.SetCookie(w, opts.cookie(ProfileCookieName, "", false, -1))
}

// Token reads the secret cookie. This is the only authorization input.
func Token(r *http.Request) (auth.AuthToken, error) {
	c, err := r.Cookie(TokenCookieName)
	if err != nil {
		return auth.AuthToken{}, ErrNoSession
	}

	tok := auth.NewAuthToken(c.Value)
	if tok.Empty() {
		return auth.AuthToken{}, ErrNoSession
	}
	return tok, nil
}

// DisplayProfile reads the display snapshot. found is false when the
// cookie is absent; err is set when it is present but corrupt.
func DisplayProfile(r *http.Request) (profile auth.Profile, found bool, err error) {
	c, cerr := r.Cookie(ProfileCookieName)
	if cerr != nil || c.Value == "" {
		return auth.Profile{}, false, nil
	}

	p, err := DecodeProfile(c.Value)
	if err != nil {
		return auth.Profile{}, true, err
	}
	return p, true, nil
}

// EncodeProfile renders the profile as URL-escaped JSON so the value
// survives cookie sanitizing and decodes with decodeURIComponent.
func EncodeProfile(p auth.Profile) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("session: encode profile: %w", err)
	}
	return url.PathEscape(string(raw)), nil
}

func DecodeProfile(value string) (auth.Profile, error) {
	raw, err := url.PathUnescape(value)
	if err != nil {
		return auth.Profile{}, fmt.Errorf("session: unescape profile: %w", err)
	}

	var p auth.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return auth.Profile{}, fmt.Errorf("session: decode profile: %w", err)
	}
	if p.Handle == "" {
		return auth.Profile{}, errors.New("session: profile without handle")
	}
	return p, nil
}
