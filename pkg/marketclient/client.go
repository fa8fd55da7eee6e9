// Package marketclient is a Go client for the market API. It keeps the
// session cookies in a jar and exposes the same view of the session the
// browser has: the display profile cookie is read locally, the auth token
// cookie is only ever sent back to the server.
package marketclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const (
	tokenCookieName   = "handcash_auth_token"
	profileCookieName = "handcash_user"
)

type Profile struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// Session is the client-side view of the login state.
type Session struct {
	User        *Profile
	IsConnected bool
}

type Balance struct {
	SpendableSatoshiBalance int64   `json:"spendableSatoshiBalance"`
	SpendableFiatBalance    float64 `json:"spendableFiatBalance"`
	CurrencyCode            string  `json:"currencyCode"`
}

type SocialLinks struct {
	Website  string `json:"website,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	Discord  string `json:"discord,omitempty"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketclient: %d %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

type Client struct {
	base *url.URL
	http *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. A jar is installed when
// hc has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("marketclient: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("marketclient: base url %q must be absolute", baseURL)
	}

	c := &Client{
		base: u,
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("marketclient: cookie jar: %w", err)
		}
		c.http.Jar = jar
	}

	return c, nil
}

// HTTPClient exposes the underlying client, e.g. to follow the login
// redirect with the same jar.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Session reads the display cookie from the jar. A cookie that cannot be
// parsed is treated as no session and both cookies are dropped.
func (c *Client) Session() Session {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name != profileCookieName || ck.Value == "" {
			continue
		}

		p, err := decodeProfile(ck.Value)
		if err != nil {
			c.clearLocal()
			return Session{}
		}
		return Session{User: &p, IsConnected: true}
	}
	return Session{}
}

// Logout ends the server session and then forgets the local cookies. The
// local state is cleared even if the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/auth/handcash/logout", nil, nil, nil)
	c.clearLocal()
	return err
}

// LoginURL asks the server for the HandCash authorization URL. params are
// handed back by HandCash on the callback.
func (c *Client) LoginURL(ctx context.Context, params map[string]string) (string, error) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}

	var out struct {
		RedirectURL string `json:"redirectUrl"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/handcash/login", q, nil, &out); err != nil {
		return "", err
	}
	return out.RedirectURL, nil
}

func (c *Client) Balance(ctx context.Context) (Balance, error) {
	var out struct {
		Balance Balance `json:"balance"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/wallet/balance", nil, nil, &out); err != nil {
		return Balance{}, err
	}
	return out.Balance, nil
}

// SocialLinks fetches the links of a token. tokenID wins over tick.
func (c *Client) SocialLinks(ctx context.Context, tokenID, tick string) (SocialLinks, error) {
	q := url.Values{}
	if tokenID != "" {
		q.Set("tokenId", tokenID)
	}
	if tick != "" {
		q.Set("tick", tick)
	}

	var out struct {
		SocialLinks SocialLinks `json:"socialLinks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tokens/social-links", q, nil, &out); err != nil {
		return SocialLinks{}, err
	}
	return out.SocialLinks, nil
}

// SetSocialLinks replaces the links of a token and returns what the server
// kept after filtering.
func (c *Client) SetSocialLinks(ctx context.Context, tokenID, tick string, links SocialLinks) (SocialLinks, error) {
	body := struct {
		TokenID     string      `json:"tokenId,omitempty"`
		Tick        string      `json:"tick,omitempty"`
		SocialLinks SocialLinks `json:"socialLinks"`
	}{tokenID, tick, links}

	var out struct {
		SocialLinks SocialLinks `json:"socialLinks"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tokens/social-links", nil, body, &out); err != nil {
		return SocialLinks{}, err
	}
	return out.SocialLinks, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.base.JoinPath(path)
	u.RawQuery = query.Encode()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marketclient: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("marketclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("marketclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("marketclient: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) clearLocal() {
	root := *c.base
	root.Path = "/"
	c.http.Jar.SetCookies(&root, []*http.Cookie{
		{Name: tokenCookieName, Path: "/", MaxAge: -1},
		{Name: profileCookieName, Path: "/", MaxAge: -1},
	})
}

func decodeProfile(value string) (Profile, error) {
	raw, err := url.PathUnescape(value)
	if err != nil {
		return Profile{}, err
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, err
	}
	if p.Handle == "" {
		return Profile{}, errors.New("profile without handle")
	}
	return p, nil
}
