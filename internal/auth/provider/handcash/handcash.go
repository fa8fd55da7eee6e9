package handcash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"onesat-market/internal/auth"
	"onesat-market/internal/errs"
	"onesat-market/internal/logger"
)

const (
	profilePath = "/v1/connect/profile/currentUserProfile"
	balancePath = "/v1/connect/wallet/spendableBalance"

	maxBodyBytes = 1 << 20
)

type Config struct {
	AppID     string
	AppSecret string
	AuthURL   string // e.g. https://app.handcash.io/#/authorizeApp
	APIURL    string // e.g. https://cloud.handcash.io
	Timeout   time.Duration
}

// Provider talks to HandCash Connect. It returns identity facts only; no
// cookie or storage decisions are made here.
type Provider struct {
	cfg  Config
	base http.RoundTripper
	now  func() time.Time
}

// New validates the credentials. Missing credentials are a configuration
// error, never a silent fallback.
func New(cfg Config) (*Provider, error) {
	if cfg.AppID == "" || cfg.AppSecret == "" {
		return nil, fmt.Errorf("handcash: HANDCASH_APP_ID and HANDCASH_APP_SECRET must be set: %w", errs.ErrConfiguration)
	}
	if cfg.AuthURL == "" || cfg.APIURL == "" {
		return nil, fmt.Errorf("handcash: auth and api urls must be set: %w", errs.ErrConfiguration)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &Provider{cfg: cfg, base: http.DefaultTransport, now: time.Now}, nil
}

// WithTransport replaces the base transport, mostly for tests.
func (p *Provider) WithTransport(rt http.RoundTripper) *Provider {
	p.base = rt
	return p
}

// RedirectURL builds the authorization URL. The auth URL carries a hash
// route, so the query is appended as text rather than via url.URL.
func (p *Provider) RedirectURL(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("appId", p.cfg.AppID)

	sep := "?"
	if strings.Contains(p.cfg.AuthURL, "?") {
		sep = "&"
	}
	return p.cfg.AuthURL + sep + q.Encode()
}

func (p *Provider) Profile(ctx context.Context, token auth.AuthToken) (*auth.Profile, error) {
	var body struct {
		PublicProfile struct {
			Handle      string `json:"handle"`
			DisplayName string `json:"displayName"`
			AvatarURL   string `json:"avatarUrl"`
		} `json:"publicProfile"`
	}

	if err := p.get(ctx, token, profilePath, &body); err != nil {
		return nil, err
	}

	if body.PublicProfile.Handle == "" {
		return nil, fmt.Errorf("handcash: profile without handle: %w", errs.ErrUpstream)
	}

	logger.FromContext(ctx).Info("handcash profile fetched",
		"handle", body.PublicProfile.Handle,
		"avatar_present", body.PublicProfile.AvatarURL != "",
	)

	return &auth.Profile{
		Handle:      body.PublicProfile.Handle,
		DisplayName: body.PublicProfile.DisplayName,
		AvatarURL:   body.PublicProfile.AvatarURL,
	}, nil
}

func (p *Provider) SpendableBalance(ctx context.Context, token auth.AuthToken) (*auth.Balance, error) {
	var b auth.Balance
	if err := p.get(ctx, token, balancePath, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (p *Provider) get(ctx context.Context, token auth.AuthToken, path string, out any) error {
	if token.Empty() {
		return fmt.Errorf("handcash: empty auth token: %w", errs.ErrUnauthorized)
	}

	key, err := newRequestKey(token)
	if err != nil {
		return err
	}
	defer key.zero()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.APIURL+path, nil)
	if err != nil {
		return fmt.Errorf("handcash: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("app-id", p.cfg.AppID)
	req.Header.Set("app-secret", p.cfg.AppSecret)
	key.sign(req, path, nil, p.now())

	client := &http.Client{Timeout: p.cfg.Timeout, Transport: p.base}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("handcash: %s: %w: %w", path, errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("handcash: read %s: %w: %w", path, errs.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		return fmt.Errorf("handcash: %s returned %d %q: %w", path, resp.StatusCode, apiErr.Message, errs.ErrUpstream)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("handcash: decode %s: %w: %w", path, errs.ErrUpstream, err)
	}
	return nil
}
