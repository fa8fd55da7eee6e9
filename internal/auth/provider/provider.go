package provider

import (
	"context"

	"onesat-market/internal/auth"
)

// IdentityProvider is the contract of the external wallet/identity
// service. Implementations return identity facts only and never touch
// cookies or storage.
type IdentityProvider interface {
	// RedirectURL returns the authorization URL. params are forwarded
	// verbatim so the provider hands them back on the callback.
	RedirectURL(params map[string]string) string

	// Profile exchanges the bearer token for the account's public profile.
	Profile(ctx context.Context, token auth.AuthToken) (*auth.Profile, error)

	// SpendableBalance returns the account's wallet balance.
	SpendableBalance(ctx context.Context, token auth.AuthToken) (*auth.Balance, error)
}

// Connector returns the configured provider, or an error wrapping
// errs.ErrConfiguration when credentials are missing.
type Connector func() (IdentityProvider, error)

// Static returns a Connector for an already-built provider result.
func Static(p IdentityProvider, err error) Connector {
	return func() (IdentityProvider, error) {
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}
