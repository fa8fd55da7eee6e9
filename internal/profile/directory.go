package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"onesat-market/internal/auth"
	"onesat-market/internal/kv"
)

// Directory remembers the public profile of every handle that has
// completed a login, so profile pages show provider data instead of a
// placeholder.
type Directory struct {
	store kv.Store
}

func NewDirectory(store kv.Store) *Directory {
	return &Directory{store: kv.Namespaced{Store: store, Prefix: "profile:"}}
}

func normalizeHandle(h string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "$"))
}

// Remember stores p under its handle, replacing any previous entry.
func (d *Directory) Remember(ctx context.Context, p auth.Profile) error {
	h := normalizeHandle(p.Handle)
	if h == "" {
		return errors.New("profile: empty handle")
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile: encode: %w", err)
	}
	if err := d.store.Set(ctx, h, raw); err != nil {
		return fmt.Errorf("profile: store %q: %w", h, err)
	}
	return nil
}

// Lookup returns the stored profile, or a placeholder with found=false.
func (d *Directory) Lookup(ctx context.Context, handle string) (p auth.Profile, found bool, err error) {
	h := normalizeHandle(handle)

	raw, err := d.store.Get(ctx, h)
	if errors.Is(err, kv.ErrNotFound) {
		return Placeholder(handle), false, nil
	}
	if err != nil {
		return auth.Profile{}, false, fmt.Errorf("profile: lookup %q: %w", h, err)
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return auth.Profile{}, false, fmt.Errorf("profile: decode %q: %w", h, err)
	}
	return p, true, nil
}

// Placeholder is shown for handles that never logged in here.
func Placeholder(handle string) auth.Profile {
	return auth.Profile{
		Handle:      handle,
		DisplayName: "User " + handle,
	}
}
