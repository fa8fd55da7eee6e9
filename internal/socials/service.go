package socials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"onesat-market/internal/errs"
	"onesat-market/internal/kv"
)

// ErrKeyRequired is returned when neither tokenId nor tick is supplied.
var ErrKeyRequired = fmt.Errorf("token ID or tick required: %w", errs.ErrValidation)

// Key picks the storage key. tokenId wins over tick and the value is used
// verbatim; the two identifier spaces are not unified.
func Key(tokenID, tick string) (string, error) {
	if tokenID != "" {
		return tokenID, nil
	}
	if tick != "" {
		return tick, nil
	}
	return "", ErrKeyRequired
}

type Service struct {
	store kv.Store
}

// NewService stores records under the "social_links:" namespace of store.
func NewService(store kv.Store) *Service {
	return &Service{store: kv.Namespaced{Store: store, Prefix: "social_links:"}}
}

// Get returns the record at key. A key that was never written yields an
// empty record, not an error.
func (s *Service) Get(ctx context.Context, key string) (Links, error) {
	if key == "" {
		return Links{}, ErrKeyRequired
	}

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return Links{}, nil
	}
	if err != nil {
		return Links{}, fmt.Errorf("socials: get %q: %w", key, err)
	}

	var l Links
	if err := json.Unmarshal(raw, &l); err != nil {
		return Links{}, fmt.Errorf("socials: decode %q: %w", key, err)
	}
	return l, nil
}

// Set filters links and replaces the whole record at key. Fields that
// are absent or invalid are not carried over from the previous record.
// Callers are responsible for checking the session; creator ownership is
// not verified.
func (s *Service) Set(ctx context.Context, key string, links Links) (Links, error) {
	if key == "" {
		return Links{}, ErrKeyRequired
	}

	filtered := Filter(links)

	raw, err := json.Marshal(filtered)
	if err != nil {
		return Links{}, fmt.Errorf("socials: encode %q: %w", key, err)
	}
	if err := s.store.Set(ctx, key, raw); err != nil {
		return Links{}, fmt.Errorf("socials: set %q: %w", key, err)
	}
	return filtered, nil
}
