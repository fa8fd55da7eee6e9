package kv

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"onesat-market/internal/db"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sqlite, err := db.Open(context.Background(), db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client),
		"sqlite": NewSQLStore(sqlite),
	}
}

func TestStoreContract(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Ping(ctx))

			_, err := store.Get(ctx, "missing")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "PEPE", []byte(`{"a":1}`)))
			got, err := store.Get(ctx, "PEPE")
			require.NoError(t, err)
			require.Equal(t, `{"a":1}`, string(got))

			require.NoError(t, store.Set(ctx, "PEPE", []byte(`{"b":2}`)))
			got, err = store.Get(ctx, "PEPE")
			require.NoError(t, err)
			require.Equal(t, `{"b":2}`, string(got))
		})
	}
}

func TestNamespacedIsolatesKeys(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()

	links := Namespaced{Store: base, Prefix: "social_links:"}
	profiles := Namespaced{Store: base, Prefix: "profile:"}

	require.NoError(t, links.Set(ctx, "alice", []byte("links")))

	_, err := profiles.Get(ctx, "alice")
	require.ErrorIs(t, err, ErrNotFound)

	raw, err := base.Get(ctx, "social_links:alice")
	require.NoError(t, err)
	require.Equal(t, "links", string(raw))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", v))
	v[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, _ := s.Get(ctx, "k")
	require.Equal(t, "abc", string(again))
}

func TestMemoryStoreConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "same", []byte(fmt.Sprint(i)))
			_, _ = s.Get(ctx, "same")
		}()
	}
	wg.Wait()

	_, err := s.Get(ctx, "same")
	require.NoError(t, err)
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewMemoryStore()
	require.ErrorIs(t, s.Set(ctx, "k", nil), context.Canceled)
}
