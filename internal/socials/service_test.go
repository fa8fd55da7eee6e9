package socials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"onesat-market/internal/errs"
	"onesat-market/internal/kv"
)

func TestKey(t *testing.T) {
	k, err := Key("abc_0", "PEPE")
	require.NoError(t, err)
	require.Equal(t, "abc_0", k)

	k, err = Key("", "PEPE")
	require.NoError(t, err)
	require.Equal(t, "PEPE", k)

	_, err = Key("", "")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestGetUnwrittenKeyIsEmpty(t *testing.T) {
	svc := NewService(kv.NewMemoryStore())

	got, err := svc.Get(context.Background(), "NEVER")
	require.NoError(t, err)
	require.Equal(t, Links{}, got)
}

func TestSetThenGetReturnsFilteredRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemoryStore())

	stored, err := svc.Set(ctx, "PEPE", Links{
		Website: "https://pepe.io",
		Twitter: "pepe_token",
		Discord: "not-a-url",
	})
	require.NoError(t, err)

	want := Links{Website: "https://pepe.io", Twitter: "pepe_token"}
	require.Equal(t, want, stored)

	got, err := svc.Get(ctx, "PEPE")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSetOverwritesWithoutMerging(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemoryStore())

	_, err := svc.Set(ctx, "PEPE", Links{Website: "https://pepe.io"})
	require.NoError(t, err)

	second, err := svc.Set(ctx, "PEPE", Links{Telegram: "pepechat"})
	require.NoError(t, err)
	require.Equal(t, Links{Telegram: "pepechat"}, second)

	got, err := svc.Get(ctx, "PEPE")
	require.NoError(t, err)
	require.Equal(t, Links{Telegram: "pepechat"}, got)
}

func TestTokenIDAndTickAreSeparateKeys(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemoryStore())

	_, err := svc.Set(ctx, "abc_0", Links{Twitter: "pepe"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "PEPE")
	require.NoError(t, err)
	require.Equal(t, Links{}, got)
}

func TestServiceRejectsEmptyKey(t *testing.T) {
	svc := NewService(kv.NewMemoryStore())

	_, err := svc.Get(context.Background(), "")
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Set(context.Background(), "", Links{})
	require.ErrorIs(t, err, errs.ErrValidation)
}
