package auth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthTokenIsRedacted(t *testing.T) {
	tok := NewAuthToken("secret-token")

	require.False(t, tok.Empty())
	require.Equal(t, "secret-token", tok.Reveal())
	require.Equal(t, "[redacted]", tok.String())
	require.NotContains(t, fmt.Sprintf("%v", tok), "secret")
}

func TestAuthTokenEmpty(t *testing.T) {
	require.True(t, NewAuthToken("").Empty())
	require.Equal(t, "", NewAuthToken("").String())
}

func TestAuthTokenIsKeptVerbatim(t *testing.T) {
	tok := NewAuthToken(" tok ")

	require.False(t, tok.Empty())
	require.Equal(t, " tok ", tok.Reveal())
}
