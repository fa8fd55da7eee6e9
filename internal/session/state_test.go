package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConnected(t *testing.T) {
	encoded, err := EncodeProfile(alice)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ProfileCookieName, Value: encoded})
	rec := httptest.NewRecorder()

	st := Read(rec, req, OptionsFor(false))
	require.True(t, st.IsConnected)
	require.Equal(t, alice, *st.User)
	require.Empty(t, rec.Result().Cookies())
}

func TestReadWithoutCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	st := Read(rec, req, OptionsFor(false))
	require.False(t, st.IsConnected)
	require.Nil(t, st.User)
}

func TestReadCorruptCookieSelfHeals(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ProfileCookieName, Value: "garbage"})
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "tok"})
	rec := httptest.NewRecorder()

	st := Read(rec, req, OptionsFor(false))
	require.False(t, st.IsConnected)

	cleared := cookiesByName(rec)
	require.Negative(t, cleared[TokenCookieName].MaxAge)
	require.Negative(t, cleared[ProfileCookieName].MaxAge)
}
