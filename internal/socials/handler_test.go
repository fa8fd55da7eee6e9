package socials

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"onesat-market/internal/kv"
	"onesat-market/internal/middleware"
	"onesat-market/internal/session"
)

func newRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(kv.NewMemoryStore())
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r, middleware.GinRequireSession())
	return r, svc
}

func post(r http.Handler, body string, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/tokens/social-links", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withSession {
		req.AddCookie(&http.Cookie{Name: session.TokenCookieName, Value: "tok"})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func get(r http.Handler, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tokens/social-links"+query, nil))
	return rec
}

func TestGetRequiresKey(t *testing.T) {
	r, _ := newRouter(t)

	rec := get(r, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"success":false,"error":"Token ID or tick required"}`, rec.Body.String())
}

func TestGetUnwrittenKey(t *testing.T) {
	r, _ := newRouter(t)

	rec := get(r, "?tick=PEPE")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"socialLinks":{}}`, rec.Body.String())
}

func TestSetWithoutSessionDoesNotMutate(t *testing.T) {
	r, svc := newRouter(t)

	rec := post(r, `{"tick":"PEPE","socialLinks":{"website":"https://pepe.io"}}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"success":false,"error":"Authentication required"}`, rec.Body.String())

	got, err := svc.Get(context.Background(), "PEPE")
	require.NoError(t, err)
	require.Equal(t, Links{}, got)
}

func TestSetRequiresKey(t *testing.T) {
	r, _ := newRouter(t)

	rec := post(r, `{"socialLinks":{"website":"https://pepe.io"}}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetRejectsMalformedBody(t *testing.T) {
	r, _ := newRouter(t)

	rec := post(r, `{"tick":`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"success":false,"error":"Invalid request body"}`, rec.Body.String())
}

func TestSetThenGetRoundTrip(t *testing.T) {
	r, _ := newRouter(t)

	rec := post(r, `{"tick":"PEPE","socialLinks":{"website":"https://pepe.io","twitter":"pepe_token","discord":"not-a-url"}}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var setResp setResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &setResp))
	require.True(t, setResp.Success)
	require.Equal(t, Links{Website: "https://pepe.io", Twitter: "pepe_token"}, setResp.SocialLinks)

	rec = get(r, "?tick=PEPE")
	require.JSONEq(t,
		`{"success":true,"socialLinks":{"website":"https://pepe.io","twitter":"pepe_token"}}`,
		rec.Body.String(),
	)
}

func TestSetInvalidWebsiteIsFilteredNotRejected(t *testing.T) {
	r, _ := newRouter(t)

	rec := post(r, `{"tokenId":"abc_0","socialLinks":{"website":"not-a-url"}}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp setResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Empty(t, resp.SocialLinks.Website)
}

func TestGetPrefersTokenID(t *testing.T) {
	r, _ := newRouter(t)

	post(r, `{"tokenId":"abc_0","socialLinks":{"twitter":"by_id"}}`, true)
	post(r, `{"tick":"PEPE","socialLinks":{"twitter":"by_tick"}}`, true)

	rec := get(r, "?tokenId=abc_0&tick=PEPE")
	require.JSONEq(t, `{"success":true,"socialLinks":{"twitter":"by_id"}}`, rec.Body.String())
}

func TestGetResolvesHrefs(t *testing.T) {
	r, _ := newRouter(t)

	post(r, `{"tick":"PEPE","socialLinks":{"twitter":"@pepe_token"}}`, true)

	rec := get(r, "?tick=PEPE&resolve=true")
	require.JSONEq(t,
		`{"success":true,"socialLinks":{"twitter":"@pepe_token"},"hrefs":{"twitter":"https://twitter.com/pepe_token"}}`,
		rec.Body.String(),
	)
}

func TestSetWithoutLinksKeepsStoredRecord(t *testing.T) {
	r, svc := newRouter(t)

	rec := post(r, `{"tick":"PEPE","socialLinks":{"website":"https://pepe.io","twitter":"pepe_token"}}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, body := range []string{
		`{"tick":"PEPE"}`,
		`{"tick":"PEPE","socialLinks":null}`,
	} {
		rec = post(r, body, true)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.JSONEq(t, `{"success":false,"error":"Invalid request body"}`, rec.Body.String())
	}

	got, err := svc.Get(context.Background(), "PEPE")
	require.NoError(t, err)
	require.Equal(t, Links{Website: "https://pepe.io", Twitter: "pepe_token"}, got)
}

func TestSetRejectsOversizedBody(t *testing.T) {
	r, svc := newRouter(t)

	big := strings.Repeat("a", maxBodyBytes)
	rec := post(r, `{"tick":"PEPE","socialLinks":{"twitter":"`+big+`"}}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"success":false,"error":"Invalid request body"}`, rec.Body.String())

	got, err := svc.Get(context.Background(), "PEPE")
	require.NoError(t, err)
	require.Equal(t, Links{}, got)
}

func TestResponsesAreNotCached(t *testing.T) {
	r, _ := newRouter(t)

	rec := post(r, `{"tick":"PEPE","socialLinks":{"twitter":"pepe_token"}}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec = get(r, "?tick=PEPE")
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
