package middleware

import (
	"context"
	"net/http"

	"onesat-market/internal/auth"
	"onesat-market/internal/httpx"
	"onesat-market/internal/session"
)

// unexported, collision-proof context key
type tokenContextKeyType struct{}

var tokenKey = tokenContextKeyType{}

// TokenFromContext returns the auth token attached by RequireSession.
func TokenFromContext(ctx context.Context) (auth.AuthToken, bool) {
	tok, ok := ctx.Value(tokenKey).(auth.AuthToken)
	return tok, ok
}

// RequireSession rejects requests without the secret cookie. Only the
// HttpOnly cookie counts; the display cookie is ignored here. The token is
// not validated against the provider on every request.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, err := session.Token(r)
		if err != nil {
			httpx.Fail(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), tokenKey, tok)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
