package session

import (
	"net/http"

	"onesat-market/internal/auth"
	"onesat-market/internal/logger"
)

// State is what a page may know about its visitor. It is derived from the
// display cookie and must never gate a write.
type State struct {
	User        *auth.Profile `json:"user"`
	IsConnected bool          `json:"isConnected"`
}

// Read returns the visitor's display state. A corrupt display cookie is
// treated as no session and both cookies are cleared.
func Read(w http.ResponseWriter, r *http.Request, opts CookieOptions) State {
	p, found, err := DisplayProfile(r)
	if err != nil {
		logger.FromContext(r.Context()).Warn("clearing corrupt session cookie", "error", err.Error())
		Clear(w, opts)
		return State{}
	}
	if !found {
		return State{}
	}
	return State{User: &p, IsConnected: true}
}
