// Package errs holds the error taxonomy shared by every HTTP boundary.
// Collaborators wrap one of the sentinels with fmt.Errorf("%w"); handlers
// map it to a status code and a client-safe message.
package errs

import (
	"errors"
	"net/http"
)

var (
	// ErrConfiguration marks missing or invalid server-side settings.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation marks caller input that cannot be served.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized marks a request without a usable session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpstream marks a failed identity-provider call.
	ErrUpstream = errors.New("upstream error")
)

// Status maps an error to the HTTP status a handler should answer with.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
