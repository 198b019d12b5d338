package generator

import (
	"errors"
	"net/http"
)

// Sentinel errors for the failure classes the handlers translate to
// HTTP statuses. Wrap these with fmt.Errorf("...: %w", Err...) so
// callers can match with errors.Is.
var (
	// ErrValidation marks bad or missing request input.
	ErrValidation = errors.New("invalid request")
	// ErrAuth marks a rejected API key, either ours or the provider's.
	ErrAuth = errors.New("unauthorized")
	// ErrProvider marks a network failure, timeout, or non-2xx from
	// the remote model.
	ErrProvider = errors.New("provider request failed")
	// ErrParse marks model output with no recognizable persona fields.
	ErrParse = errors.New("unparseable model output")
)

// MapHTTPStatus resolves an error (possibly wrapped) to the HTTP
// status the handlers return for it. Unknown errors map to 500.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrProvider):
		return http.StatusBadGateway
	case errors.Is(err, ErrParse):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
