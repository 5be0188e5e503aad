package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNoAPIKeys is returned when a successful load response lacks api_keys.
	ErrNoAPIKeys = errors.New("response has no api keys")
)

// StatusError is returned when the key store answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *StatusError) Error() string {
	if e.kind != nil {
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.kind, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// Unwrap exposes the sentinel matching the status code, if any.
func (e *StatusError) Unwrap() error {
	return e.kind
}

// IsStatusError reports whether err carries a non-2xx key store response, as
// opposed to a transport or decoding failure.
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}
