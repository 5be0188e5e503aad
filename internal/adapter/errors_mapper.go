package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode(), Body: body}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.kind = ErrForbidden
	case http.StatusNotFound:
		statusErr.kind = ErrNotFound
	case http.StatusBadGateway:
		statusErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.kind = ErrInternalServerError
	}

	return statusErr
}
