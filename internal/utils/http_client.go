package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so all
// of its methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient bound to baseURL that sends
// and accepts JSON. A non-positive timeout leaves the resty default in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 15*time.Second)
//	resp, err := client.R().SetBody(req).Post("/api/get_api_keys")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
