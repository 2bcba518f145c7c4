package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// resty keeps a cookie jar per client, so a session cookie issued by the
// server is replayed on every following request of the same HTTPClient.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient targeting baseURL with the given
// per-request timeout. A zero timeout leaves resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
