package authclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/net/http2"
)

// NewHTTPClient builds the pooled HTTP client shared by all attestation requests.
// HTTP/2 is negotiated on TLS connections; timeout zero means no client-side deadline.
func NewHTTPClient(timeout time.Duration) (*http.Client, error) {
	client := cleanhttp.DefaultPooledClient()

	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("unexpected transport type %T", client.Transport)
	}

	h2, err := http2.ConfigureTransports(transport)
	if err != nil {
		return nil, fmt.Errorf("could not enable http2: %w", err)
	}
	// Detect dead connections held in the pool between retries
	h2.ReadIdleTimeout = 30 * time.Second
	h2.PingTimeout = 15 * time.Second

	client.Timeout = timeout
	return client, nil
}
