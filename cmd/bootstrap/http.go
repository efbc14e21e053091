package bootstrap

import (
	"net/http"
	"time"

	"go.uber.org/fx"
)

var HTTPClientModule = fx.Module("httpclient",
	fx.Provide(
		NewHTTPClient,
	),
)

// NewHTTPClient is shared by the outbound adapters. Per-call deadlines come
// from each adapter's own timeout.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16
	transport.IdleConnTimeout = 90 * time.Second
	return &http.Client{Transport: transport}
}
