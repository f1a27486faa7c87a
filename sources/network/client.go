package network

import (
	"context"
	"net"
	"net/http"
	"runtime"
	"time"

	"okakbot/sources/tracing"

	"golang.org/x/net/proxy"
)

// NewProxyClient builds the HTTP client used for the Bot API. Its timeout has
// to outlast the long-polling timeout.
func NewProxyClient(dialer proxy.Dialer, config *ProxyConfig, log *tracing.Logger) *http.Client {
	dc := func(ctx context.Context, network, address string) (net.Conn, error) {
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			return cd.DialContext(ctx, network, address)
		}
		return dialer.Dial(network, address)
	}

	log.D("HTTP client created", "timeout_seconds", config.TimeoutSeconds)

	return &http.Client{
		Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		Transport: &http.Transport{
			DialContext:           dc,
			MaxIdleConns:          20,
			IdleConnTimeout:       10 * time.Minute,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 5 * time.Second,
			MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
		},
	}
}
