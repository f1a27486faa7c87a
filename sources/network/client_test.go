package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"okakbot/sources/tracing"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/proxy"
)

func TestNewProxyDialerDirectWithoutAddress(t *testing.T) {
	dialer := NewProxyDialer(&ProxyConfig{}, tracing.NewDiscardLogger())

	assert.Equal(t, proxy.Direct, dialer)
}

func TestNewProxyDialerSOCKS5(t *testing.T) {
	dialer := NewProxyDialer(&ProxyConfig{ProxyAddress: "127.0.0.1:9050", ProxyUser: "u", ProxyPass: "p"}, tracing.NewDiscardLogger())

	assert.NotEqual(t, proxy.Direct, dialer)
}

func TestNewProxyClientDirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	log := tracing.NewDiscardLogger()
	config := &ProxyConfig{TimeoutSeconds: 5}
	client := NewProxyClient(NewProxyDialer(config, log), config, log)

	assert.Equal(t, 5*time.Second, client.Timeout)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}
