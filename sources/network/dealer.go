package network

import (
	"okakbot/sources/tracing"

	"golang.org/x/net/proxy"
)

// NewProxyDialer dials through SOCKS5 when a proxy address is configured and
// directly otherwise.
func NewProxyDialer(config *ProxyConfig, log *tracing.Logger) proxy.Dialer {
	if config.ProxyAddress == "" {
		log.I("Proxy is not configured, dialing directly")
		return proxy.Direct
	}

	var auth *proxy.Auth
	if config.ProxyUser != "" {
		auth = &proxy.Auth{User: config.ProxyUser, Password: config.ProxyPass}
	}

	dialer, err := proxy.SOCKS5("tcp", config.ProxyAddress, auth, proxy.Direct)
	if err != nil {
		log.F("Failed to create proxy dialer", tracing.InnerError, err)
	}

	log.I("Proxy dialer created", tracing.ProxyUrl, config.ProxyAddress)
	return dialer
}
