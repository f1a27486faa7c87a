package network

import "okakbot/sources/configuration"

type ProxyConfig struct {
	ProxyAddress   string
	ProxyUser      string
	ProxyPass      string
	TimeoutSeconds int
}

func NewProxyConfig(config *configuration.Config) *ProxyConfig {
	return &ProxyConfig{
		ProxyAddress:   config.Proxy.URL,
		ProxyUser:      config.Proxy.User,
		ProxyPass:      config.Proxy.Password,
		TimeoutSeconds: config.Network.TimeoutSeconds,
	}
}
