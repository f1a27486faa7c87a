package throttler

import (
	"okakbot/sources/configuration"
	"time"
)

type ThrottlerConfig struct {
	Limit time.Duration
}

func NewThrottlerConfig(config *configuration.Config) *ThrottlerConfig {
	return &ThrottlerConfig{Limit: config.Throttler.Limit}
}
