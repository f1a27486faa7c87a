package persistence

import (
	"net"
	"okakbot/sources/tracing"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns nil when no Redis host is configured.
func NewRedis(config *RedisConfig, log *tracing.Logger) *redis.Client {
	if !config.Enabled() {
		log.I("Redis host is not configured, Redis client disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:                  net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		Password:              config.Password,
		DB:                    config.DB,
		MaxRetries:            config.MaxRetries,
		DialTimeout:           config.DialTimeout,
		ContextTimeoutEnabled: true,
	})

	log.I("Redis client initialized successfully", "addr", rdb.Options().Addr)
	return rdb
}
