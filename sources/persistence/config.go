package persistence

import (
	"okakbot/sources/configuration"
	"time"
)

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
}

func NewRedisConfig(config *configuration.Config) *RedisConfig {
	return &RedisConfig{
		Host:        config.Redis.Host,
		Port:        config.Redis.Port,
		Password:    config.Redis.Password,
		DB:          config.Redis.DB,
		MaxRetries:  config.Redis.MaxRetries,
		DialTimeout: config.Redis.DialTimeout,
	}
}

func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
}
