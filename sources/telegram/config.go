package telegram

import (
	"okakbot/sources/configuration"
)

type BotConfig struct {
	Token       string
	APIEndpoint string
}

type PollerConfig struct {
	Timeout        int
	AllowedUpdates []string
}

func NewBotConfig(config *configuration.Config) *BotConfig {
	return &BotConfig{
		Token:       config.Telegram.BotToken,
		APIEndpoint: config.Telegram.APIEndpoint,
	}
}

func NewPollerConfig(config *configuration.Config) *PollerConfig {
	return &PollerConfig{
		Timeout:        config.Telegram.PollerTimeout,
		AllowedUpdates: config.Telegram.AllowedUpdates,
	}
}
