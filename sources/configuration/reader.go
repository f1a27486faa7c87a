package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"okakbot/sources/platform"
	"okakbot/sources/tracing"
	"os"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var envPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::([^}]*))?\}`)

// NewYaml reads the configuration from CONFIG_PATH (default: config.yaml) on top
// of Defaults. A missing file is not an error; values then come from the
// environment alone. A .env file, when present, is loaded first.
func NewYaml(log *tracing.Logger) (*Config, error) {
	defer tracing.ProfilePoint(log, "Configuration loaded", "configuration.load")()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.W("failed to load .env file", tracing.InnerError, err)
	}

	filePath := platform.Get("CONFIG_PATH", "config.yaml")
	log.I("reading configuration", "path", filePath)

	config, err := Load(filePath)
	if err != nil {
		log.E("failed to load configuration", tracing.InnerError, err, "path", filePath)
		return nil, err
	}

	if err := config.Validate(); err != nil {
		log.E("invalid configuration", tracing.InnerError, err, "path", filePath)
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Load parses the file at path without validating it.
func Load(path string) (*Config, error) {
	config := Defaults()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	default:
		if err := yaml.Unmarshal([]byte(expandEnv(string(content))), &config); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	if err := applyEnv(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyEnv fills values that the file left empty and applies explicit
// overrides for the responder tunables.
func applyEnv(config *Config) error {
	if config.Telegram.BotToken == "" {
		config.Telegram.BotToken = platform.Get("TELEGRAM_BOT_TOKEN", "")
	}
	if config.Telegram.APIEndpoint == "" {
		config.Telegram.APIEndpoint = platform.Get("TELEGRAM_API_ENDPOINT", "")
	}
	if config.Redis.Host == "" {
		config.Redis.Host = platform.Get("REDIS_HOST", "")
	}
	if config.Features.UnleashAPIURL == "" {
		config.Features.UnleashAPIURL = platform.Get("UNLEASH_API_URL", "")
	}
	if config.Proxy.URL == "" {
		config.Proxy.URL = platform.Get("PROXY_ADDRESS", "")
	}

	config.Telegram.PollerTimeout = platform.GetAsInt("TELEGRAM_POLLER_TIMEOUT", config.Telegram.PollerTimeout)
	config.Responder.TriggerWord = platform.Get("RESPONDER_TRIGGER_WORD", config.Responder.TriggerWord)
	config.Responder.TriggerMode = platform.Get("RESPONDER_TRIGGER_MODE", config.Responder.TriggerMode)
	config.Responder.RequireText = platform.GetAsBool("RESPONDER_REQUIRE_TEXT", config.Responder.RequireText)
	config.Responder.AllowedChatTypes = platform.GetAsSlice("RESPONDER_ALLOWED_CHAT_TYPES", config.Responder.AllowedChatTypes)
	config.Throttler.Limit = platform.GetAsDuration("REQUEST_THROTTLE_LIMIT", config.Throttler.Limit.String())

	for key, target := range map[string]*Chance{
		"RESPONDER_DEFAULT_CHANCE": &config.Responder.DefaultChance,
		"RESPONDER_SPECIAL_CHANCE": &config.Responder.SpecialChance,
	} {
		if value := platform.Get(key, ""); value != "" {
			chance, err := platform.ParseChance(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*target = Chance(chance)
		}
	}

	return nil
}

// expandEnv replaces ${VAR} or ${VAR:default} with environment values.
func expandEnv(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if value, exists := os.LookupEnv(matches[1]); exists {
			return value
		}
		return matches[2]
	})
}
