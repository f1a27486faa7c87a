package configuration

import (
	"fmt"
	"okakbot/sources/platform"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	TriggerModeAlways   = "always"
	TriggerModeContains = "contains"
)

type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Responder ResponderConfig `yaml:"responder"`
	Lists     ListsConfig     `yaml:"lists"`
	Redis     RedisConfig     `yaml:"redis"`
	Throttler ThrottlerConfig `yaml:"throttler"`
	Proxy     ProxyConfig     `yaml:"proxy"`
	Network   NetworkConfig   `yaml:"network"`
	Features  FeaturesConfig  `yaml:"features"`
}

type ServiceConfig struct {
	StartupPort            int `yaml:"startup_port"`
	SystemMetricsPort      int `yaml:"system_metrics_port"`
	ApplicationMetricsPort int `yaml:"application_metrics_port"`
}

type TelegramConfig struct {
	BotToken       string   `yaml:"bot_token"`
	APIEndpoint    string   `yaml:"api_endpoint"`
	PollerTimeout  int      `yaml:"poller_timeout"`
	AllowedUpdates []string `yaml:"allowed_updates"`
}

type ResponderConfig struct {
	TriggerWord      string   `yaml:"trigger_word"`
	TriggerMode      string   `yaml:"trigger_mode"`
	DefaultChance    Chance   `yaml:"default_chance"`
	SpecialChance    Chance   `yaml:"special_chance"`
	RequireText      bool     `yaml:"require_text"`
	FallbackPhrase   string   `yaml:"fallback_phrase"`
	AllowedChatTypes []string `yaml:"allowed_chat_types"`
}

// ListsConfig describes where identities and phrases come from. Static
// entries are merged with the backing files, which are re-read on every use.
type ListsConfig struct {
	IgnoredUsers       []string `yaml:"ignored_users"`
	SpecialUsers       []string `yaml:"special_users"`
	SpecialPhrases     []string `yaml:"special_phrases"`
	IgnoredUsersFile   string   `yaml:"ignored_users_file"`
	SpecialUsersFile   string   `yaml:"special_users_file"`
	SpecialPhrasesFile string   `yaml:"special_phrases_file"`
	SpecialImagesDir   string   `yaml:"special_images_dir"`
	ImageExtensions    []string `yaml:"image_extensions"`
}

type RedisConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

type ThrottlerConfig struct {
	Limit time.Duration `yaml:"limit"`
}

type ProxyConfig struct {
	URL      string `yaml:"url"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type NetworkConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type FeaturesConfig struct {
	UnleashAPIURL     string `yaml:"unleash_api_url"`
	UnleashAppName    string `yaml:"unleash_app_name"`
	UnleashInstanceID string `yaml:"unleash_instance_id"`
	RefreshInterval   int    `yaml:"refresh_interval"`
}

// Chance is a probability in [0, 1].
type Chance float64

func (c *Chance) UnmarshalYAML(node *yaml.Node) error {
	value, err := platform.ParseChance(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Chance(value)
	return nil
}

func (c Chance) Float64() float64 {
	return float64(c)
}

func Defaults() Config {
	return Config{
		Service: ServiceConfig{
			StartupPort:            10000,
			SystemMetricsPort:      10001,
			ApplicationMetricsPort: 10002,
		},
		Telegram: TelegramConfig{
			PollerTimeout:  60,
			AllowedUpdates: []string{"message"},
		},
		Responder: ResponderConfig{
			TriggerWord:      "окак",
			TriggerMode:      TriggerModeAlways,
			DefaultChance:    0.10,
			SpecialChance:    0.30,
			RequireText:      true,
			FallbackPhrase:   "окак-патруль подлетает",
			AllowedChatTypes: []string{"private", "group", "supergroup"},
		},
		Lists: ListsConfig{
			IgnoredUsersFile:   "data/ignored_users.txt",
			SpecialUsersFile:   "data/special_users.txt",
			SpecialPhrasesFile: "data/special_phrases.txt",
			SpecialImagesDir:   "data/special_images",
			ImageExtensions:    []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		},
		Redis: RedisConfig{
			Port:        6379,
			MaxRetries:  3,
			DialTimeout: 5 * time.Second,
		},
		Network: NetworkConfig{
			TimeoutSeconds: 90,
		},
		Features: FeaturesConfig{
			UnleashAppName:    "okakbot",
			UnleashInstanceID: "okakbot",
			RefreshInterval:   15,
		},
	}
}

func (c *Config) Validate() error {
	if err := platform.ValidateTelegramBotToken(c.Telegram.BotToken); err != nil {
		return err
	}

	if err := platform.ValidateNotEmpty(c.Responder.TriggerWord, "responder.trigger_word"); err != nil {
		return err
	}

	switch c.Responder.TriggerMode {
	case TriggerModeAlways, TriggerModeContains:
	default:
		return fmt.Errorf("unknown responder.trigger_mode %q", c.Responder.TriggerMode)
	}

	for _, chance := range []Chance{c.Responder.DefaultChance, c.Responder.SpecialChance} {
		if chance < 0 || chance > 1 {
			return fmt.Errorf("chance %v is out of range [0, 1]", chance.Float64())
		}
	}

	for _, chatType := range c.Responder.AllowedChatTypes {
		switch chatType {
		case "private", "group", "supergroup", "channel":
		default:
			return fmt.Errorf("unknown chat type %q in responder.allowed_chat_types", chatType)
		}
	}

	return platform.ValidateNotEmpty(c.Responder.FallbackPhrase, "responder.fallback_phrase")
}
