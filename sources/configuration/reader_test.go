package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw4"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", testToken)

	config, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, testToken, config.Telegram.BotToken)
	assert.Equal(t, "окак", config.Responder.TriggerWord)
	assert.Equal(t, TriggerModeAlways, config.Responder.TriggerMode)
	assert.InDelta(t, 0.10, config.Responder.DefaultChance.Float64(), 1e-12)
	assert.InDelta(t, 0.30, config.Responder.SpecialChance.Float64(), 1e-12)
	assert.True(t, config.Responder.RequireText)
	assert.Equal(t, []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}, config.Lists.ImageExtensions)
	assert.NoError(t, config.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv("OKAK_TOKEN", testToken)

	path := writeConfig(t, `
telegram:
  bot_token: ${OKAK_TOKEN}
  poller_timeout: ${OKAK_POLLER_TIMEOUT:30}
responder:
  trigger_mode: contains
  default_chance: 0.15
  special_chance: 0.5
  require_text: false
lists:
  special_users: ["@Alice"]
throttler:
  limit: 10s
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, testToken, config.Telegram.BotToken)
	assert.Equal(t, 30, config.Telegram.PollerTimeout)
	assert.Equal(t, TriggerModeContains, config.Responder.TriggerMode)
	assert.InDelta(t, 0.15, config.Responder.DefaultChance.Float64(), 1e-12)
	assert.InDelta(t, 0.5, config.Responder.SpecialChance.Float64(), 1e-12)
	assert.False(t, config.Responder.RequireText)
	assert.Equal(t, []string{"@Alice"}, config.Lists.SpecialUsers)
	assert.Equal(t, "data/special_phrases.txt", config.Lists.SpecialPhrasesFile)
	assert.Equal(t, 10*time.Second, config.Throttler.Limit)
}

func TestLoadRejectsOutOfRangeChance(t *testing.T) {
	path := writeConfig(t, "responder:\n  default_chance: 1.2\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvironmentChanceOverride(t *testing.T) {
	t.Setenv("RESPONDER_DEFAULT_CHANCE", "0.25")
	t.Setenv("RESPONDER_SPECIAL_CHANCE", "2")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "RESPONDER_SPECIAL_CHANCE")

	t.Setenv("RESPONDER_SPECIAL_CHANCE", "")
	config, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, config.Responder.DefaultChance.Float64(), 1e-12)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Missing token", mutate: func(c *Config) { c.Telegram.BotToken = "" }, wantErr: true},
		{name: "Unknown trigger mode", mutate: func(c *Config) { c.Responder.TriggerMode = "sometimes" }, wantErr: true},
		{name: "Empty trigger word", mutate: func(c *Config) { c.Responder.TriggerWord = "" }, wantErr: true},
		{name: "Unknown chat type", mutate: func(c *Config) { c.Responder.AllowedChatTypes = []string{"forum"} }, wantErr: true},
		{name: "Empty fallback phrase", mutate: func(c *Config) { c.Responder.FallbackPhrase = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Defaults()
			config.Telegram.BotToken = testToken
			tt.mutate(&config)

			if tt.wantErr {
				assert.Error(t, config.Validate())
			} else {
				assert.NoError(t, config.Validate())
			}
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("OKAK_SET", "value")

	assert.Equal(t, "a=value b=fallback c=", expandEnv("a=${OKAK_SET} b=${OKAK_UNSET:fallback} c=${OKAK_UNSET}"))
}
