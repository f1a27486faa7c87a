package telegram

import (
	"testing"

	"okakbot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type channelUpdater struct {
	updates chan tgbotapi.Update
	config  tgbotapi.UpdateConfig
	stopped bool
}

func (u *channelUpdater) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	u.config = config
	return u.updates
}

func (u *channelUpdater) StopReceivingUpdates() {
	u.stopped = true
}

func TestPollerHandlesMessagesUntilChannelCloses(t *testing.T) {
	f := newHandlerFixture(t)
	updater := &channelUpdater{updates: make(chan tgbotapi.Update, 3)}

	updater.updates <- tgbotapi.Update{UpdateID: 1, Message: groupMessage("bob", "hello")}
	updater.updates <- tgbotapi.Update{UpdateID: 2}
	updater.updates <- tgbotapi.Update{UpdateID: 3, Message: &tgbotapi.Message{MessageID: 9, Text: "no chat, no sender"}}
	close(updater.updates)

	poller := &Poller{
		bot:     updater,
		log:     tracing.NewDiscardLogger(),
		config:  &PollerConfig{Timeout: 30, AllowedUpdates: []string{"message"}},
		handler: f.handler,
	}

	poller.Start()
	poller.Stop()

	assert.Equal(t, 30, updater.config.Timeout)
	assert.Equal(t, []string{"message"}, updater.config.AllowedUpdates)
	assert.True(t, updater.stopped)
	require.Len(t, f.sender.sent, 1)
}
