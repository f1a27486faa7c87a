package telegram

import (
	"okakbot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type Updater interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Poller struct {
	bot     Updater
	log     *tracing.Logger
	config  *PollerConfig
	handler *TelegramHandler
}

func NewPoller(bot *tgbotapi.BotAPI, log *tracing.Logger, handler *TelegramHandler, config *PollerConfig) *Poller {
	return &Poller{bot: bot, log: log, handler: handler, config: config}
}

// Start blocks until Stop is called.
func (x *Poller) Start() {
	update := tgbotapi.NewUpdate(0)
	update.Timeout = x.config.Timeout
	update.AllowedUpdates = x.config.AllowedUpdates

	for update := range x.bot.GetUpdatesChan(update) {
		if msg := update.Message; msg != nil {
			x.handle(msg)
		}
	}
}

func (x *Poller) Stop() {
	x.bot.StopReceivingUpdates()
}

func (x *Poller) handle(msg *tgbotapi.Message) {
	log := x.log.With(
		tracing.CorrelationId, uuid.NewString(),
		tracing.MessageId, msg.MessageID,
		tracing.MessageDate, msg.Date,
	)

	if msg.Chat != nil {
		log = log.With(tracing.ChatType, msg.Chat.Type, tracing.ChatId, msg.Chat.ID)
	}
	if user := msg.From; user != nil {
		log = log.With(tracing.UserId, user.ID, tracing.UserName, user.UserName)
	}

	if err := x.handler.HandleMessage(log, msg); err != nil {
		log.E("Message handling failed", tracing.InnerError, err)
		return
	}

	log.D("Message handled")
}
