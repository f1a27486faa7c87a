package telegram

import (
	"okakbot/sources/metrics"
	"okakbot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Diplomat sends replies back to the chat the message came from. Failed sends
// are logged and counted, never retried.
type Diplomat struct {
	bot     Sender
	metrics *metrics.MetricsService
}

func NewDiplomat(bot Sender, metrics *metrics.MetricsService) *Diplomat {
	return &Diplomat{bot: bot, metrics: metrics}
}

func (x *Diplomat) ReplyText(logger *tracing.Logger, msg *tgbotapi.Message, text string) error {
	defer tracing.ProfilePoint(logger, "Diplomat reply text completed", "diplomat.reply_text")()

	chattable := tgbotapi.NewMessage(msg.Chat.ID, text)
	chattable.ReplyToMessageID = msg.MessageID
	chattable.AllowSendingWithoutReply = true

	return x.send(logger, chattable, "text")
}

func (x *Diplomat) ReplyPhoto(logger *tracing.Logger, msg *tgbotapi.Message, path string) error {
	defer tracing.ProfilePoint(logger, "Diplomat reply photo completed", "diplomat.reply_photo", "path", path)()

	chattable := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FilePath(path))
	chattable.ReplyToMessageID = msg.MessageID
	chattable.AllowSendingWithoutReply = true

	return x.send(logger, chattable, "photo")
}

func (x *Diplomat) send(logger *tracing.Logger, chattable tgbotapi.Chattable, kind string) error {
	if _, err := x.bot.Send(chattable); err != nil {
		logger.E("Reply sending error", tracing.ReplyKind, kind, tracing.InnerError, err)
		x.metrics.RecordReplySent(kind, "error")
		return err
	}

	x.metrics.RecordReplySent(kind, "success")
	return nil
}
