package telegram

import (
	"fmt"
	"okakbot/sources/metrics"
	"okakbot/sources/responder"
	"okakbot/sources/throttler"
	"okakbot/sources/tracing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramHandler struct {
	diplomat  *Diplomat
	responder *responder.Responder
	throttler *throttler.Throttler
	metrics   *metrics.MetricsService
}

func NewTelegramHandler(diplomat *Diplomat, responder *responder.Responder, throttler *throttler.Throttler, metrics *metrics.MetricsService) *TelegramHandler {
	return &TelegramHandler{
		diplomat:  diplomat,
		responder: responder,
		throttler: throttler,
		metrics:   metrics,
	}
}

func (x *TelegramHandler) HandleMessage(log *tracing.Logger, msg *tgbotapi.Message) error {
	defer tracing.ProfilePoint(log, "Telegram handler message completed", "telegram.handler.message")()

	start := time.Now()
	defer func() { x.metrics.RecordMessageProcessingDuration(time.Since(start)) }()

	decision := x.responder.Respond(log, ToMessage(msg))
	x.metrics.RecordDecision(string(decision.Branch), decision.Reason)

	if !decision.Replies() {
		x.metrics.RecordMessageHandled("silent")
		return nil
	}

	if msg.Chat != nil && !x.throttler.IsAllowed(msg.Chat.ID) {
		log.I("Reply suppressed by throttler", tracing.DecisionBranch, decision.Branch)
		x.metrics.RecordThrottled()
		x.metrics.RecordMessageHandled("throttled")
		return nil
	}

	var err error
	switch decision.Kind {
	case responder.KindText:
		err = x.diplomat.ReplyText(log, msg, decision.Text)
	case responder.KindPhoto:
		err = x.diplomat.ReplyPhoto(log, msg, decision.Photo)
	default:
		err = fmt.Errorf("unsupported reply kind %q", decision.Kind)
	}

	if err != nil {
		x.metrics.RecordMessageHandled("error")
		return fmt.Errorf("failed to send %s reply: %w", decision.Kind, err)
	}

	log.I("Replied", tracing.DecisionBranch, decision.Branch, tracing.ReplyKind, decision.Kind)
	x.metrics.RecordMessageHandled("replied")
	return nil
}

// ToMessage extracts the fields the responder looks at.
func ToMessage(msg *tgbotapi.Message) responder.Message {
	message := responder.Message{Text: msg.Text}

	if msg.From != nil {
		message.Sender = &responder.Sender{ID: msg.From.ID, Username: msg.From.UserName}
	}
	if msg.Chat != nil {
		message.ChatType = msg.Chat.Type
	}

	return message
}
