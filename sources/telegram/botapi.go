package telegram

import (
	"net/http"
	"okakbot/sources/tracing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of the Bot API the diplomat needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

func NewBotAPI(log *tracing.Logger, config *BotConfig, client *http.Client) *tgbotapi.BotAPI {
	endpoint := tgbotapi.APIEndpoint
	if config.APIEndpoint != "" {
		endpoint = config.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(config.Token, endpoint, client)
	if err != nil {
		log.F("Failed to initialize telegram bot", tracing.InnerError, err)
	}

	log.I("Telegram bot initialized", "bot_user_name", bot.Self.UserName, "custom_endpoint", config.APIEndpoint != "")
	return bot
}

func NewSender(bot *tgbotapi.BotAPI) Sender {
	return bot
}
