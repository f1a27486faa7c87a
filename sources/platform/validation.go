package platform

import (
	"fmt"
	"regexp"
)

var (
	TelegramBotTokenPattern = regexp.MustCompile(`^[0-9]+:[0-9A-Za-z\-_]{30,}$`)
)

func ValidateTelegramBotToken(token string) error {
	if token == "" {
		return fmt.Errorf("Telegram Bot API token is required")
	}

	if !TelegramBotTokenPattern.MatchString(token) {
		return fmt.Errorf("invalid Telegram Bot API token format: expected [0-9]+:[0-9A-Za-z\\-_]{30,}")
	}

	return nil
}

func ValidateNotEmpty(value string, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}
