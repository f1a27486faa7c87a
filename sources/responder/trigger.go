package responder

import (
	"okakbot/sources/configuration"
	"okakbot/sources/roster"
	"strings"
)

type Trigger struct {
	Word string
	Mode string
}

// Matches reports whether a message with the given text passes the trigger
// gate. In "always" mode every message passes, including ones without text.
func (t Trigger) Matches(text string) bool {
	if t.Mode != configuration.TriggerModeContains {
		return true
	}
	if t.Word == "" {
		return false
	}
	return strings.Contains(roster.Fold(text), roster.Fold(t.Word))
}
