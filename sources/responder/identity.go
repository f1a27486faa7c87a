package responder

import (
	"okakbot/sources/roster"
	"strconv"
)

// Sender is the author of an inbound message.
type Sender struct {
	ID       int64
	Username string
}

// Message is the read-only view of an inbound message the responder needs.
type Message struct {
	Sender   *Sender
	Text     string
	ChatType string
}

func (m Message) HasText() bool {
	return m.Text != ""
}

// NormalizeIdentity returns the case-folded username, the numeric id when
// there is no username, or "" when the message has no sender.
func NormalizeIdentity(sender *Sender) string {
	if sender == nil {
		return ""
	}
	if sender.Username != "" {
		return roster.Fold(sender.Username)
	}
	return strconv.FormatInt(sender.ID, 10)
}
