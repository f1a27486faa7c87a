package responder

import (
	"okakbot/sources/configuration"
)

type Policy struct {
	Trigger          Trigger
	DefaultChance    float64
	SpecialChance    float64
	RequireText      bool
	FallbackPhrase   string
	AllowedChatTypes map[string]struct{}
}

func NewPolicy(config *configuration.Config) *Policy {
	chatTypes := make(map[string]struct{}, len(config.Responder.AllowedChatTypes))
	for _, chatType := range config.Responder.AllowedChatTypes {
		chatTypes[chatType] = struct{}{}
	}

	return &Policy{
		Trigger: Trigger{
			Word: config.Responder.TriggerWord,
			Mode: config.Responder.TriggerMode,
		},
		DefaultChance:    config.Responder.DefaultChance.Float64(),
		SpecialChance:    config.Responder.SpecialChance.Float64(),
		RequireText:      config.Responder.RequireText,
		FallbackPhrase:   config.Responder.FallbackPhrase,
		AllowedChatTypes: chatTypes,
	}
}

// AllowsChat reports whether messages from chatType are considered. An empty
// allow-list admits every chat.
func (p *Policy) AllowsChat(chatType string) bool {
	if len(p.AllowedChatTypes) == 0 {
		return true
	}
	_, ok := p.AllowedChatTypes[chatType]
	return ok
}
