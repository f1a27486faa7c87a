package responder

import "okakbot/sources/roster"

type Kind string

const (
	KindNone  Kind = "none"
	KindText  Kind = "text"
	KindPhoto Kind = "photo"
)

type Branch string

const (
	BranchNone    Branch = "none"
	BranchSpecial Branch = "special"
	BranchDefault Branch = "default"
)

const (
	ReasonChatType      = "chat_type"
	ReasonNoTrigger     = "no_trigger"
	ReasonIgnored       = "ignored"
	ReasonSpecialChance = "special_chance"
	ReasonNotText       = "not_text"
	ReasonDefaultMuted  = "default_muted"
	ReasonDefaultChance = "default_chance"
	ReasonDrawn         = "drawn"
)

// Input is everything a decision depends on besides the policy and the dice.
type Input struct {
	Message Message
	Ignored roster.UserSet
	Special roster.UserSet
	Phrases []string
	Images  []string
	// DefaultMuted silences the default-user branch entirely.
	DefaultMuted bool
}

type Decision struct {
	Kind     Kind
	Branch   Branch
	Reason   string
	Identity string
	Text     string
	Photo    string
}

func (d Decision) Replies() bool {
	return d.Kind != KindNone
}

// Decide picks the reply for a single message. The ignore list always wins
// over the special list. Special users are answered with a phrase or an image
// behind SpecialChance; everyone else gets the trigger word behind
// DefaultChance, and only for text messages when RequireText is set.
func Decide(input Input, policy *Policy, dice Dice) Decision {
	identity := NormalizeIdentity(input.Message.Sender)
	silent := func(branch Branch, reason string) Decision {
		return Decision{Kind: KindNone, Branch: branch, Reason: reason, Identity: identity}
	}

	if !policy.AllowsChat(input.Message.ChatType) {
		return silent(BranchNone, ReasonChatType)
	}

	if !policy.Trigger.Matches(input.Message.Text) {
		return silent(BranchNone, ReasonNoTrigger)
	}

	if input.Ignored.Contains(identity) {
		return silent(BranchNone, ReasonIgnored)
	}

	if input.Special.Contains(identity) {
		if dice.Float64() >= policy.SpecialChance {
			return silent(BranchSpecial, ReasonSpecialChance)
		}
		return special(input, policy, dice, identity)
	}

	if policy.RequireText && !input.Message.HasText() {
		return silent(BranchDefault, ReasonNotText)
	}

	if input.DefaultMuted {
		return silent(BranchDefault, ReasonDefaultMuted)
	}

	if dice.Float64() >= policy.DefaultChance {
		return silent(BranchDefault, ReasonDefaultChance)
	}

	return Decision{Kind: KindText, Branch: BranchDefault, Reason: ReasonDrawn, Identity: identity, Text: policy.Trigger.Word}
}

// special chooses between a phrase and an image with a fair coin when both
// are available.
func special(input Input, policy *Policy, dice Dice, identity string) Decision {
	decision := Decision{Branch: BranchSpecial, Reason: ReasonDrawn, Identity: identity}

	sendText, sendPhoto := len(input.Phrases) > 0, len(input.Images) > 0
	if sendText && sendPhoto {
		sendPhoto = dice.IntN(2) == 0
	}

	switch {
	case sendPhoto:
		decision.Kind = KindPhoto
		decision.Photo = input.Images[dice.IntN(len(input.Images))]
	case sendText:
		decision.Kind = KindText
		decision.Text = input.Phrases[dice.IntN(len(input.Phrases))]
	default:
		decision.Kind = KindText
		decision.Text = policy.FallbackPhrase
	}

	return decision
}
