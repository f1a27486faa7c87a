package responder

import (
	"okakbot/sources/roster"
	"okakbot/sources/tracing"
)

// Switches are runtime toggles consulted on every message.
type Switches interface {
	ImageRepliesEnabled() bool
	DefaultRepliesEnabled() bool
}

type Responder struct {
	roster   *roster.Roster
	policy   *Policy
	dice     Dice
	switches Switches
	log      *tracing.Logger
}

func NewResponder(roster *roster.Roster, policy *Policy, dice Dice, switches Switches, log *tracing.Logger) *Responder {
	return &Responder{roster: roster, policy: policy, dice: dice, switches: switches, log: log}
}

// Respond reloads the lists and decides how to answer msg.
func (x *Responder) Respond(log *tracing.Logger, msg Message) Decision {
	defer tracing.ProfilePoint(log, "Responder decision completed", "responder.respond")()

	input := Input{
		Message:      msg,
		Ignored:      x.roster.IgnoredUsers(),
		Special:      x.roster.SpecialUsers(),
		Phrases:      x.roster.SpecialPhrases(),
		DefaultMuted: !x.switches.DefaultRepliesEnabled(),
	}

	identity := NormalizeIdentity(msg.Sender)
	if input.Special.Contains(identity) && !input.Ignored.Contains(identity) && x.switches.ImageRepliesEnabled() {
		input.Images = x.roster.SpecialImages()
	}

	decision := Decide(input, x.policy, x.dice)

	log.D("Decision made",
		tracing.Identity, decision.Identity,
		tracing.DecisionBranch, decision.Branch,
		tracing.DecisionReason, decision.Reason,
		tracing.ReplyKind, decision.Kind,
	)

	return decision
}
