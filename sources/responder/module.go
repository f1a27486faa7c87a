package responder

import (
	"okakbot/sources/features"

	"go.uber.org/fx"
)

var Module = fx.Module("responder",
	fx.Provide(
		NewPolicy,
		NewDice,
		NewResponder,
		func(fm *features.FeatureManager) Switches { return fm },
	),
)
