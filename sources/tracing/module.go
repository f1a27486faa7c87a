package tracing

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var Module = fx.Module("tracing",
	fx.Provide(
		NewConsoleLogger,
	),
)

// WithLogger routes fx lifecycle events through the application logger.
var WithLogger = fx.WithLogger(func(log *Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: log.Slog()}
})
