package external

import (
	"context"
	"okakbot/sources/tracing"

	"go.uber.org/fx"
)

var Module = fx.Module("external",
	fx.Provide(
		NewOutsidersConfig,
		NewOutsiders,
	),

	fx.Invoke(func(outsiders *Outsiders, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				outsiders.log.I("Starting outsiders services")
				go outsiders.startup()
				go outsiders.systemMetrics()
				go outsiders.applicationMetrics()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				outsiders.log.I("Stopping outsiders services")
				for kind, server := range map[string]interface{ Shutdown(context.Context) error }{
					"startup":             outsiders.ss,
					"system_metrics":      outsiders.sms,
					"application_metrics": outsiders.as,
				} {
					if err := server.Shutdown(ctx); err != nil {
						outsiders.log.E("Failed to shutdown outsider server", tracing.OutsiderKind, kind, tracing.InnerError, err)
					}
				}
				return nil
			},
		})
	}),
)
