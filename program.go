package main

import (
	"context"
	"okakbot/sources/configuration"
	"okakbot/sources/external"
	"okakbot/sources/features"
	"okakbot/sources/metrics"
	"okakbot/sources/network"
	"okakbot/sources/persistence"
	"okakbot/sources/platform"
	"okakbot/sources/responder"
	"okakbot/sources/roster"
	"okakbot/sources/telegram"
	"okakbot/sources/throttler"
	"okakbot/sources/tracing"
	"time"

	"go.uber.org/fx"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

func main() {
	platform.SetAppManifest(version, buildTime, time.Now())

	fx.New(
		tracing.Module,
		tracing.WithLogger,
		configuration.Module,
		metrics.Module,
		external.Module,
		features.Module,
		network.Module,
		persistence.Module,
		throttler.Module,
		roster.Module,
		responder.Module,
		telegram.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("okakbot started successfully", "version", version, "build_time", buildTime)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("okakbot stopped", "version", version, "build_time", buildTime)
					return nil
				},
			})
		}),
	).Run()
}
