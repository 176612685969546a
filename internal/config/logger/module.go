package logger

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Invoke(registerFlush),
)

// registerFlush delivers pending telemetry when the application stops
func registerFlush(lc fx.Lifecycle, log Logger) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if appLogger, ok := log.(*AppLogger); ok {
				appLogger.Flush()
			}

			return nil
		},
	})
}
