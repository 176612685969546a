package projector

import (
	"go.uber.org/fx"

	"beagle/internal/app/row"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// Module provides the projector for dependency injection
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, log logger.Logger) Projector {
		return New(row.NewLayout(cfg.Layout.TimeFormat), cfg.Buffer.MaxCauseDepth, log.WithComponent("PROJECTOR"))
	}),
)
