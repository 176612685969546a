package buffer

import (
	"go.uber.org/fx"

	"beagle/internal/app/projector"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// Factory creates a buffer bound to a surface synchronizer
type Factory func(s Synchronizer) Buffer

// NewFactory binds the buffer configuration and projector for later construction
func NewFactory(cfg *config.Config, p projector.Projector, log logger.Logger) Factory {
	log = log.WithComponent("BUFFER")

	return func(s Synchronizer) Buffer {
		return New(cfg.Buffer, p, s, log)
	}
}

// Module provides the buffer factory for dependency injection
var Module = fx.Options(
	fx.Provide(NewFactory),
)
