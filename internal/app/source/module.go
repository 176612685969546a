package source

import (
	"io"

	"go.uber.org/fx"

	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// Factory builds event producers from the source configuration
type Factory interface {
	Reader(name string, input io.Reader, sink Sink) Runner
	Tail(dir string, patterns []string, sink Sink) (Runner, error)
}

type factory struct {
	cfg *config.Config
	log logger.Logger
}

// NewFactory creates a producer factory
func NewFactory(cfg *config.Config, log logger.Logger) Factory {
	return &factory{cfg: cfg, log: log.WithComponent("SOURCE")}
}

// Reader creates a producer for a finite stream
func (f *factory) Reader(name string, input io.Reader, sink Sink) Runner {
	return NewReader(name, input, f.cfg.Source.Batch, sink, f.log)
}

// Tail creates a producer following files under dir; no patterns means the configured ones
func (f *factory) Tail(dir string, patterns []string, sink Sink) (Runner, error) {
	if len(patterns) == 0 {
		patterns = f.cfg.Source.Patterns
	}

	tail, err := NewTail(dir, patterns, f.cfg.Source.Batch, sink, f.log)
	if err != nil {
		return nil, err
	}

	return tail, nil
}

// Module provides the source factory for dependency injection
var Module = fx.Options(
	fx.Provide(NewFactory),
)
