package generator

import (
	"bytes"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"beagle/internal/app/errors"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

const header = "# beagle configuration; every key may be overridden with BEAGLE_<SECTION>_<KEY>\n"

// Generator defines the interface for generating beagle.yaml
type Generator interface {
	Generate(path string, force bool, dryRun bool) ([]byte, error)
}

type generator struct {
	log logger.Logger
}

// NewGenerator creates a new generator instance
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		log: log,
	}
}

// Generate renders the default configuration and writes it to path unless dryRun is set
func (g *generator) Generate(path string, force bool, dryRun bool) ([]byte, error) {
	if !dryRun && !force {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrConfigExists, path)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToGenerateConfig, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToGenerateConfig, err)
	}

	if dryRun {
		return buf.Bytes(), nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToGenerateConfig, err)
	}

	g.log.Info().Msgf("Generated %s", path)

	return buf.Bytes(), nil
}
