//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"

	"beagle/internal/app/buffer"
	"beagle/internal/app/generator"
	"beagle/internal/app/monitor"
	"beagle/internal/app/source"
	"beagle/internal/config"
	"beagle/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	cfg       *config.Config
	buffers   buffer.Factory
	sources   source.Factory
	monitor   monitor.Monitor
	generator generator.Generator
	stdin     *os.File
	stdout    io.Writer
	stderr    io.Writer
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	buffers buffer.Factory,
	sources source.Factory,
	mon monitor.Monitor,
	gen generator.Generator,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:       cfg,
		buffers:   buffers,
		sources:   sources,
		monitor:   mon,
		generator: gen,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		log:       log,
	}
}

// Execute runs the command given on the process command line
func (c *cli) Execute() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.run(ctx, os.Args[1:])
}

// run parses args and dispatches the command, returning the exit code
func (c *cli) run(ctx context.Context, args []string) (int, error) {
	opts, err := Parse(args)
	if err != nil {
		c.log.Debug().Err(err).Msg("Failed to parse arguments")
		fmt.Fprint(c.stderr, RenderError(err))

		return 1, err
	}

	switch opts.Type {
	case CommandHelp:
		fmt.Fprint(c.stdout, RenderHelp())
		return 0, nil
	case CommandVersion:
		fmt.Fprintln(c.stdout, RenderTitle())
		return 0, nil
	case CommandInit:
		return c.handleInit(opts)
	}

	if err := c.show(ctx, opts); err != nil {
		c.log.Error().Err(err).Msg("Failed to view events")
		fmt.Fprint(c.stderr, RenderError(err))

		return 1, err
	}

	return 0, nil
}

// handleInit writes the default configuration, or prints it on --dry-run
func (c *cli) handleInit(opts *Options) (int, error) {
	content, err := c.generator.Generate(config.ConfigFile, opts.Force, opts.DryRun)
	if err != nil {
		fmt.Fprint(c.stderr, RenderError(err))
		return 1, err
	}

	if opts.DryRun {
		c.stdout.Write(content)
	} else {
		fmt.Fprintf(c.stdout, "Generated %s\n", config.ConfigFile)
	}

	return 0, nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal rather than a pipe
func (c *cli) stdinIsTerminal() bool {
	return c.stdin != nil && term.IsTerminal(c.stdin.Fd())
}
