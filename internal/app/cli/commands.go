package cli

import (
	"github.com/spf13/cobra"

	"beagle/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandView CommandType = iota
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	Files    []string
	Dir      string
	Patterns []string
	NoUI     bool
	Force    bool
	DryRun   bool
}

// Stdin reports whether events are read from standard input
func (o *Options) Stdin() bool {
	return len(o.Files) == 0 && o.Dir == ""
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandView}

	var showVersion bool

	root := buildRootCommand(result, &showVersion)
	root.AddCommand(
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if showVersion {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, showVersion *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName + " [files...]",
		Short: config.AppDescription,
		Long: `Beagle shows structured JSON-lines log events in a bounded, scrollable grid.
Events are read from files, from standard input, or followed in a directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
			result.Files = args
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Ingest without the grid and log a summary")
	cmd.Flags().StringVarP(&result.Dir, "dir", "d", "", "Follow matching files under a directory")
	cmd.Flags().StringArrayVarP(&result.Patterns, "pattern", "p", nil, "Glob for followed files (repeatable)")
	cmd.Flags().BoolVarP(showVersion, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.ConfigFile + " with default settings",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the file instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
