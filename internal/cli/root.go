package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/listkit/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the listkit CLI.
// It loads configuration, wires up logging, and registers the browse,
// match, reconcile, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "listkit",
		Short:   "Sortable lists with type-ahead selection",
		Long:    "listkit: browse, search and reorder lists of items loaded from YAML files",
		Version: ver,
		Example: rootCmdExample,
		// Errors are returned to main, which prints them once.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "additional config file layered over the user config")
	cmd.AddCommand(
		NewBrowseCmd(), NewMatchCmd(), NewReconcileCmd(),
		newConfigCmd(), NewVersionCmd(ver),
	)

	return cmd
}

const rootCmdExample = `  # Browse items interactively, sorted by name
  listkit browse --sort name:asc items.yaml

  # Find the row type-ahead selects for "sig"
  listkit match sig items.yaml

  # Translate logical indexes to rows of the sorted view
  listkit reconcile --sort name:desc --logical 0,2 items.yaml

  # Write a default configuration file
  listkit config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
