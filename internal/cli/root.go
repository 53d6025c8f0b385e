// Package cli provides the command-line interface for sqlint.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlint/internal/cli/commands"
	"github.com/leapstack-labs/sqlint/internal/cli/config"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Exit codes. Violations are the expected outcome of a lint run and get
// their own code; anything else nonzero is an internal failure.
const (
	ExitClean      = 0
	ExitViolations = 1
	ExitInternal   = 2
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlint",
		Short: "sqlint - SQL style linter",
		Long: `sqlint statically analyzes SQL source files and reports style and
quality violations: SELECT *, unqualified columns in joins, window
specifications and LIMIT clauses without ORDER BY, and keyword casing.

It never executes SQL and never modifies input files.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			logger := commands.NewLogger(cfg.Verbose)
			cmd.SetContext(commands.WithRuntime(cmd.Context(), cfg, renderer, logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sqlint.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Include the full violation listing, not just the summary")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	rootCmd.PersistentFlags().Int("jobs", 0, "Number of files to lint concurrently (0 = number of CPUs)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Subcommands
	rootCmd.AddCommand(commands.NewLintCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return ExitClean
	case errors.Is(err, commands.ErrViolationsFound):
		return ExitViolations
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitInternal
	}
}
