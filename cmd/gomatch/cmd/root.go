// Package cmd implements the gomatch command line tool.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "gomatch",
	Short: "Match strings against chained patterns",
	Long: `gomatch evaluates pattern documents (YAML or TOML) against input strings.

A pattern document describes a chain of matcher nodes:
  lit     exact text
  set     one character out of a set
  range   one character within a range
  not     zero-width negative assertion
  any     zero or more characters, longest first
  either  first alternative after which the rest matches
  end     end of the chain`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = newLogger(cmd.ErrOrStderr(), level)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
