package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinfer/gomatch/internal/chain"
	"github.com/twinfer/gomatch/internal/patternfile"
)

// errNoMatch makes the command exit non-zero without printing an error.
var errNoMatch = errors.New("one or more inputs did not match")

var (
	patternFile string
	maxSteps    int
	maxDepth    int
)

var matchCmd = &cobra.Command{
	Use:   "match -p FILE TEXT...",
	Short: "Match input strings against a pattern document",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&patternFile, "pattern", "p", "", "pattern document (.yaml, .yml or .toml)")
	matchCmd.Flags().IntVar(&maxSteps, "max-steps", 1_000_000, "abort a match after this many node attempts (0 = no limit)")
	matchCmd.Flags().IntVar(&maxDepth, "max-depth", 10_000, "abort a match beyond this recursion depth (0 = no limit)")
	_ = matchCmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	doc, err := patternfile.Load(patternFile)
	if err != nil {
		logger.Error("loading pattern failed", "file", patternFile, "error", err)
		return err
	}
	p, err := doc.Build()
	if err != nil {
		logger.Error("building pattern failed", "file", patternFile, "error", err)
		return err
	}
	logger.Debug("pattern loaded", "name", doc.Name, "chain", p.String())

	out := cmd.OutOrStdout()
	failed := false
	for _, text := range args {
		res, err := p.Evaluate(cmd.Context(), text, chain.WithMaxSteps(maxSteps), chain.WithMaxDepth(maxDepth))
		if err != nil {
			logger.Warn("match aborted", "text", text, "error", err)
			fmt.Fprintf(out, "%q\taborted: %v\n", text, err)
			failed = true
			continue
		}
		if !res.Matched {
			fmt.Fprintf(out, "%q\tno match\n", text)
			failed = true
			continue
		}
		fmt.Fprintf(out, "%q\tmatch\t%q\n", text, res.Captures)
	}
	if failed {
		return errNoMatch
	}
	return nil
}
