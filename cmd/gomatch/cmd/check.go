package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinfer/gomatch/internal/patternfile"
)

var errCheckFailed = errors.New("pattern check failed")

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Build pattern documents and run their example cases",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false
		for _, file := range args {
			if !checkFile(cmd, file) {
				failed = true
			}
		}
		if failed {
			fmt.Fprintln(out, "FAIL")
			return errCheckFailed
		}
		fmt.Fprintln(out, "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(cmd *cobra.Command, file string) bool {
	out := cmd.OutOrStdout()
	doc, err := patternfile.Load(file)
	if err != nil {
		logger.Error("loading pattern failed", "file", file, "error", err)
		return false
	}
	p, err := doc.Build()
	if err != nil {
		logger.Error("building pattern failed", "file", file, "error", err)
		return false
	}
	fmt.Fprintf(out, "%s: %s\n", file, p)

	failures := doc.Verify(p)
	for _, f := range failures {
		fmt.Fprintf(out, "  %s\n", f)
	}
	logger.Debug("cases checked", "file", file, "cases", len(doc.Cases), "failures", len(failures))
	return len(failures) == 0
}
