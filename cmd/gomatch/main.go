package main

import (
	"os"

	"github.com/twinfer/gomatch/cmd/gomatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
