package main

import (
	"os"

	"github.com/bt-tools/btstring/cmd/btstring/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
