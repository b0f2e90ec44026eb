package main

import (
	"os"

	"github.com/msto63/adifkit/cmd/adif/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
