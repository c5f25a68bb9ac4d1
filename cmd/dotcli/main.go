// Package main is the entry point for the dotcli CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/dotcli/cmd/dotcli/commands"
	"github.com/thoreinstein/dotcli/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	exitErr := errors.Classify(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr)
	if exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, exitErr.Suggestion)
	}
	os.Exit(exitErr.Code)
}
