// Package main provides the entry point for the shipit commit helper.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shiptools/shiptools/cmd/shipit/commands"
	"github.com/shiptools/shiptools/internal/shipit"
)

func main() {
	rootCmd := commands.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, shipit.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
