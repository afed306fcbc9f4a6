// Package main provides the entry point for the batstat battery reporter.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shiptools/shiptools/cmd/batstat/commands"
	"github.com/shiptools/shiptools/internal/ios"
)

// exitCodeDeviceSelection signals that a device must be selected by UDID.
const exitCodeDeviceSelection = 2

func main() {
	rootCmd := commands.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if errors.Is(err, ios.ErrMultipleDevices) {
			os.Exit(exitCodeDeviceSelection)
		}

		os.Exit(1)
	}
}
