// Package main is the entry point for the tracker CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
