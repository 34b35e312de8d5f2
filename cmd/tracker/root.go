package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/logging"
)

var logFormats = []string{"text", "json"}

var rootFlags struct {
	logLevel  string
	logFormat string
	noColor   bool
}

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Dungeon accessibility tracker",
	Long: `Tracker evaluates which dungeon locations are reachable for a given set of
held items, game mode and overworld entrance levels.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	f.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")
	f.BoolVar(&rootFlags.noColor, "no-color", false, "Disable coloured output")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(dungeonsCmd)
	rootCmd.AddCommand(inventoryCmd)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log-format", rootFlags.logFormat, logFormats, vb)
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		vb.InvalidField("log-level", err.Error())
	}
	if err := vb.Build(); err != nil {
		return err
	}

	logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
	return nil
}
