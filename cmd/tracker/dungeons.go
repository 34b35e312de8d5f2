package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

var dungeonsFlags struct {
	keyDrops bool
}

var dungeonsCmd = &cobra.Command{
	Use:   "dungeons",
	Short: "List the dungeon catalog",
	Args:  cobra.NoArgs,
	RunE:  runDungeons,
}

func init() {
	dungeonsCmd.Flags().BoolVar(&dungeonsFlags.keyDrops, "key-drops", false, "Count key drops as item slots")
}

func runDungeons(cmd *cobra.Command, _ []string) error {
	factory, err := dungeons.NewFactory()
	if err != nil {
		return errors.Wrap(err, "failed to build dungeon catalog")
	}

	mode := entities.Mode{KeyDropShuffle: dungeonsFlags.keyDrops}
	p := newPrinter(cmd.OutOrStdout(), rootFlags.noColor)
	for _, d := range factory.All() {
		p.dungeon(d, mode)
	}
	return nil
}
