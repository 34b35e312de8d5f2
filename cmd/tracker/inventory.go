package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-tracker/internal/config"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/repositories/inventory"
)

var inventoryFlags struct {
	jsonOutput bool
	file       string
}

var modeFlags struct {
	maps                bool
	compasses           bool
	smallKeys           bool
	bigKeys             bool
	keyDrops            bool
	guaranteedBossItems bool
	tricks              []string
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage stored snapshots",
	Long:  `Inventory commands read and change the item and mode snapshot stored in Redis for a profile.`,
}

var inventoryGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a profile's snapshot",
	Args:  cobra.NoArgs,
	RunE:  runInventoryGet,
}

var inventorySetItemCmd = &cobra.Command{
	Use:   "set-item [item] [count]",
	Short: "Set how many of an item the profile holds",
	Long:  `Set how many of an item the profile holds. A count of zero removes the item.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runInventorySetItem,
}

var inventorySetModeCmd = &cobra.Command{
	Use:   "set-mode",
	Short: "Replace the profile's game mode",
	Args:  cobra.NoArgs,
	RunE:  runInventorySetMode,
}

var inventoryImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the profile's snapshot with a snapshot file",
	Args:  cobra.NoArgs,
	RunE:  runInventoryImport,
}

var inventoryDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the profile's snapshot",
	Args:  cobra.NoArgs,
	RunE:  runInventoryDelete,
}

func init() {
	addRedisFlags(inventoryCmd, true)
	inventoryCmd.PersistentFlags().BoolVar(&inventoryFlags.jsonOutput, "json", false, "Output as JSON")

	f := inventorySetModeCmd.Flags()
	f.BoolVar(&modeFlags.maps, "maps", false, "Maps are shuffled")
	f.BoolVar(&modeFlags.compasses, "compasses", false, "Compasses are shuffled")
	f.BoolVar(&modeFlags.smallKeys, "small-keys", false, "Small keys are shuffled")
	f.BoolVar(&modeFlags.bigKeys, "big-keys", false, "Big keys are shuffled")
	f.BoolVar(&modeFlags.keyDrops, "key-drops", false, "Key drops are shuffled")
	f.BoolVar(&modeFlags.guaranteedBossItems, "guaranteed-boss-items", false, "Bosses always hold a dungeon item")
	f.StringSliceVar(&modeFlags.tricks, "trick", nil, "Enabled sequence break (repeatable)")

	inventoryImportCmd.Flags().StringVarP(&inventoryFlags.file, "file", "f", "", "Snapshot YAML file")
	_ = inventoryImportCmd.MarkFlagRequired("file")

	inventoryCmd.AddCommand(inventoryGetCmd)
	inventoryCmd.AddCommand(inventorySetItemCmd)
	inventoryCmd.AddCommand(inventorySetModeCmd)
	inventoryCmd.AddCommand(inventoryImportCmd)
	inventoryCmd.AddCommand(inventoryDeleteCmd)
}

func runInventoryGet(cmd *cobra.Command, _ []string) error {
	repo, cleanup, err := openInventory(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.Get(cmd.Context(), inventory.GetInput{Profile: redisFlags.profile})
	if err != nil {
		return err
	}
	return printSnapshot(cmd.OutOrStdout(), out.Snapshot)
}

func runInventorySetItem(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.InvalidArgumentf("count %q is not a number", args[1])
	}

	repo, cleanup, err := openInventory(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.SetItem(cmd.Context(), inventory.SetItemInput{
		Profile: redisFlags.profile,
		Item:    entities.ItemType(args[0]),
		Count:   count,
	})
	if err != nil {
		return err
	}
	return printSnapshot(cmd.OutOrStdout(), out.Snapshot)
}

func runInventorySetMode(cmd *cobra.Command, _ []string) error {
	repo, cleanup, err := openInventory(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	mode := entities.Mode{
		MapShuffle:          modeFlags.maps,
		CompassShuffle:      modeFlags.compasses,
		SmallKeyShuffle:     modeFlags.smallKeys,
		BigKeyShuffle:       modeFlags.bigKeys,
		KeyDropShuffle:      modeFlags.keyDrops,
		GuaranteedBossItems: modeFlags.guaranteedBossItems,
	}
	for _, trick := range modeFlags.tricks {
		mode.SequenceBreaks = append(mode.SequenceBreaks, entities.SequenceBreakID(trick))
	}

	out, err := repo.SetMode(cmd.Context(), inventory.SetModeInput{
		Profile: redisFlags.profile,
		Mode:    mode,
	})
	if err != nil {
		return err
	}
	return printSnapshot(cmd.OutOrStdout(), out.Snapshot)
}

func runInventoryImport(cmd *cobra.Command, _ []string) error {
	s, err := config.Load(inventoryFlags.file)
	if err != nil {
		return err
	}

	repo, cleanup, err := openInventory(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.Save(cmd.Context(), inventory.SaveInput{
		Profile: redisFlags.profile,
		Items:   s.Inventory().Items,
		Mode:    s.Mode,
	})
	if err != nil {
		return err
	}
	return printSnapshot(cmd.OutOrStdout(), out.Snapshot)
}

func runInventoryDelete(cmd *cobra.Command, _ []string) error {
	repo, cleanup, err := openInventory(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.Delete(cmd.Context(), inventory.DeleteInput{Profile: redisFlags.profile})
	if err != nil {
		return err
	}
	if !out.Deleted {
		return errors.NotFoundf("no snapshot for profile %s", redisFlags.profile).
			WithMeta("profile", redisFlags.profile)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot for %s\n", redisFlags.profile)
	return nil
}

func printSnapshot(w io.Writer, s *inventory.Snapshot) error {
	if inventoryFlags.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(w, "Profile: %s\n", s.Profile)
	fmt.Fprintf(w, "Mode:    %s\n", describeMode(s.Mode))
	fmt.Fprintf(w, "Items:\n")
	if len(s.Items) == 0 {
		fmt.Fprintf(w, "  (none)\n")
	}
	for _, item := range slices.Sorted(maps.Keys(s.Items)) {
		fmt.Fprintf(w, "  %s: %d\n", item, s.Items[item])
	}
	return nil
}

func describeMode(m entities.Mode) string {
	var parts []string
	flags := []struct {
		on   bool
		name string
	}{
		{m.MapShuffle, "maps"},
		{m.CompassShuffle, "compasses"},
		{m.SmallKeyShuffle, "small-keys"},
		{m.BigKeyShuffle, "big-keys"},
		{m.KeyDropShuffle, "key-drops"},
		{m.GuaranteedBossItems, "guaranteed-boss-items"},
	}
	for _, f := range flags {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	for _, sb := range m.SequenceBreaks {
		parts = append(parts, "trick:"+string(sb))
	}
	if len(parts) == 0 {
		return "vanilla"
	}
	return strings.Join(parts, " ")
}
