package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-tracker/internal/config"
	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/logging"
	"github.com/KirkDiggler/dungeon-tracker/internal/orchestrators/tracker"
	"github.com/KirkDiggler/dungeon-tracker/internal/overworld"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-tracker/internal/repositories/inventory"
	"github.com/KirkDiggler/dungeon-tracker/internal/sections"
)

const maxPoolSize = 16

var evaluateFlags struct {
	file        string
	dungeons    []string
	poolSize    int
	concurrency int
	jsonOutput  bool
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate dungeon accessibility",
	Long: `Evaluate every dungeon (or the ones named with --dungeon) against a snapshot.
The snapshot comes from --file, from Redis with --redis-addr and --profile, or
from the bundled sample when neither is given.`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVarP(&evaluateFlags.file, "file", "f", "", "Snapshot YAML file")
	f.StringSliceVar(&evaluateFlags.dungeons, "dungeon", nil, "Dungeon to evaluate (repeatable)")
	f.IntVar(&evaluateFlags.poolSize, "pool-size", dungeons.DefaultPoolSize, "Working copies per dungeon")
	f.IntVar(&evaluateFlags.concurrency, "concurrency", tracker.DefaultConcurrency, "Dungeons evaluated at once")
	f.BoolVar(&evaluateFlags.jsonOutput, "json", false, "Output as JSON")
	addRedisFlags(evaluateCmd, false)

	evaluateCmd.MarkFlagsMutuallyExclusive("file", "redis-addr")
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New("cli")

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("pool-size", evaluateFlags.poolSize, 1, maxPoolSize, vb)
	errors.ValidateRange("concurrency", evaluateFlags.concurrency, 1, len(entities.AllDungeons), vb)
	if err := vb.Build(); err != nil {
		return err
	}

	items, ow, err := loadProviders(ctx)
	if err != nil {
		return err
	}

	factory, err := dungeons.NewFactory()
	if err != nil {
		return errors.Wrap(err, "failed to build dungeon catalog")
	}
	pool, err := dungeons.NewPool(&dungeons.PoolConfig{
		Factory: factory,
		Size:    evaluateFlags.poolSize,
	})
	if err != nil {
		return err
	}

	svc, err := newTracker(pool, sections.NewBoard(), logger)
	if err != nil {
		return err
	}

	ids := make([]entities.DungeonID, 0, len(evaluateFlags.dungeons))
	for _, id := range evaluateFlags.dungeons {
		ids = append(ids, entities.DungeonID(id))
	}

	out, err := svc.EvaluateAll(ctx, &tracker.EvaluateAllInput{
		DungeonIDs: ids,
		Items:      items,
		Overworld:  ow,
	})
	if err != nil {
		return err
	}
	logger.Info("evaluation finished",
		slog.String("evaluation_id", out.EvaluationID),
		slog.Int("dungeons", len(out.Updates)))

	if evaluateFlags.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	p := newPrinter(cmd.OutOrStdout(), rootFlags.noColor)
	for _, u := range out.Updates {
		d, err := factory.Get(u.DungeonID)
		if err != nil {
			return err
		}
		p.update(d, items.Mode(), u)
	}
	return nil
}

// newTracker builds the evaluation service
var newTracker = defaultTracker

func defaultTracker(pool *dungeons.Pool, consumer sections.Consumer, logger *slog.Logger) (tracker.Service, error) {
	return tracker.NewOrchestrator(&tracker.Config{
		Pool:        pool,
		Consumer:    consumer,
		IDGenerator: idgen.NewUUID("eval"),
		Clock:       clock.New(),
		Logger:      logger,
		Concurrency: evaluateFlags.concurrency,
	})
}

// loadProviders resolves the item and overworld providers for an evaluation
func loadProviders(ctx context.Context) (*entities.Inventory, dungeons.OverworldAccessibility, error) {
	switch {
	case evaluateFlags.file != "":
		s, err := config.Load(evaluateFlags.file)
		if err != nil {
			return nil, nil, err
		}
		return s.Inventory(), s.OverworldProvider(), nil

	case len(redisFlags.addrs) > 0:
		repo, cleanup, err := openInventory(ctx)
		if err != nil {
			return nil, nil, err
		}
		defer cleanup()
		got, err := repo.Get(ctx, inventory.GetInput{Profile: redisFlags.profile})
		if err != nil {
			return nil, nil, err
		}
		return got.Snapshot.Inventory(), overworld.Open(), nil
	}

	s := config.Sample()
	return s.Inventory(), s.OverworldProvider(), nil
}
