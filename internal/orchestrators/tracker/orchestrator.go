// Package tracker evaluates dungeons against a tracker snapshot and publishes
// the results to the display sections
package tracker

//go:generate mockgen -destination=mock/mock_service.go -package=trackermock github.com/KirkDiggler/dungeon-tracker/internal/orchestrators/tracker Service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
	"github.com/KirkDiggler/dungeon-tracker/internal/sections"
)

// DefaultConcurrency is the number of dungeons evaluated at once by EvaluateAll
const DefaultConcurrency = 4

// Service defines the interface for dungeon evaluation
type Service interface {
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)
	EvaluateAll(ctx context.Context, input *EvaluateAllInput) (*EvaluateAllOutput, error)
}

// Config holds the dependencies for the tracker orchestrator
type Config struct {
	Pool        *dungeons.Pool
	Consumer    sections.Consumer
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Logger defaults to slog.Default()
	Logger      *slog.Logger
	Concurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	if c.Consumer == nil {
		vb.RequiredField("Consumer")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateNonNegative("Concurrency", c.Concurrency, vb)

	return vb.Build()
}

type orchestrator struct {
	pool        *dungeons.Pool
	factory     *dungeons.Factory
	consumer    sections.Consumer
	idGen       idgen.Generator
	clock       clock.Clock
	logger      *slog.Logger
	concurrency int
}

// NewOrchestrator creates a new tracker orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}

	return &orchestrator{
		pool:        cfg.Pool,
		factory:     cfg.Pool.Factory(),
		consumer:    cfg.Consumer,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		logger:      logger,
		concurrency: concurrency,
	}, nil
}

// Evaluate searches one dungeon under both sequence-break policies, folds the
// hypotheses and publishes the result
func (o *orchestrator) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DungeonID == "" {
		return nil, errors.InvalidArgument("dungeon ID is required")
	}
	if err := validateProviders(input.Items, input.Overworld); err != nil {
		return nil, err
	}

	evaluationID := input.EvaluationID
	if evaluationID == "" {
		evaluationID = o.idGen.Generate()
	}

	update, err := o.evaluate(ctx, input.DungeonID, input.Items, input.Overworld, evaluationID)
	if err != nil {
		return nil, err
	}

	return &EvaluateOutput{Update: update}, nil
}

// EvaluateAll evaluates the requested dungeons concurrently under one evaluation ID
func (o *orchestrator) EvaluateAll(ctx context.Context, input *EvaluateAllInput) (*EvaluateAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateProviders(input.Items, input.Overworld); err != nil {
		return nil, err
	}

	ids := input.DungeonIDs
	if len(ids) == 0 {
		for _, d := range o.factory.All() {
			ids = append(ids, d.ID)
		}
	}

	evaluationID := o.idGen.Generate()
	updates := make([]*sections.Update, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			update, err := o.evaluate(gCtx, id, input.Items, input.Overworld, evaluationID)
			if err != nil {
				return err
			}
			updates[i] = update
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to evaluate dungeons").
			WithMeta("evaluation_id", evaluationID)
	}

	o.logger.Info("dungeons evaluated",
		"evaluation_id", evaluationID,
		"dungeons", len(updates),
	)

	return &EvaluateAllOutput{
		EvaluationID: evaluationID,
		Updates:      updates,
	}, nil
}

func (o *orchestrator) evaluate(
	ctx context.Context,
	id entities.DungeonID,
	items requirements.ItemProvider,
	overworld dungeons.OverworldAccessibility,
	evaluationID string,
) (*sections.Update, error) {
	d, err := o.factory.Get(id)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With("dungeon_id", string(id), "evaluation_id", evaluationID)
	logger.Debug("evaluating dungeon")

	var normal, sequenceBreak []dungeons.Hypothesis
	search := func(sb bool, out *[]dungeons.Hypothesis) func() error {
		return func() error {
			return o.pool.With(ctx, id, func(md *dungeons.MutableDungeon) error {
				md.Bind(items, overworld)
				hypotheses, err := dungeons.Search(md, sb)
				if err != nil {
					return err
				}
				*out = hypotheses
				return nil
			})
		}
	}

	g := new(errgroup.Group)
	g.Go(search(false, &normal))
	if items.Mode().AnySequenceBreaks() {
		g.Go(search(true, &sequenceBreak))
	}
	if err := g.Wait(); err != nil {
		logger.Error("dungeon search failed", "error", err)
		return nil, errors.Wrapf(err, "failed to search %s", id).
			WithMeta("dungeon_id", string(id))
	}

	eval := dungeons.Fold(len(d.Bosses), normal, sequenceBreak)
	update := &sections.Update{
		DungeonID:    id,
		EvaluationID: evaluationID,
		Result:       eval.Result,
		Doors:        eval.Doors,
		Hypotheses:   eval.Hypotheses,
		EvaluatedAt:  o.clock.Now(),
	}

	if err := o.consumer.Publish(ctx, update); err != nil {
		return nil, errors.Wrapf(err, "failed to publish %s", id).
			WithMeta("dungeon_id", string(id))
	}

	logger.Debug("dungeon evaluated",
		"accessibility", eval.Result.Accessibility.String(),
		"accessible", eval.Result.Accessible,
		"hypotheses", eval.Hypotheses,
	)

	return update, nil
}

func validateProviders(items requirements.ItemProvider, overworld dungeons.OverworldAccessibility) error {
	vb := errors.NewValidationBuilder()

	if items == nil {
		vb.RequiredField("Items")
	}
	if overworld == nil {
		vb.RequiredField("Overworld")
	}

	return vb.Build()
}
