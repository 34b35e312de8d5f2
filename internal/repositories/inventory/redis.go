package inventory

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dungeon-tracker/internal/redis"
)

const (
	// Key pattern: inventory:{profile}
	snapshotKeyPrefix = "inventory:"
	// Attempts of an optimistic update before giving up
	maxUpdateAttempts = 5
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for tracker snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a profile's snapshot
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	raw, err := r.client.Get(ctx, r.buildKey(input.Profile)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("inventory snapshot not found").
				WithMeta("profile", input.Profile)
		}
		return nil, storeError(err, "failed to get snapshot from Redis")
	}

	snapshot, err := decodeSnapshot(raw)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Snapshot: snapshot}, nil
}

// Save replaces a profile's snapshot
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}
	if err := validateMode(input.Mode); err != nil {
		return nil, err
	}

	snapshot := newSnapshot(input.Profile)
	for item, count := range input.Items {
		setItem(snapshot.Items, item, count)
	}
	snapshot.Mode = input.Mode.Clone()
	snapshot.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, r.buildKey(input.Profile), data, 0).Err(); err != nil {
		return nil, storeError(err, "failed to store snapshot in Redis")
	}

	return &SaveOutput{Snapshot: snapshot}, nil
}

// SetItem changes one item count, creating the snapshot if needed
func (r *redisRepository) SetItem(ctx context.Context, input SetItemInput) (*SetItemOutput, error) {
	if err := validateSetItem(input); err != nil {
		return nil, err
	}

	snapshot, err := r.update(ctx, input.Profile, func(s *Snapshot) {
		setItem(s.Items, input.Item, input.Count)
	})
	if err != nil {
		return nil, err
	}

	return &SetItemOutput{Snapshot: snapshot}, nil
}

// SetMode replaces the mode, creating the snapshot if needed
func (r *redisRepository) SetMode(ctx context.Context, input SetModeInput) (*SetModeOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if err := validateMode(input.Mode); err != nil {
		return nil, err
	}

	snapshot, err := r.update(ctx, input.Profile, func(s *Snapshot) {
		s.Mode = input.Mode.Clone()
	})
	if err != nil {
		return nil, err
	}

	return &SetModeOutput{Snapshot: snapshot}, nil
}

// Delete removes a profile's snapshot
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	removed, err := r.client.Del(ctx, r.buildKey(input.Profile)).Result()
	if err != nil {
		return nil, storeError(err, "failed to delete snapshot from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

// update applies fn under WATCH so concurrent writers to one profile retry
// instead of overwriting each other
func (r *redisRepository) update(ctx context.Context, profile string, fn func(s *Snapshot)) (*Snapshot, error) {
	key := r.buildKey(profile)

	var snapshot *Snapshot
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case err == redis.Nil:
			snapshot = newSnapshot(profile)
		case err != nil:
			return storeError(err, "failed to get snapshot from Redis")
		default:
			snapshot, err = decodeSnapshot(raw)
			if err != nil {
				return err
			}
		}

		fn(snapshot)
		snapshot.UpdatedAt = r.clock.Now()

		data, err := json.Marshal(snapshot)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal snapshot")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return snapshot, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, storeError(err, "failed to update snapshot").WithMeta("profile", profile)
	}

	return nil, errors.Abortedf("snapshot for %s changed during %d attempts", profile, maxUpdateAttempts).
		WithMeta("profile", profile)
}

// buildKey creates the Redis key for a profile's snapshot
func (r *redisRepository) buildKey(profile string) string {
	return snapshotKeyPrefix + profile
}

// storeError keeps the code of errors raised here and treats anything the
// client returns as the store being unavailable
func storeError(err error, message string) *errors.Error {
	var coded *errors.Error
	switch {
	case errors.As(err, &coded):
		return errors.Wrap(err, message)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.FromContext(err, message)
	default:
		return errors.WrapWithCode(err, errors.CodeUnavailable, message)
	}
}

func decodeSnapshot(raw []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal snapshot")
	}
	if snapshot.Items == nil {
		snapshot.Items = map[entities.ItemType]int{}
	}
	return &snapshot, nil
}
