package inventory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Snapshot
}

// NewInMemory creates a new in-memory repository. A nil clock uses the real one.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Snapshot),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a profile's snapshot
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.store[input.Profile]
	if !exists {
		return nil, errors.NotFound("inventory snapshot not found").
			WithMeta("profile", input.Profile)
	}

	return &GetOutput{Snapshot: snapshot.clone()}, nil
}

// Save replaces a profile's snapshot
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
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

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot.UpdatedAt = r.clock.Now()
	r.store[input.Profile] = snapshot

	return &SaveOutput{Snapshot: snapshot.clone()}, nil
}

// SetItem changes one item count, creating the snapshot if needed
func (r *InMemoryRepository) SetItem(_ context.Context, input SetItemInput) (*SetItemOutput, error) {
	if err := validateSetItem(input); err != nil {
		return nil, err
	}

	snapshot := r.update(input.Profile, func(s *Snapshot) {
		setItem(s.Items, input.Item, input.Count)
	})

	return &SetItemOutput{Snapshot: snapshot}, nil
}

// SetMode replaces the mode, creating the snapshot if needed
func (r *InMemoryRepository) SetMode(_ context.Context, input SetModeInput) (*SetModeOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if err := validateMode(input.Mode); err != nil {
		return nil, err
	}

	snapshot := r.update(input.Profile, func(s *Snapshot) {
		s.Mode = input.Mode.Clone()
	})

	return &SetModeOutput{Snapshot: snapshot}, nil
}

// Delete removes a profile's snapshot
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.Profile]
	delete(r.store, input.Profile)

	return &DeleteOutput{Deleted: exists}, nil
}

func (r *InMemoryRepository) update(profile string, fn func(s *Snapshot)) *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, exists := r.store[profile]
	if !exists {
		snapshot = newSnapshot(profile)
		r.store[profile] = snapshot
	}
	fn(snapshot)
	snapshot.UpdatedAt = r.clock.Now()

	return snapshot.clone()
}
