package dungeons

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

// DefaultPoolSize is the number of working copies kept per dungeon
const DefaultPoolSize = 2

// PoolConfig holds the dependencies for a Pool
type PoolConfig struct {
	Factory *Factory
	// Size is the number of working copies per dungeon, DefaultPoolSize when zero
	Size int
}

// Validate ensures all required dependencies are provided
func (c *PoolConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Factory == nil {
		vb.RequiredField("Factory")
	}
	errors.ValidateNonNegative("Size", c.Size, vb)

	return vb.Build()
}

// Pool hands out exclusive MutableDungeon copies keyed by dungeon. Copies are
// built lazily up to the pool size; further callers wait for a release.
type Pool struct {
	factory *Factory
	size    int

	mu      sync.Mutex
	entries map[entities.DungeonID]*poolEntry
}

type poolEntry struct {
	free    chan *MutableDungeon
	created int
}

// NewPool creates a pool over the factory's catalog
func NewPool(cfg *PoolConfig) (*Pool, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.Size
	if size == 0 {
		size = DefaultPoolSize
	}

	return &Pool{
		factory: cfg.Factory,
		size:    size,
		entries: make(map[entities.DungeonID]*poolEntry),
	}, nil
}

// Factory returns the catalog the pool builds copies from
func (p *Pool) Factory() *Factory {
	return p.factory
}

// Acquire checks out a working copy of the dungeon, blocking while every copy
// is in use
func (p *Pool) Acquire(ctx context.Context, id entities.DungeonID) (*MutableDungeon, error) {
	d, err := p.factory.Get(id)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	entry, ok := p.entries[id]
	if !ok {
		entry = &poolEntry{free: make(chan *MutableDungeon, p.size)}
		p.entries[id] = entry
	}
	select {
	case md := <-entry.free:
		p.mu.Unlock()
		return md, nil
	default:
	}
	build := entry.created < p.size
	if build {
		entry.created++
	}
	p.mu.Unlock()

	if build {
		md, err := NewMutableDungeon(d, nil, nil)
		if err != nil {
			p.mu.Lock()
			entry.created--
			p.mu.Unlock()
			return nil, err
		}
		return md, nil
	}

	select {
	case md := <-entry.free:
		return md, nil
	case <-ctx.Done():
		return nil, errors.FromContext(ctx.Err(), "acquire dungeon").
			WithMeta("dungeon_id", string(id))
	}
}

// Release returns a copy to the pool. The copy is unbound from its providers.
func (p *Pool) Release(md *MutableDungeon) {
	if md == nil {
		return
	}
	md.Bind(nil, nil)

	p.mu.Lock()
	entry, ok := p.entries[md.dungeon.ID]
	p.mu.Unlock()
	if !ok {
		return
	}

	select {
	case entry.free <- md:
	default:
	}
}

// With runs fn on an exclusive copy of the dungeon and always releases it
func (p *Pool) With(ctx context.Context, id entities.DungeonID, fn func(md *MutableDungeon) error) error {
	md, err := p.Acquire(ctx, id)
	if err != nil {
		return err
	}
	defer p.Release(md)

	return fn(md)
}
