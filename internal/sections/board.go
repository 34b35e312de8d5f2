package sections

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

// Board keeps the latest update per dungeon
type Board struct {
	mu       sync.RWMutex
	sections map[entities.DungeonID]*Update
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		sections: make(map[entities.DungeonID]*Update),
	}
}

var _ Consumer = (*Board)(nil)

// Publish stores a copy of the update
func (b *Board) Publish(_ context.Context, update *Update) error {
	if update == nil {
		return errors.InvalidArgument("update is required")
	}

	if update.DungeonID == "" {
		return errors.InvalidArgument("dungeon ID is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.sections[update.DungeonID] = update.Clone()

	return nil
}

// Get returns the latest update for a dungeon
func (b *Board) Get(id entities.DungeonID) (*Update, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	update, ok := b.sections[id]
	if !ok {
		return nil, errors.NotFoundf("no section for dungeon %s", id).
			WithMeta("dungeon_id", string(id))
	}

	return update.Clone(), nil
}

// All returns every published section in tracker order
func (b *Board) All() []*Update {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*Update, 0, len(b.sections))
	for _, update := range b.sections {
		out = append(out, update.Clone())
	}

	sort.Slice(out, func(i, j int) bool {
		return trackerIndex(out[i].DungeonID) < trackerIndex(out[j].DungeonID)
	})

	return out
}

// Clear drops every section
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sections = make(map[entities.DungeonID]*Update)
}

func trackerIndex(id entities.DungeonID) int {
	for i, d := range entities.AllDungeons {
		if d == id {
			return i
		}
	}
	return len(entities.AllDungeons)
}
