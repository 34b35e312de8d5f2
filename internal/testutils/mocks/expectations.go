// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"sync"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/sections"
	sectionsmock "github.com/KirkDiggler/dungeon-tracker/internal/sections/mock"
)

// Published records the updates a mock consumer received
type Published struct {
	mu      sync.Mutex
	updates map[entities.DungeonID]*sections.Update
}

// Get returns the update published for a dungeon, nil if none was
func (p *Published) Get(id entities.DungeonID) *sections.Update {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.updates[id]
}

// Len returns the number of dungeons published
func (p *Published) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.updates)
}

// ExpectPublishes sets up one Publish expectation per dungeon and records what
// was published. Publishing may happen concurrently and in any order.
func ExpectPublishes(mockConsumer *sectionsmock.MockConsumer, ids ...entities.DungeonID) *Published {
	p := &Published{updates: make(map[entities.DungeonID]*sections.Update, len(ids))}

	for _, id := range ids {
		mockConsumer.EXPECT().
			Publish(gomock.Any(), gomock.Cond(func(x any) bool {
				update, ok := x.(*sections.Update)
				return ok && update != nil && update.DungeonID == id
			})).
			DoAndReturn(func(_ context.Context, update *sections.Update) error {
				p.mu.Lock()
				defer p.mu.Unlock()
				p.updates[update.DungeonID] = update
				return nil
			})
	}

	return p
}
