// Package sections carries dungeon results to the tracker's display sections.
//
// The engine publishes one Update per evaluated dungeon. Board is the in-memory
// consumer; anything else that renders results implements Consumer.
package sections

//go:generate mockgen -destination=mock/mock_consumer.go -package=sectionsmock github.com/KirkDiggler/dungeon-tracker/internal/sections Consumer

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

// Consumer receives dungeon results
type Consumer interface {
	// Publish replaces the section of update.DungeonID
	Publish(ctx context.Context, update *Update) error
}

// Update is one dungeon's evaluated result
type Update struct {
	DungeonID    entities.DungeonID     `json:"dungeon_id"`
	EvaluationID string                 `json:"evaluation_id"`
	Result       dungeons.DungeonResult `json:"result"`
	// Doors are the key door flags of the worst settled hypothesis
	Doors       map[entities.KeyDoorID]bool `json:"doors,omitempty"`
	Hypotheses  int                         `json:"hypotheses"`
	EvaluatedAt time.Time                   `json:"evaluated_at"`
}

// Clone returns a copy that shares no maps or slices with u
func (u *Update) Clone() *Update {
	if u == nil {
		return nil
	}
	out := *u
	out.Result = u.Result.Clone()
	if u.Doors != nil {
		out.Doors = make(map[entities.KeyDoorID]bool, len(u.Doors))
		for id, open := range u.Doors {
			out.Doors[id] = open
		}
	}
	return &out
}
