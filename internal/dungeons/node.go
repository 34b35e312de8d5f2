package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

// DungeonNode is a traversable room or area inside a dungeon
type DungeonNode struct {
	ID entities.DungeonNodeID

	// Connections are the incoming edges, fixed at construction
	Connections []NodeConnection

	// Accessibility is derived from Connections on every recompute. Never Partial.
	Accessibility entities.AccessibilityLevel
}

func (n *DungeonNode) evaluate(md *MutableDungeon) entities.AccessibilityLevel {
	level := entities.AccessibilityNone
	for _, conn := range n.Connections {
		level = entities.MaxAccessibility(level, conn.evaluate(md))
		if level == entities.AccessibilityNormal {
			break
		}
	}
	return level
}

// KeyDoor is a small-key or big-key gate. Unlocked is the only field a hypothesis changes.
type KeyDoor struct {
	ID       entities.KeyDoorID
	Big      bool
	Unlocked bool
}

// Requirement is met while the door is unlocked
func (d *KeyDoor) Requirement() requirements.Requirement {
	return requirements.Func(func(requirements.ItemProvider) entities.AccessibilityLevel {
		if d.Unlocked {
			return entities.AccessibilityNormal
		}
		return entities.AccessibilityNone
	})
}
