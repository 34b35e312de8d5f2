// Package overworld provides overworld entrance accessibility to the dungeon engine.
//
// The overworld requirement graph lives outside this module; Static stands in for
// it with a settable level per entrance node.
package overworld

import (
	"sync"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

// Static holds a fixed level per overworld node. Unknown nodes report the default level.
type Static struct {
	mu       sync.RWMutex
	levels   map[entities.OverworldNodeID]entities.AccessibilityLevel
	fallback entities.AccessibilityLevel
}

// NewStatic creates a provider reporting fallback for nodes not in levels.
// Levels are stored as node levels, so Partial is kept as Normal.
func NewStatic(levels map[entities.OverworldNodeID]entities.AccessibilityLevel, fallback entities.AccessibilityLevel) *Static {
	s := &Static{
		levels:   make(map[entities.OverworldNodeID]entities.AccessibilityLevel, len(levels)),
		fallback: fallback.NodeLevel(),
	}
	for id, level := range levels {
		s.levels[id] = level.NodeLevel()
	}
	return s
}

// Open reports every entrance as Normal unless overridden
func Open() *Static {
	return NewStatic(nil, entities.AccessibilityNormal)
}

// Accessibility implements dungeons.OverworldAccessibility
func (s *Static) Accessibility(id entities.OverworldNodeID) entities.AccessibilityLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if level, ok := s.levels[id]; ok {
		return level
	}
	return s.fallback
}

// Set overrides the level of one node
func (s *Static) Set(id entities.OverworldNodeID, level entities.AccessibilityLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels[id] = level.NodeLevel()
}

// Levels returns a copy of the overridden levels
func (s *Static) Levels() map[entities.OverworldNodeID]entities.AccessibilityLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[entities.OverworldNodeID]entities.AccessibilityLevel, len(s.levels))
	for id, level := range s.levels {
		out[id] = level
	}
	return out
}
