package overworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/overworld"
)

var _ dungeons.OverworldAccessibility = (*overworld.Static)(nil)

func TestStatic(t *testing.T) {
	s := overworld.NewStatic(map[entities.OverworldNodeID]entities.AccessibilityLevel{
		entities.OverworldEPEntry: entities.AccessibilityNormal,
	}, entities.AccessibilityNone)

	assert.Equal(t, entities.AccessibilityNormal, s.Accessibility(entities.OverworldEPEntry))
	assert.Equal(t, entities.AccessibilityNone, s.Accessibility(entities.OverworldGTEntry))

	s.Set(entities.OverworldGTEntry, entities.AccessibilitySequenceBreak)
	assert.Equal(t, entities.AccessibilitySequenceBreak, s.Accessibility(entities.OverworldGTEntry))
	assert.Len(t, s.Levels(), 2)
}

func TestOpen(t *testing.T) {
	s := overworld.Open()
	s.Set(entities.OverworldToHEntry, entities.AccessibilityInspect)

	assert.Equal(t, entities.AccessibilityNormal, s.Accessibility(entities.OverworldTRBackEntry))
	assert.Equal(t, entities.AccessibilityInspect, s.Accessibility(entities.OverworldToHEntry))
}

func TestStatic_PartialIsStoredAsNormal(t *testing.T) {
	s := overworld.NewStatic(map[entities.OverworldNodeID]entities.AccessibilityLevel{
		entities.OverworldEPEntry: entities.AccessibilityPartial,
	}, entities.AccessibilityPartial)

	assert.Equal(t, entities.AccessibilityNormal, s.Accessibility(entities.OverworldEPEntry))
	assert.Equal(t, entities.AccessibilityNormal, s.Accessibility(entities.OverworldGTEntry))

	s.Set(entities.OverworldToHEntry, entities.AccessibilityPartial)
	assert.Equal(t, entities.AccessibilityNormal, s.Levels()[entities.OverworldToHEntry])
}
