package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

func TestAccessibilityLevel_Collectable(t *testing.T) {
	testCases := []struct {
		level         entities.AccessibilityLevel
		inLogic       bool
		sequenceBreak bool
	}{
		{entities.AccessibilityNone, false, false},
		{entities.AccessibilityInspect, false, false},
		{entities.AccessibilitySequenceBreak, false, true},
		{entities.AccessibilityPartial, true, true},
		{entities.AccessibilityNormal, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			assert.Equal(t, tc.inLogic, tc.level.Collectable(false))
			assert.Equal(t, tc.sequenceBreak, tc.level.Collectable(true))
		})
	}
}

func TestAccessibilityLevel_Text(t *testing.T) {
	level, err := entities.ParseAccessibilityLevel(" sequencebreak ")
	require.NoError(t, err)
	assert.Equal(t, entities.AccessibilitySequenceBreak, level)

	_, err = entities.ParseAccessibilityLevel("Reachable")
	assert.Error(t, err)

	raw, err := json.Marshal([]entities.AccessibilityLevel{entities.AccessibilityNone, entities.AccessibilityNormal})
	require.NoError(t, err)
	assert.JSONEq(t, `["None","Normal"]`, string(raw))

	var decoded []entities.AccessibilityLevel
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []entities.AccessibilityLevel{entities.AccessibilityNone, entities.AccessibilityNormal}, decoded)

	_, err = json.Marshal(entities.AccessibilityLevel(9))
	assert.Error(t, err)
	assert.Equal(t, "AccessibilityLevel(9)", entities.AccessibilityLevel(9).String())
}

func TestMinMaxAccessibility(t *testing.T) {
	assert.Equal(t, entities.AccessibilityInspect,
		entities.MinAccessibility(entities.AccessibilityPartial, entities.AccessibilityInspect))
	assert.Equal(t, entities.AccessibilityPartial,
		entities.MaxAccessibility(entities.AccessibilityPartial, entities.AccessibilityInspect))
}

func TestAccessibilityLevel_NodeLevel(t *testing.T) {
	assert.Equal(t, entities.AccessibilityNormal, entities.AccessibilityPartial.NodeLevel())
	assert.Equal(t, entities.AccessibilitySequenceBreak, entities.AccessibilitySequenceBreak.NodeLevel())
	assert.Equal(t, entities.AccessibilityInspect, entities.AccessibilityInspect.NodeLevel())
	assert.Equal(t, entities.AccessibilityNone, entities.AccessibilityLevel(9).NodeLevel())
}

func TestKnownItem(t *testing.T) {
	assert.True(t, entities.KnownItem(entities.ItemLamp))
	assert.True(t, entities.KnownItem(entities.SmallKeyItem(entities.DungeonGanonsTower)))
	assert.True(t, entities.KnownItem(entities.CompassItem(entities.DungeonEasternPalace)))
	assert.False(t, entities.KnownItem("Ocarina"))
	assert.False(t, entities.KnownItem(entities.SmallKeyItem("Sewers")))
}

func TestKnownSequenceBreak(t *testing.T) {
	for _, sb := range entities.AllSequenceBreaks {
		assert.True(t, entities.KnownSequenceBreak(sb), sb)
	}
	assert.False(t, entities.KnownSequenceBreak("Clip"))
}

func TestInventory(t *testing.T) {
	var nilInventory *entities.Inventory
	assert.Equal(t, 0, nilInventory.ItemCount(entities.ItemLamp))
	assert.Equal(t, entities.Mode{}, nilInventory.Mode())

	base := &entities.Inventory{
		Items:   map[entities.ItemType]int{entities.ItemLamp: 1},
		Options: entities.Mode{SequenceBreaks: []entities.SequenceBreakID{entities.SequenceBreakDarkRoomEP}},
	}

	more := base.WithItem(entities.ItemBow, 2)
	assert.Equal(t, 2, more.ItemCount(entities.ItemBow))
	assert.Equal(t, 0, base.ItemCount(entities.ItemBow))

	less := more.WithItem(entities.ItemLamp, 0)
	assert.Equal(t, 0, less.ItemCount(entities.ItemLamp))
	assert.Equal(t, 1, more.ItemCount(entities.ItemLamp))

	clone := base.Clone()
	clone.Options.SequenceBreaks[0] = entities.SequenceBreakDarkRoomHC
	assert.True(t, base.Mode().SequenceBreakEnabled(entities.SequenceBreakDarkRoomEP))
	assert.True(t, base.Mode().AnySequenceBreaks())
	assert.False(t, entities.Mode{}.AnySequenceBreaks())
}
