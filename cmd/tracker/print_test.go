package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/sections"
)

func TestPrinter_Update(t *testing.T) {
	f, err := dungeons.NewFactory()
	require.NoError(t, err)
	ep, err := f.Get(entities.DungeonEasternPalace)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := newPrinter(&buf, false)
	assert.False(t, p.colored)

	p.update(ep, entities.Mode{}, &sections.Update{
		DungeonID: entities.DungeonEasternPalace,
		Result: dungeons.DungeonResult{
			Bosses:        []entities.AccessibilityLevel{entities.AccessibilityNone},
			Accessibility: entities.AccessibilityPartial,
			Accessible:    1,
		},
		Doors: map[entities.KeyDoorID]bool{
			entities.EPEyegoreKeyDoor:    false,
			entities.EPDarkSquareKeyDoor: true,
		},
	})

	assert.Equal(t,
		"EasternPalace     Partial        1/3   bosses: None  doors: EPDarkSquareKeyDoor=open,EPEyegoreKeyDoor=locked\n",
		buf.String())
}

func TestDoorFlags(t *testing.T) {
	d := &dungeons.Dungeon{
		SmallKeyDoors: []entities.KeyDoorID{"B", "A"},
		BigKeyDoors:   []entities.KeyDoorID{"Big"},
	}

	assert.Equal(t, "", doorFlags(d, nil))
	assert.Equal(t, "B=locked,A=open,Big=open", doorFlags(d, map[entities.KeyDoorID]bool{
		"A":   true,
		"B":   false,
		"Big": true,
	}))
	assert.Equal(t, "A=open", doorFlags(d, map[entities.KeyDoorID]bool{"A": true, "Other": true}))
}

func TestDescribeMode(t *testing.T) {
	assert.Equal(t, "vanilla", describeMode(entities.Mode{}))
	assert.Equal(t, "maps key-drops trick:DarkRoomHC", describeMode(entities.Mode{
		MapShuffle:     true,
		KeyDropShuffle: true,
		SequenceBreaks: []entities.SequenceBreakID{entities.SequenceBreakDarkRoomHC},
	}))
}
