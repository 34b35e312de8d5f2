package dungeons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/overworld"
)

func TestGetDungeonResult(t *testing.T) {
	f := mustFactory(t)
	darkSquare := []entities.KeyDoorID{entities.EPDarkSquareKeyDoor}
	bothDoors := []entities.KeyDoorID{entities.EPDarkSquareKeyDoor, entities.EPEyegoreKeyDoor}

	testCases := []struct {
		name          string
		items         *entities.Inventory
		state         DungeonState
		accessibility entities.AccessibilityLevel
		accessible    int
		sequenceBreak bool
		bosses        []entities.AccessibilityLevel
	}{
		{
			name:          "everything reachable",
			items:         inventoryWith(entities.Mode{}, entities.ItemLamp, entities.ItemBow),
			state:         mustState(t, bothDoors, 0, true, false),
			accessibility: entities.AccessibilityNormal,
			accessible:    3,
			bosses:        []entities.AccessibilityLevel{entities.AccessibilityNormal},
		},
		{
			name:          "guaranteed boss item caps an unbeatable boss at partial",
			items:         inventoryWith(entities.Mode{GuaranteedBossItems: true}, entities.ItemLamp),
			state:         mustState(t, darkSquare, 0, true, false),
			accessibility: entities.AccessibilityPartial,
			accessible:    2,
			bosses:        []entities.AccessibilityLevel{entities.AccessibilityNone},
		},
		{
			name:          "map and compass credit leaves only a sequence break",
			items:         inventoryWith(entities.Mode{}, entities.ItemLamp),
			state:         mustState(t, darkSquare, 0, true, false),
			accessibility: entities.AccessibilitySequenceBreak,
			accessible:    3,
			sequenceBreak: true,
			bosses:        []entities.AccessibilityLevel{entities.AccessibilityNone},
		},
		{
			name: "dark room trick",
			items: inventoryWith(entities.Mode{
				SequenceBreaks: []entities.SequenceBreakID{entities.SequenceBreakDarkRoomEP},
			}, entities.ItemBow),
			state:         mustState(t, bothDoors, 0, true, true),
			accessibility: entities.AccessibilitySequenceBreak,
			accessible:    3,
			sequenceBreak: true,
			bosses:        []entities.AccessibilityLevel{entities.AccessibilityNormal},
		},
		{
			name:          "credits absorb every locked slot",
			items:         inventoryWith(entities.Mode{}),
			state:         EmptyState(false),
			accessibility: entities.AccessibilitySequenceBreak,
			accessible:    3,
			sequenceBreak: true,
			bosses:        []entities.AccessibilityLevel{entities.AccessibilityNone},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			md, err := f.NewMutableDungeon(entities.DungeonEasternPalace, tc.items, overworld.Open())
			require.NoError(t, err)
			require.NoError(t, md.ApplyState(tc.state))

			result := md.GetDungeonResult(tc.state)
			assert.Equal(t, tc.accessibility, result.Accessibility)
			assert.Equal(t, tc.accessible, result.Accessible)
			assert.Equal(t, tc.sequenceBreak, result.SequenceBreak)
			assert.Equal(t, tc.bosses, result.Bosses)
		})
	}
}

func TestGetDungeonResult_ClosedEntrance(t *testing.T) {
	f := mustFactory(t)
	ow := overworld.NewStatic(nil, entities.AccessibilityNone)

	md, err := f.NewMutableDungeon(entities.DungeonEasternPalace, inventoryWith(entities.Mode{}), ow)
	require.NoError(t, err)
	require.NoError(t, md.ApplyState(EmptyState(false)))

	result := md.GetDungeonResult(EmptyState(false))
	assert.Equal(t, entities.AccessibilityNone, result.Accessibility)
	assert.Equal(t, 0, result.Accessible)
	assert.False(t, result.Visible)
}

func TestGetDungeonResult_VisibleItem(t *testing.T) {
	f := mustFactory(t)
	ow := overworld.NewStatic(map[entities.OverworldNodeID]entities.AccessibilityLevel{
		entities.OverworldDPFrontEntry: entities.AccessibilityInspect,
	}, entities.AccessibilityNone)

	md, err := f.NewMutableDungeon(entities.DungeonDesertPalace, inventoryWith(entities.Mode{}), ow)
	require.NoError(t, err)
	require.NoError(t, md.ApplyState(EmptyState(false)))

	result := md.GetDungeonResult(EmptyState(false))
	assert.Equal(t, entities.AccessibilityInspect, result.Accessibility)
	assert.True(t, result.Visible)
	assert.Equal(t, 0, result.Accessible)
}

func TestGuaranteedBossItemsNeverRaiseAccessibility(t *testing.T) {
	f := mustFactory(t)
	inventories := []*entities.Inventory{
		inventoryWith(entities.Mode{}),
		inventoryWith(entities.Mode{}, entities.ItemLamp),
		inventoryWith(entities.Mode{}, entities.ItemLamp, entities.ItemBow, entities.ItemHammer),
		inventoryWith(entities.Mode{}, everyItem...),
	}

	for _, d := range f.All() {
		for _, inv := range inventories {
			guaranteed := inv.Clone()
			guaranteed.Options.GuaranteedBossItems = true

			for _, state := range []DungeonState{EmptyState(false), openState(d, inv.Mode())} {
				plain, err := f.NewMutableDungeon(d.ID, inv, overworld.Open())
				require.NoError(t, err)
				require.NoError(t, plain.ApplyState(state))

				floored, err := f.NewMutableDungeon(d.ID, guaranteed, overworld.Open())
				require.NoError(t, err)
				require.NoError(t, floored.ApplyState(state))

				without := plain.GetDungeonResult(state)
				with := floored.GetDungeonResult(state)
				assert.LessOrEqual(t, with.Accessible, without.Accessible, "%s %s", d.ID, state)
				if with.Accessibility == entities.AccessibilityNormal {
					assert.Equal(t, entities.AccessibilityNormal, without.Accessibility, "%s %s", d.ID, state)
				}
			}
		}
	}
}
