package dungeons

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

var everyItem = []entities.ItemType{
	entities.ItemSword,
	entities.ItemBow,
	entities.ItemHookshot,
	entities.ItemFireRod,
	entities.ItemIceRod,
	entities.ItemBombos,
	entities.ItemHammer,
	entities.ItemLamp,
	entities.ItemBoots,
	entities.ItemGloves,
	entities.ItemFlippers,
	entities.ItemSomaria,
	entities.ItemByrna,
	entities.ItemCape,
	entities.ItemShield,
}

func inventoryWith(mode entities.Mode, items ...entities.ItemType) *entities.Inventory {
	inv := &entities.Inventory{Items: map[entities.ItemType]int{}, Options: mode}
	for _, item := range items {
		inv.Items[item]++
	}
	return inv
}

func mustFactory(t *testing.T) *Factory {
	t.Helper()
	f, err := NewFactory()
	require.NoError(t, err)
	return f
}

func mustState(t *testing.T, doors []entities.KeyDoorID, keys int, bigKey, sequenceBreak bool) DungeonState {
	t.Helper()
	state, err := NewDungeonState(doors, keys, bigKey, sequenceBreak)
	require.NoError(t, err)
	return state
}

func nodeLevels(md *MutableDungeon) map[entities.DungeonNodeID]entities.AccessibilityLevel {
	out := make(map[entities.DungeonNodeID]entities.AccessibilityLevel, len(md.nodes))
	for id, node := range md.nodes {
		out[id] = node.Accessibility
	}
	return out
}

// openState unlocks every small-key door and holds every key
func openState(d *Dungeon, mode entities.Mode) DungeonState {
	state := EmptyState(false).WithKeys(d.SmallKeyTotal(mode)).WithBigKey(true)
	for _, id := range d.SmallKeyDoors {
		state = state.WithDoor(id)
	}
	return state
}
