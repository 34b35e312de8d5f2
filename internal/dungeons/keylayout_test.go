package dungeons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/overworld"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

const (
	vaultLobby entities.DungeonNodeID   = "VaultLobby"
	vaultInner entities.DungeonNodeID   = "VaultInner"
	vaultDoor  entities.KeyDoorID       = "VaultDoor"
	vaultEntry entities.OverworldNodeID = "VaultEntry"
	vaultLeft  entities.DungeonItemID   = "VaultLeft"
	vaultRight entities.DungeonItemID   = "VaultRight"
	vaultBack  entities.DungeonItemID   = "VaultBack"
)

// vault is a one-door dungeon: two chests in the lobby, one behind the door
func vault(layouts ...KeyLayout) *Dungeon {
	return &Dungeon{
		ID:            "Vault",
		SmallKeyCount: 1,
		Items:         []entities.DungeonItemID{vaultLeft, vaultRight, vaultBack},
		SmallKeyDoors: []entities.KeyDoorID{vaultDoor},
		KeyLayouts:    layouts,
		Nodes:         []entities.DungeonNodeID{vaultLobby, vaultInner},
		Entries:       []entities.OverworldNodeID{vaultEntry},
		Connections: []NodeConnection{
			Entry(vaultEntry, vaultLobby),
			Gated(vaultLobby, vaultInner, vaultDoor, nil),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			vaultLeft:  vaultLobby,
			vaultRight: vaultLobby,
			vaultBack:  vaultInner,
		},
	}
}

func applyVault(t *testing.T, d *Dungeon, state DungeonState) *MutableDungeon {
	t.Helper()
	require.NoError(t, d.Validate())
	md, err := NewMutableDungeon(d, inventoryWith(entities.Mode{}), overworld.Open())
	require.NoError(t, err)
	require.NoError(t, md.ApplyState(state))
	return md
}

func TestValidateKeyLayout_IsADisjunction(t *testing.T) {
	sbOnly := requirements.SequenceBreak(entities.SequenceBreakDarkRoomEP)
	sbMode := entities.Mode{SequenceBreaks: []entities.SequenceBreakID{entities.SequenceBreakDarkRoomEP}}

	testCases := []struct {
		name     string
		layouts  []KeyLayout
		mode     entities.Mode
		state    DungeonState
		expected bool
	}{
		{
			name:     "no layouts",
			state:    EmptyState(false),
			expected: false,
		},
		{
			name:     "every layout rejects",
			layouts:  []KeyLayout{EndKeyLayout{Requirement: requirements.None}, EndKeyLayout{Requirement: requirements.None}},
			state:    EmptyState(false),
			expected: false,
		},
		{
			name:     "one layout accepts",
			layouts:  []KeyLayout{EndKeyLayout{Requirement: requirements.None}, EndKeyLayout{Requirement: requirements.Always}},
			state:    EmptyState(false),
			expected: true,
		},
		{
			name:     "trick layout outside a trick hypothesis",
			layouts:  []KeyLayout{EndKeyLayout{Requirement: sbOnly}},
			mode:     sbMode,
			state:    EmptyState(false),
			expected: false,
		},
		{
			name:     "trick layout inside a trick hypothesis",
			layouts:  []KeyLayout{EndKeyLayout{Requirement: sbOnly}},
			mode:     sbMode,
			state:    EmptyState(true),
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := vault(tc.layouts...)
			md, err := NewMutableDungeon(d, inventoryWith(tc.mode), overworld.Open())
			require.NoError(t, err)
			require.NoError(t, md.ApplyState(tc.state))

			assert.Equal(t, tc.expected, md.ValidateKeyLayout(tc.state))

			accepted := false
			for _, layout := range tc.layouts {
				accepted = accepted || layout.CanBeTrue(md, tc.state)
			}
			assert.Equal(t, accepted, md.ValidateKeyLayout(tc.state))
		})
	}
}

func TestSmallKeyLayout_ForcedKeys(t *testing.T) {
	layout := SmallKeyLayout{Count: 1, Locations: []entities.DungeonItemID{vaultLeft, vaultRight}}

	t.Run("key must be in hand once both lobby chests are open", func(t *testing.T) {
		md := applyVault(t, vault(layout), EmptyState(false))
		assert.False(t, layout.CanBeTrue(md, EmptyState(false)))
		assert.True(t, layout.CanBeTrue(md, EmptyState(false).WithKeys(1)))
	})

	t.Run("an unreachable location may still hold the key", func(t *testing.T) {
		wide := SmallKeyLayout{Count: 1, Locations: []entities.DungeonItemID{vaultLeft, vaultBack}}
		md := applyVault(t, vault(wide), EmptyState(false))
		assert.True(t, wide.CanBeTrue(md, EmptyState(false)))
	})

	t.Run("nested layouts reserve the parent's keys", func(t *testing.T) {
		nested := SmallKeyLayout{
			Count:     1,
			Locations: []entities.DungeonItemID{vaultLeft, vaultRight},
			Children:  []KeyLayout{layout},
		}
		md := applyVault(t, vault(nested), EmptyState(false))
		assert.False(t, nested.CanBeTrue(md, EmptyState(false).WithKeys(1)))
		assert.True(t, nested.CanBeTrue(md, EmptyState(false).WithKeys(2)))
	})

	t.Run("shuffled keys defer to the children", func(t *testing.T) {
		d := vault(layout)
		md, err := NewMutableDungeon(d, inventoryWith(entities.Mode{SmallKeyShuffle: true}), overworld.Open())
		require.NoError(t, err)
		require.NoError(t, md.ApplyState(EmptyState(false)))
		assert.True(t, layout.CanBeTrue(md, EmptyState(false)))
	})
}

func TestSmallKeyLayout_Doors(t *testing.T) {
	layout := SmallKeyLayout{Doors: []entities.KeyDoorID{vaultDoor}}

	t.Run("spare key with the door in reach", func(t *testing.T) {
		state := EmptyState(false).WithKeys(1)
		md := applyVault(t, vault(layout), state)
		assert.False(t, layout.CanBeTrue(md, state))
	})

	t.Run("key spent on the door", func(t *testing.T) {
		state := EmptyState(false).WithKeys(1).WithDoor(vaultDoor)
		md := applyVault(t, vault(layout), state)
		assert.True(t, layout.CanBeTrue(md, state))
	})
}

func TestBigKeyLayout(t *testing.T) {
	d := vault()
	d.BigKey = "VaultBigKey"
	layout := BigKeyLayout{Locations: []entities.DungeonItemID{vaultLeft, vaultRight}}
	d.KeyLayouts = []KeyLayout{layout}

	md := applyVault(t, d, EmptyState(false))

	t.Run("held big key needs a reachable home", func(t *testing.T) {
		assert.True(t, layout.CanBeTrue(md, EmptyState(false).WithBigKey(true)))
	})

	t.Run("missing big key needs an unreachable home", func(t *testing.T) {
		assert.False(t, layout.CanBeTrue(md, EmptyState(false)))

		behind := BigKeyLayout{Locations: []entities.DungeonItemID{vaultLeft, vaultBack}}
		assert.True(t, behind.CanBeTrue(md, EmptyState(false)))
	})

	t.Run("shuffled big key is unconstrained", func(t *testing.T) {
		shuffled, err := NewMutableDungeon(d, inventoryWith(entities.Mode{BigKeyShuffle: true}), overworld.Open())
		require.NoError(t, err)
		require.NoError(t, shuffled.ApplyState(EmptyState(false)))
		assert.True(t, layout.CanBeTrue(shuffled, EmptyState(false)))
	})
}

func TestGetAccessibleKeyDoors_TrickGatedDoor(t *testing.T) {
	d := vault()
	d.Connections[1] = Gated(vaultLobby, vaultInner, vaultDoor, requirements.SequenceBreak(entities.SequenceBreakDarkRoomEP))
	mode := entities.Mode{SequenceBreaks: []entities.SequenceBreakID{entities.SequenceBreakDarkRoomEP}}
	require.NoError(t, d.Validate())

	md, err := NewMutableDungeon(d, inventoryWith(mode), overworld.Open())
	require.NoError(t, err)
	require.NoError(t, md.ApplyState(EmptyState(true)))

	assert.Empty(t, md.GetAccessibleKeyDoors(false))
	assert.Equal(t, []entities.KeyDoorID{vaultDoor}, md.GetAccessibleKeyDoors(true))
}
