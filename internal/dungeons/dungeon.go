// Package dungeons implements the dungeon accessibility and key-logic engine.
//
// A Dungeon is the immutable catalog entry for one dungeon. A MutableDungeon is
// a reusable working copy of its node graph onto which key hypotheses
// (DungeonState) are applied. Search enumerates hypotheses, KeyLayouts reject
// the ones that could softlock the player, and Fold reduces the surviving ones
// to a single DungeonResult.
package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

// Dungeon is the static description of one dungeon. It is built once by the
// Factory and never modified.
type Dungeon struct {
	ID   entities.DungeonID
	Name string

	// Map and Compass are empty when the dungeon has none
	Map      entities.ItemType
	Compass  entities.ItemType
	SmallKey entities.ItemType
	// BigKey is empty when the dungeon has none
	BigKey entities.ItemType

	// SmallKeyCount is the number of small keys placed in regular item slots
	SmallKeyCount int

	Items         []entities.DungeonItemID
	Bosses        []entities.DungeonItemID
	SmallKeyDrops []entities.DungeonItemID
	BigKeyDrops   []entities.DungeonItemID

	SmallKeyDoors []entities.KeyDoorID
	BigKeyDoors   []entities.KeyDoorID

	KeyLayouts []KeyLayout

	Nodes       []entities.DungeonNodeID
	Entries     []entities.OverworldNodeID
	Connections []NodeConnection

	// Locations places every item, boss and drop slot on a node
	Locations map[entities.DungeonItemID]entities.DungeonNodeID
}

// SmallKeyTotal is the number of small keys in the pool for mode
func (d *Dungeon) SmallKeyTotal(mode entities.Mode) int {
	if mode.KeyDropShuffle {
		return d.SmallKeyCount + len(d.SmallKeyDrops)
	}
	return d.SmallKeyCount
}

// BigKeyInPool reports whether the big key occupies an item slot.
// A big key that normally drops from an enemy only joins the pool with key-drop shuffle.
func (d *Dungeon) BigKeyInPool(mode entities.Mode) bool {
	if d.BigKey == "" {
		return false
	}
	return len(d.BigKeyDrops) == 0 || mode.KeyDropShuffle
}

// TotalAvailable is the number of slots holding countable items under mode
func (d *Dungeon) TotalAvailable(mode entities.Mode) int {
	total := len(d.Items) + len(d.Bosses)
	if mode.KeyDropShuffle {
		total += len(d.SmallKeyDrops) + len(d.BigKeyDrops)
	}
	if d.Map != "" && !mode.MapShuffle {
		total--
	}
	if d.Compass != "" && !mode.CompassShuffle {
		total--
	}
	if !mode.SmallKeyShuffle {
		total -= d.SmallKeyTotal(mode)
	}
	if d.BigKeyInPool(mode) && !mode.BigKeyShuffle {
		total--
	}
	if total < 0 {
		return 0
	}
	return total
}

// IsSmallKeyDrop reports whether id is one of the dungeon's small-key drops
func (d *Dungeon) IsSmallKeyDrop(id entities.DungeonItemID) bool {
	return containsItem(d.SmallKeyDrops, id)
}

// IsBigKeyDrop reports whether id is one of the dungeon's big-key drops
func (d *Dungeon) IsBigKeyDrop(id entities.DungeonItemID) bool {
	return containsItem(d.BigKeyDrops, id)
}

// IsKeyDrop reports whether id is a small-key or big-key drop
func (d *Dungeon) IsKeyDrop(id entities.DungeonItemID) bool {
	return d.IsSmallKeyDrop(id) || d.IsBigKeyDrop(id)
}

// HasSmallKeyDoor reports whether id is one of the dungeon's small-key doors
func (d *Dungeon) HasSmallKeyDoor(id entities.KeyDoorID) bool {
	for _, door := range d.SmallKeyDoors {
		if door == id {
			return true
		}
	}
	return false
}

// Validate checks that every id referenced by connections, locations and key
// layouts belongs to the dungeon
func (d *Dungeon) Validate() error {
	if d.ID == "" {
		return errors.Internal("dungeon id is required")
	}

	fail := func(format string, args ...interface{}) error {
		return errors.Internalf(format, args...).WithMeta("dungeon_id", string(d.ID))
	}

	nodes := make(map[entities.DungeonNodeID]bool, len(d.Nodes))
	for _, id := range d.Nodes {
		if nodes[id] {
			return fail("duplicate node %s", id)
		}
		nodes[id] = true
	}

	doors := make(map[entities.KeyDoorID]bool)
	for _, id := range append(append([]entities.KeyDoorID{}, d.SmallKeyDoors...), d.BigKeyDoors...) {
		if doors[id] {
			return fail("duplicate key door %s", id)
		}
		doors[id] = true
	}

	entries := make(map[entities.OverworldNodeID]bool, len(d.Entries))
	for _, id := range d.Entries {
		entries[id] = true
	}

	for _, conn := range d.Connections {
		if !nodes[conn.Target()] {
			return fail("connection targets unknown node %s", conn.Target())
		}
		switch c := conn.(type) {
		case EntryConnection:
			if !entries[c.From] {
				return fail("entry connection from unknown overworld node %s", c.From)
			}
		case PlainConnection:
			if !nodes[c.From] {
				return fail("connection from unknown node %s", c.From)
			}
		case KeyDoorConnection:
			if !nodes[c.From] {
				return fail("connection from unknown node %s", c.From)
			}
			if !doors[c.Door] {
				return fail("connection through unknown key door %s", c.Door)
			}
		}
	}

	slots := make(map[entities.DungeonItemID]bool)
	for _, list := range [][]entities.DungeonItemID{d.Items, d.Bosses, d.SmallKeyDrops, d.BigKeyDrops} {
		for _, id := range list {
			if slots[id] {
				return fail("duplicate item %s", id)
			}
			slots[id] = true
			node, ok := d.Locations[id]
			if !ok {
				return fail("item %s has no location", id)
			}
			if !nodes[node] {
				return fail("item %s placed on unknown node %s", id, node)
			}
		}
	}
	for id := range d.Locations {
		if !slots[id] {
			return fail("location for unlisted item %s", id)
		}
	}

	for _, layout := range d.KeyLayouts {
		items, layoutDoors := layoutReferences(layout)
		for _, id := range items {
			if !slots[id] {
				return fail("key layout references unknown item %s", id)
			}
		}
		for _, id := range layoutDoors {
			if !d.HasSmallKeyDoor(id) {
				return fail("key layout references unknown small key door %s", id)
			}
		}
	}

	return nil
}

func containsItem(list []entities.DungeonItemID, id entities.DungeonItemID) bool {
	for _, item := range list {
		if item == id {
			return true
		}
	}
	return false
}
