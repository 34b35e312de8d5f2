package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

// KeyLayout is one admissible shape of key and door access for a dungeon.
// The variants are SmallKeyLayout, BigKeyLayout and EndKeyLayout.
type KeyLayout interface {
	// CanBeTrue reports whether the hypothesis is consistent with this layout
	CanBeTrue(md *MutableDungeon, state DungeonState) bool

	canBeTrue(md *MutableDungeon, state DungeonState, reserved int) bool
}

// SmallKeyLayout places Count small keys among Locations. Keys forced into
// accessible locations are reserved for the child layouts.
type SmallKeyLayout struct {
	Count     int
	Locations []entities.DungeonItemID
	// BigKeyInLocations marks that the big key may occupy one of Locations
	BigKeyInLocations bool
	// Doors, when set, must all be open before a spare key may be held
	Doors       []entities.KeyDoorID
	Requirement requirements.Requirement
	Children    []KeyLayout
}

// CanBeTrue implements KeyLayout
func (l SmallKeyLayout) CanBeTrue(md *MutableDungeon, state DungeonState) bool {
	return l.canBeTrue(md, state, 0)
}

func (l SmallKeyLayout) canBeTrue(md *MutableDungeon, state DungeonState, reserved int) bool {
	if !layoutApplies(l.Requirement, md, state) {
		return false
	}

	mode := md.items.Mode()
	if mode.SmallKeyShuffle {
		return childrenAccept(l.Children, md, state, reserved)
	}

	accessible, inaccessible := md.countLocations(l.Locations, state.sequenceBreak)
	if l.BigKeyInLocations && md.dungeon.BigKeyInPool(mode) && !mode.BigKeyShuffle {
		if state.bigKey {
			accessible--
		} else {
			inaccessible--
		}
		if accessible < 0 || inaccessible < 0 {
			return false
		}
	}

	forced := l.Count - inaccessible
	if forced < 0 {
		forced = 0
	}
	if forced+reserved > state.keysCollected {
		return false
	}

	if len(l.Doors) > 0 && md.AvailableKeys(state)-state.UnlockedCount() > 0 {
		open := make(map[entities.KeyDoorID]bool)
		for _, id := range md.GetAccessibleKeyDoors(state.sequenceBreak) {
			open[id] = true
		}
		for _, id := range l.Doors {
			if open[id] {
				return false
			}
		}
	}

	return childrenAccept(l.Children, md, state, reserved+forced)
}

// BigKeyLayout places the big key among Locations
type BigKeyLayout struct {
	Locations   []entities.DungeonItemID
	Requirement requirements.Requirement
	Children    []KeyLayout
}

// CanBeTrue implements KeyLayout
func (l BigKeyLayout) CanBeTrue(md *MutableDungeon, state DungeonState) bool {
	return l.canBeTrue(md, state, 0)
}

func (l BigKeyLayout) canBeTrue(md *MutableDungeon, state DungeonState, reserved int) bool {
	if !layoutApplies(l.Requirement, md, state) {
		return false
	}

	mode := md.items.Mode()
	if !md.dungeon.BigKeyInPool(mode) || mode.BigKeyShuffle {
		return childrenAccept(l.Children, md, state, reserved)
	}

	accessible, inaccessible := md.countLocations(l.Locations, state.sequenceBreak)
	if state.bigKey && accessible == 0 {
		return false
	}
	if !state.bigKey && inaccessible == 0 {
		return false
	}

	return childrenAccept(l.Children, md, state, reserved)
}

// EndKeyLayout accepts whenever its requirement applies
type EndKeyLayout struct {
	Requirement requirements.Requirement
}

// CanBeTrue implements KeyLayout
func (l EndKeyLayout) CanBeTrue(md *MutableDungeon, state DungeonState) bool {
	return l.canBeTrue(md, state, 0)
}

func (l EndKeyLayout) canBeTrue(md *MutableDungeon, state DungeonState, _ int) bool {
	return layoutApplies(l.Requirement, md, state)
}

func layoutApplies(req requirements.Requirement, md *MutableDungeon, state DungeonState) bool {
	return requirements.Met(req, md.items, state.sequenceBreak)
}

func childrenAccept(children []KeyLayout, md *MutableDungeon, state DungeonState, reserved int) bool {
	if len(children) == 0 {
		return true
	}
	for _, child := range children {
		if child.canBeTrue(md, state, reserved) {
			return true
		}
	}
	return false
}

// layoutReferences collects every item and door a layout tree names
func layoutReferences(layout KeyLayout) ([]entities.DungeonItemID, []entities.KeyDoorID) {
	var items []entities.DungeonItemID
	var doors []entities.KeyDoorID
	var walk func(KeyLayout)
	walk = func(l KeyLayout) {
		switch v := l.(type) {
		case SmallKeyLayout:
			items = append(items, v.Locations...)
			doors = append(doors, v.Doors...)
			for _, c := range v.Children {
				walk(c)
			}
		case BigKeyLayout:
			items = append(items, v.Locations...)
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(layout)
	return items, doors
}
