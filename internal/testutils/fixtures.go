package testutils

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

// Profile is the default profile name for snapshot fixtures
const Profile = "speedrunner"

// EveryItem holds one of each base item
func EveryItem() []entities.ItemType {
	return append([]entities.ItemType(nil), entities.BaseItems...)
}

// Inventory builds an inventory holding one of each listed item
func Inventory(mode entities.Mode, items ...entities.ItemType) *entities.Inventory {
	inv := &entities.Inventory{
		Items:   make(map[entities.ItemType]int, len(items)),
		Options: mode,
	}
	for _, item := range items {
		inv.Items[item]++
	}
	return inv
}

// Keysanity shuffles every dungeon item
func Keysanity() entities.Mode {
	return entities.Mode{
		MapShuffle:      true,
		CompassShuffle:  true,
		SmallKeyShuffle: true,
		BigKeyShuffle:   true,
	}
}

// WithTricks enables the given sequence breaks on mode
func WithTricks(mode entities.Mode, tricks ...entities.SequenceBreakID) entities.Mode {
	out := mode.Clone()
	out.SequenceBreaks = append(out.SequenceBreaks, tricks...)
	return out
}
