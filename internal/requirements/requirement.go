// Package requirements evaluates capability predicates over held items and mode flags.
//
// A Requirement grades a capability on the accessibility lattice rather than as a
// boolean: a location can be reachable normally, only with an enabled trick, only
// visible, or not at all.
package requirements

//go:generate mockgen -destination=mock/mock_provider.go -package=requirementsmock github.com/KirkDiggler/dungeon-tracker/internal/requirements ItemProvider

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

// ItemProvider exposes the player's held item counts and the active game mode.
// Implementations must be safe for concurrent reads.
type ItemProvider interface {
	ItemCount(item entities.ItemType) int
	Mode() entities.Mode
}

// Requirement grades a capability for the given items and mode
type Requirement interface {
	Accessibility(items ItemProvider) entities.AccessibilityLevel
}

// Func adapts a function to a Requirement
type Func func(items ItemProvider) entities.AccessibilityLevel

// Accessibility implements Requirement
func (f Func) Accessibility(items ItemProvider) entities.AccessibilityLevel {
	return f(items)
}

type staticRequirement struct {
	level entities.AccessibilityLevel
}

func (r staticRequirement) Accessibility(ItemProvider) entities.AccessibilityLevel {
	return r.level
}

// Static returns a requirement that always evaluates to level
func Static(level entities.AccessibilityLevel) Requirement {
	return staticRequirement{level: level}
}

var (
	// None is never met
	None = Static(entities.AccessibilityNone)
	// Inspect lets a location be seen but not collected
	Inspect = Static(entities.AccessibilityInspect)
	// Always is always met
	Always = Static(entities.AccessibilityNormal)
)

type itemRequirement struct {
	item  entities.ItemType
	count int
}

func (r itemRequirement) Accessibility(items ItemProvider) entities.AccessibilityLevel {
	if items.ItemCount(r.item) >= r.count {
		return entities.AccessibilityNormal
	}
	return entities.AccessibilityNone
}

// Item is met when at least one of item is held
func Item(item entities.ItemType) Requirement {
	return itemRequirement{item: item, count: 1}
}

// ItemCount is met when at least count of item are held
func ItemCount(item entities.ItemType, count int) Requirement {
	return itemRequirement{item: item, count: count}
}

type allRequirement []Requirement

func (r allRequirement) Accessibility(items ItemProvider) entities.AccessibilityLevel {
	level := entities.AccessibilityNormal
	for _, req := range r {
		level = entities.MinAccessibility(level, req.Accessibility(items))
		if level == entities.AccessibilityNone {
			break
		}
	}
	return level
}

// All evaluates to the weakest of reqs
func All(reqs ...Requirement) Requirement {
	return allRequirement(reqs)
}

type anyRequirement []Requirement

func (r anyRequirement) Accessibility(items ItemProvider) entities.AccessibilityLevel {
	level := entities.AccessibilityNone
	for _, req := range r {
		level = entities.MaxAccessibility(level, req.Accessibility(items))
		if level == entities.AccessibilityNormal {
			break
		}
	}
	return level
}

// Any evaluates to the strongest of reqs
func Any(reqs ...Requirement) Requirement {
	return anyRequirement(reqs)
}

type sequenceBreakRequirement struct {
	id entities.SequenceBreakID
}

func (r sequenceBreakRequirement) Accessibility(items ItemProvider) entities.AccessibilityLevel {
	if items.Mode().SequenceBreakEnabled(r.id) {
		return entities.AccessibilitySequenceBreak
	}
	return entities.AccessibilityNone
}

// SequenceBreak evaluates to SequenceBreak when the trick is enabled, None otherwise
func SequenceBreak(id entities.SequenceBreakID) Requirement {
	return sequenceBreakRequirement{id: id}
}

// Mode is met when pred holds for the active mode
func Mode(pred func(entities.Mode) bool) Requirement {
	return Func(func(items ItemProvider) entities.AccessibilityLevel {
		if pred(items.Mode()) {
			return entities.AccessibilityNormal
		}
		return entities.AccessibilityNone
	})
}

// KeyDropShuffle is met when key-drop shuffle matches enabled
func KeyDropShuffle(enabled bool) Requirement {
	return Mode(func(m entities.Mode) bool { return m.KeyDropShuffle == enabled })
}

// Met reports whether req is satisfied under the given sequence-break policy
func Met(req Requirement, items ItemProvider, sequenceBreak bool) bool {
	if req == nil {
		return true
	}
	return req.Accessibility(items).Collectable(sequenceBreak)
}
