// Package entities provides core data structures for dungeon-tracker.
package entities

import (
	"fmt"
	"strings"
)

// AccessibilityLevel grades how reachable a node, item or dungeon is.
// Levels are totally ordered from weakest to strongest.
type AccessibilityLevel int

// Accessibility levels
const (
	AccessibilityNone AccessibilityLevel = iota
	// AccessibilityInspect means the location is known but cannot be collected
	AccessibilityInspect
	// AccessibilitySequenceBreak means reachable only with an enabled trick
	AccessibilitySequenceBreak
	// AccessibilityPartial is only produced by dungeon results
	AccessibilityPartial
	AccessibilityNormal
)

var accessibilityNames = map[AccessibilityLevel]string{
	AccessibilityNone:          "None",
	AccessibilityInspect:       "Inspect",
	AccessibilitySequenceBreak: "SequenceBreak",
	AccessibilityPartial:       "Partial",
	AccessibilityNormal:        "Normal",
}

// String returns the level name
func (a AccessibilityLevel) String() string {
	if name, ok := accessibilityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AccessibilityLevel(%d)", int(a))
}

// Valid reports whether the level is one of the defined levels
func (a AccessibilityLevel) Valid() bool {
	return a >= AccessibilityNone && a <= AccessibilityNormal
}

// Collectable reports whether an item at this level counts as obtainable.
// SequenceBreak only counts when sequence breaks are in play.
func (a AccessibilityLevel) Collectable(sequenceBreak bool) bool {
	if a >= AccessibilityPartial {
		return true
	}
	return sequenceBreak && a == AccessibilitySequenceBreak
}

// NodeLevel clamps a level to the ones a graph node can hold. Partial only
// describes aggregates, so a Partial input counts as Normal; out-of-range
// values count as None.
func (a AccessibilityLevel) NodeLevel() AccessibilityLevel {
	switch {
	case !a.Valid():
		return AccessibilityNone
	case a == AccessibilityPartial:
		return AccessibilityNormal
	}
	return a
}

// ParseAccessibilityLevel parses a level name, case-insensitively
func ParseAccessibilityLevel(s string) (AccessibilityLevel, error) {
	for level, name := range accessibilityNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return level, nil
		}
	}
	return AccessibilityNone, fmt.Errorf("unknown accessibility level %q", s)
}

// MinAccessibility returns the weaker of two levels
func MinAccessibility(a, b AccessibilityLevel) AccessibilityLevel {
	if a < b {
		return a
	}
	return b
}

// MaxAccessibility returns the stronger of two levels
func MaxAccessibility(a, b AccessibilityLevel) AccessibilityLevel {
	if a > b {
		return a
	}
	return b
}

// MarshalText encodes the level by name
func (a AccessibilityLevel) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid accessibility level %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText parses a level name
func (a *AccessibilityLevel) UnmarshalText(b []byte) error {
	level, err := ParseAccessibilityLevel(string(b))
	if err != nil {
		return err
	}
	*a = level
	return nil
}
