// Package config loads tracker snapshot files: the held items, the game mode
// and the overworld entrance levels an evaluation runs against.
package config

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/overworld"
)

//go:embed sample.yaml
var sampleYAML []byte

// Snapshot is the content of a snapshot file
type Snapshot struct {
	Items map[entities.ItemType]int `yaml:"items"`
	Mode  entities.Mode             `yaml:"mode"`
	// Overworld maps entrance nodes to level names
	Overworld map[entities.OverworldNodeID]string `yaml:"overworld"`
	// Default is the level of entrances not listed, Normal when empty
	Default string `yaml:"default"`
}

// Load reads and validates a snapshot file
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("snapshot file %s not found", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to open snapshot %s", path)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load snapshot %s", path)
	}
	return s, nil
}

// Sample returns the bundled example snapshot
func Sample() *Snapshot {
	s, err := Decode(bytes.NewReader(sampleYAML))
	if err != nil {
		panic("config: bundled sample.yaml is invalid: " + err.Error())
	}
	return s
}

// Decode parses a snapshot, rejecting unknown keys, and validates it
func Decode(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Snapshot
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid snapshot yaml")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks item names, counts, tricks and levels
func (s *Snapshot) Validate() error {
	vb := errors.NewValidationBuilder()

	for item, count := range s.Items {
		if !entities.KnownItem(item) {
			vb.InvalidField("items."+string(item), "unknown item")
		}
		errors.ValidateNonNegative("items."+string(item), count, vb)
	}
	for _, sb := range s.Mode.SequenceBreaks {
		if !entities.KnownSequenceBreak(sb) {
			vb.InvalidField("mode.sequenceBreaks", "unknown sequence break "+string(sb))
		}
	}
	for node, level := range s.Overworld {
		validateEntranceLevel("overworld."+string(node), level, vb)
	}
	if s.Default != "" {
		validateEntranceLevel("default", s.Default, vb)
	}

	return vb.Build()
}

// Inventory returns the items and mode as an item provider
func (s *Snapshot) Inventory() *entities.Inventory {
	inv := &entities.Inventory{
		Items:   make(map[entities.ItemType]int, len(s.Items)),
		Options: s.Mode.Clone(),
	}
	for item, count := range s.Items {
		if count > 0 {
			inv.Items[item] = count
		}
	}
	return inv
}

// OverworldLevels returns the parsed entrance levels. Validate must have passed.
func (s *Snapshot) OverworldLevels() map[entities.OverworldNodeID]entities.AccessibilityLevel {
	out := make(map[entities.OverworldNodeID]entities.AccessibilityLevel, len(s.Overworld))
	for node, name := range s.Overworld {
		level, _ := entities.ParseAccessibilityLevel(name)
		out[node] = level
	}
	return out
}

// OverworldProvider builds the entrance provider for the snapshot
func (s *Snapshot) OverworldProvider() *overworld.Static {
	fallback := entities.AccessibilityNormal
	if s.Default != "" {
		fallback, _ = entities.ParseAccessibilityLevel(s.Default)
	}
	return overworld.NewStatic(s.OverworldLevels(), fallback)
}

// validateEntranceLevel rejects unknown names and Partial, which only
// describes a whole dungeon
func validateEntranceLevel(field, value string, vb *errors.ValidationBuilder) {
	level, err := entities.ParseAccessibilityLevel(value)
	if err != nil {
		vb.InvalidField(field, err.Error())
		return
	}
	if level == entities.AccessibilityPartial {
		vb.InvalidField(field, "Partial is not an entrance level")
	}
}
