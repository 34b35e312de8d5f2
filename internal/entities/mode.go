package entities

// Mode holds the global game-mode settings the engine reads.
// Shuffle flags decide whether a dungeon's maps, compasses and keys are part of
// the item pool or fixed in their vanilla locations.
type Mode struct {
	MapShuffle          bool `json:"map_shuffle" yaml:"mapShuffle"`
	CompassShuffle      bool `json:"compass_shuffle" yaml:"compassShuffle"`
	SmallKeyShuffle     bool `json:"small_key_shuffle" yaml:"smallKeyShuffle"`
	BigKeyShuffle       bool `json:"big_key_shuffle" yaml:"bigKeyShuffle"`
	KeyDropShuffle      bool `json:"key_drop_shuffle" yaml:"keyDropShuffle"`
	GuaranteedBossItems bool `json:"guaranteed_boss_items" yaml:"guaranteedBossItems"`

	// SequenceBreaks lists the tricks the player has opted into
	SequenceBreaks []SequenceBreakID `json:"sequence_breaks,omitempty" yaml:"sequenceBreaks,omitempty"`
}

// SequenceBreakEnabled reports whether the given trick is enabled
func (m Mode) SequenceBreakEnabled(id SequenceBreakID) bool {
	for _, sb := range m.SequenceBreaks {
		if sb == id {
			return true
		}
	}
	return false
}

// AnySequenceBreaks reports whether at least one trick is enabled
func (m Mode) AnySequenceBreaks() bool {
	return len(m.SequenceBreaks) > 0
}

// Clone returns a copy that shares no slices with m
func (m Mode) Clone() Mode {
	out := m
	if m.SequenceBreaks != nil {
		out.SequenceBreaks = append([]SequenceBreakID(nil), m.SequenceBreaks...)
	}
	return out
}
