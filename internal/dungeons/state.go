package dungeons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

// DungeonState is one key hypothesis: which small-key doors are open, how many
// small keys are held, whether the big key is held and whether tricks count.
// A DungeonState is never mutated after construction.
type DungeonState struct {
	unlocked      mapset.Set[entities.KeyDoorID]
	keysCollected int
	bigKey        bool
	sequenceBreak bool
}

// NewDungeonState validates and builds a hypothesis
func NewDungeonState(unlocked []entities.KeyDoorID, keys int, bigKey, sequenceBreak bool) (DungeonState, error) {
	if keys < 0 {
		return DungeonState{}, errors.InvalidArgumentf("keys collected must be >= 0, got %d", keys)
	}

	doors := mapset.New[entities.KeyDoorID]()
	for _, id := range unlocked {
		if id == "" {
			return DungeonState{}, errors.InvalidArgument("unlocked door id is required")
		}
		doors.Put(id)
	}

	return DungeonState{
		unlocked:      doors,
		keysCollected: keys,
		bigKey:        bigKey,
		sequenceBreak: sequenceBreak,
	}, nil
}

// EmptyState is the starting hypothesis: nothing open, nothing held
func EmptyState(sequenceBreak bool) DungeonState {
	return DungeonState{
		unlocked:      mapset.New[entities.KeyDoorID](),
		sequenceBreak: sequenceBreak,
	}
}

// KeysCollected returns the number of small keys held under this hypothesis
func (s DungeonState) KeysCollected() int { return s.keysCollected }

// BigKeyCollected reports whether the big key is held under this hypothesis
func (s DungeonState) BigKeyCollected() bool { return s.bigKey }

// SequenceBreak reports whether sequence-break reachability counts
func (s DungeonState) SequenceBreak() bool { return s.sequenceBreak }

// IsUnlocked reports whether the small-key door is open under this hypothesis
func (s DungeonState) IsUnlocked(id entities.KeyDoorID) bool {
	return s.unlocked.Has(id)
}

// UnlockedCount returns the number of open small-key doors
func (s DungeonState) UnlockedCount() int {
	return s.unlocked.Size()
}

// UnlockedDoors returns the open small-key doors in sorted order
func (s DungeonState) UnlockedDoors() []entities.KeyDoorID {
	out := make([]entities.KeyDoorID, 0, s.unlocked.Size())
	s.unlocked.Each(func(id entities.KeyDoorID) {
		out = append(out, id)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WithDoor returns a copy with door unlocked
func (s DungeonState) WithDoor(door entities.KeyDoorID) DungeonState {
	out := s.clone()
	out.unlocked.Put(door)
	return out
}

// WithKeys returns a copy holding keys small keys
func (s DungeonState) WithKeys(keys int) DungeonState {
	out := s.clone()
	out.keysCollected = keys
	return out
}

// WithBigKey returns a copy with the big key flag set
func (s DungeonState) WithBigKey(bigKey bool) DungeonState {
	out := s.clone()
	out.bigKey = bigKey
	return out
}

// Equal reports whether two hypotheses are interchangeable
func (s DungeonState) Equal(other DungeonState) bool {
	return s.Key() == other.Key()
}

// Key is a canonical string for the hypothesis, used to deduplicate the search
func (s DungeonState) Key() string {
	doors := s.UnlockedDoors()
	parts := make([]string, len(doors))
	for i, d := range doors {
		parts[i] = string(d)
	}
	return fmt.Sprintf("%s|k=%d|bk=%t|sb=%t", strings.Join(parts, ","), s.keysCollected, s.bigKey, s.sequenceBreak)
}

// String implements fmt.Stringer
func (s DungeonState) String() string {
	return s.Key()
}

func (s DungeonState) clone() DungeonState {
	doors := mapset.New[entities.KeyDoorID]()
	s.unlocked.Each(func(id entities.KeyDoorID) {
		doors.Put(id)
	})
	out := s
	out.unlocked = doors
	return out
}
