package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
)

// DungeonResult is the aggregate accessibility of a dungeon for one evaluation
type DungeonResult struct {
	// Bosses holds one level per boss slot, in catalog order
	Bosses        []entities.AccessibilityLevel `json:"bosses"`
	Accessibility entities.AccessibilityLevel   `json:"accessibility"`
	// Accessible is the number of countable items currently obtainable
	Accessible    int  `json:"accessible"`
	SequenceBreak bool `json:"sequence_break"`
	// Visible is set when an unreachable item can still be inspected
	Visible bool `json:"visible"`
}

// NoneResult is the result of a dungeon with nothing reachable
func NoneResult(bossCount int) DungeonResult {
	return DungeonResult{
		Bosses:        make([]entities.AccessibilityLevel, bossCount),
		Accessibility: entities.AccessibilityNone,
	}
}

// Clone returns a copy that shares no slices with r
func (r DungeonResult) Clone() DungeonResult {
	out := r
	out.Bosses = append([]entities.AccessibilityLevel(nil), r.Bosses...)
	return out
}

type itemTally struct {
	inaccessible  int
	bosses        int
	visible       bool
	sequenceBreak bool
}

func (t *itemTally) add(level entities.AccessibilityLevel, sequenceBreak bool) bool {
	switch {
	case level >= entities.AccessibilityPartial:
		return false
	case level == entities.AccessibilitySequenceBreak && sequenceBreak:
		t.sequenceBreak = true
		return false
	}
	if level == entities.AccessibilityInspect {
		t.visible = true
	}
	t.inaccessible++
	return true
}

// GetDungeonResult reduces the current node levels to a DungeonResult. Bosses
// and items are tallied first, then key and map/compass slots are credited back
// one category at a time until the tally drops to the guaranteed-boss floor.
func (md *MutableDungeon) GetDungeonResult(state DungeonState) DungeonResult {
	d := md.dungeon
	mode := md.items.Mode()
	sb := state.sequenceBreak

	var tally itemTally
	for _, id := range d.Items {
		tally.add(md.ItemAccessibility(id), sb)
	}

	bosses := make([]entities.AccessibilityLevel, len(d.Bosses))
	for i, id := range d.Bosses {
		level := md.ItemAccessibility(id)
		if tally.add(level, sb) {
			tally.bosses++
		}
		if level == entities.AccessibilitySequenceBreak && !sb {
			level = entities.AccessibilityNone
		}
		bosses[i] = level
	}

	if mode.KeyDropShuffle {
		for _, id := range d.SmallKeyDrops {
			tally.add(md.ItemAccessibility(id), sb)
		}
		for _, id := range d.BigKeyDrops {
			tally.add(md.ItemAccessibility(id), sb)
		}
	}

	total := d.TotalAvailable(mode)
	floor := 0
	if mode.GuaranteedBossItems {
		floor = tally.bosses
	}

	result := DungeonResult{Bosses: bosses, Visible: tally.visible}

	blocked := func() {
		if tally.visible {
			result.Accessibility = entities.AccessibilityInspect
		} else {
			result.Accessibility = entities.AccessibilityNone
		}
	}
	partial := func(accessible int) {
		if accessible > 0 {
			result.Accessibility = entities.AccessibilityPartial
			result.Accessible = accessible
			result.SequenceBreak = tally.sequenceBreak
			return
		}
		blocked()
	}
	resolved := func(inaccessible int) bool {
		if inaccessible > floor {
			return false
		}
		if floor == 0 {
			result.Accessible = total
			result.SequenceBreak = tally.sequenceBreak
			if tally.sequenceBreak {
				result.Accessibility = entities.AccessibilitySequenceBreak
			} else {
				result.Accessibility = entities.AccessibilityNormal
			}
			return true
		}
		partial(total - floor)
		return true
	}

	inaccessible := tally.inaccessible
	if resolved(inaccessible) {
		return result
	}

	if d.BigKeyInPool(mode) && !mode.BigKeyShuffle && !state.bigKey {
		inaccessible--
		if resolved(inaccessible) {
			return result
		}
	}

	if !mode.SmallKeyShuffle {
		if missing := d.SmallKeyTotal(mode) - state.keysCollected; missing > 0 {
			inaccessible -= missing
			if resolved(inaccessible) {
				return result
			}
		}
	}

	credited := 0
	if d.Map != "" && !mode.MapShuffle {
		credited++
	}
	if d.Compass != "" && !mode.CompassShuffle {
		credited++
	}
	if credited > 0 {
		inaccessible -= credited
		if inaccessible <= 0 && floor == 0 {
			result.Accessibility = entities.AccessibilitySequenceBreak
			result.Accessible = total
			result.SequenceBreak = true
			return result
		}
		if resolved(inaccessible) {
			return result
		}
	}

	accessible := total - inaccessible
	if accessible < 0 {
		accessible = 0
	}
	partial(accessible)
	return result
}
