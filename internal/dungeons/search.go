package dungeons

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

// Hypothesis is a settled key hypothesis and what the dungeon looks like under it
type Hypothesis struct {
	State  DungeonState
	Result DungeonResult
	Doors  map[entities.KeyDoorID]bool
}

// Search enumerates key hypotheses breadth-first from the empty state and
// returns every settled one. A state is settled when a key layout accepts it,
// no spare key could still be spent on a reachable locked door, and the keys
// not yet found could still be reached without one.
func Search(md *MutableDungeon, sequenceBreak bool) ([]Hypothesis, error) {
	d := md.dungeon
	if md.items == nil {
		return nil, errors.FailedPrecondition("mutable dungeon is not bound to an item provider").
			WithMeta("dungeon_id", string(d.ID))
	}
	mode := md.items.Mode()
	keyTotal := d.SmallKeyTotal(mode)
	bigKeyPooled := d.BigKeyInPool(mode) && !mode.BigKeyShuffle

	start := EmptyState(sequenceBreak)
	if mode.SmallKeyShuffle && d.SmallKey != "" {
		held := md.items.ItemCount(d.SmallKey)
		if held > keyTotal {
			held = keyTotal
		}
		start = start.WithKeys(held)
	}
	if mode.BigKeyShuffle && d.BigKey != "" {
		start = start.WithBigKey(md.items.ItemCount(d.BigKey) > 0)
	}

	seen := mapset.New[string]()
	seen.Put(start.Key())
	queue := []DungeonState{start}
	push := func(next DungeonState) {
		key := next.Key()
		if seen.Has(key) {
			return
		}
		seen.Put(key)
		queue = append(queue, next)
	}

	var settled []Hypothesis
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		if err := md.ApplyState(state); err != nil {
			return nil, err
		}

		available := md.AvailableKeys(state)
		if state.UnlockedCount() > available {
			continue
		}
		spare := available - state.UnlockedCount()
		doors := md.GetAccessibleKeyDoors(sequenceBreak)

		settle := md.ValidateKeyLayout(state) && (spare == 0 || len(doors) == 0)
		if settle && spare == 0 && !mode.SmallKeyShuffle && state.keysCollected < keyTotal {
			// with no key to spend, the missing keys must sit where items alone can reach
			open, err := md.itemBlockedKeySlots(state)
			if err != nil {
				return nil, err
			}
			settle = open > 0
		}
		if settle {
			settled = append(settled, Hypothesis{
				State:  state,
				Result: md.GetDungeonResult(state),
				Doors:  md.DoorStates(),
			})
		}

		if spare > 0 {
			for _, door := range doors {
				push(state.WithDoor(door))
			}
		}
		if !mode.SmallKeyShuffle && state.keysCollected < keyTotal && state.keysCollected < md.keySlots(state) {
			push(state.WithKeys(state.keysCollected + 1))
		}
		if bigKeyPooled && !state.bigKey && md.bigKeySlotAccessible(sequenceBreak) {
			push(state.WithBigKey(true))
		}
	}

	return settled, nil
}

// Evaluation is the folded outcome of one dungeon's search
type Evaluation struct {
	Result DungeonResult
	// Doors are the key door flags of the worst settled hypothesis
	Doors      map[entities.KeyDoorID]bool
	Hypotheses int
}

// Fold reduces settled hypotheses to one result. The in-logic hypotheses are
// reported; sequenceBreak, when non-nil, marks what tricks add. Tricks that
// clear the whole dungeon report SequenceBreak. Tricks that reach only part of
// it never lower the in-logic level, and lift None or Inspect to Partial.
func Fold(bossCount int, normal, sequenceBreak []Hypothesis) Evaluation {
	result, worst := foldHypotheses(bossCount, normal)
	eval := Evaluation{
		Result:     result,
		Hypotheses: len(normal) + len(sequenceBreak),
	}
	if worst != nil {
		eval.Doors = worst.Doors
	}

	if sequenceBreak == nil {
		return eval
	}

	sbResult, _ := foldHypotheses(bossCount, sequenceBreak)
	better := sbResult.Accessible > result.Accessible || sbResult.Accessibility > result.Accessibility
	if better && result.Accessibility < entities.AccessibilityNormal {
		switch {
		case completeResult(sbResult):
			eval.Result.Accessibility = entities.AccessibilitySequenceBreak
			eval.Result.SequenceBreak = true
		case sbResult.Accessibility == entities.AccessibilityPartial &&
			result.Accessibility < entities.AccessibilityPartial:
			eval.Result.Accessibility = entities.AccessibilityPartial
			eval.Result.SequenceBreak = true
		}
	}
	for i := range eval.Result.Bosses {
		if i >= len(sbResult.Bosses) {
			break
		}
		if eval.Result.Bosses[i] < entities.AccessibilitySequenceBreak &&
			sbResult.Bosses[i] >= entities.AccessibilitySequenceBreak {
			eval.Result.Bosses[i] = entities.AccessibilitySequenceBreak
		}
	}
	eval.Result.Visible = eval.Result.Visible || sbResult.Visible

	return eval
}

// completeResult reports whether every available item counted. GetDungeonResult
// only reports SequenceBreak or Normal with Accessible at the dungeon's total.
func completeResult(r DungeonResult) bool {
	return r.Accessibility == entities.AccessibilitySequenceBreak ||
		r.Accessibility == entities.AccessibilityNormal
}

// foldHypotheses takes the worst case over hypotheses: the fewest accessible
// items, the meet of every boss level and the join of visibility
func foldHypotheses(bossCount int, hypotheses []Hypothesis) (DungeonResult, *Hypothesis) {
	if len(hypotheses) == 0 {
		return NoneResult(bossCount), nil
	}

	worst := &hypotheses[0]
	bosses := append([]entities.AccessibilityLevel(nil), worst.Result.Bosses...)
	visible := worst.Result.Visible

	for i := 1; i < len(hypotheses); i++ {
		h := &hypotheses[i]
		if h.Result.Accessible < worst.Result.Accessible ||
			(h.Result.Accessible == worst.Result.Accessible && h.Result.Accessibility < worst.Result.Accessibility) {
			worst = h
		}
		for j := range bosses {
			if j < len(h.Result.Bosses) {
				bosses[j] = entities.MinAccessibility(bosses[j], h.Result.Bosses[j])
			}
		}
		visible = visible || h.Result.Visible
	}

	result := worst.Result.Clone()
	result.Bosses = bosses
	result.Visible = visible
	return result, worst
}
