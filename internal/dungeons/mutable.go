package dungeons

import (
	"math"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

// MutableDungeon is a working copy of a dungeon's node graph and key doors.
// It is reused across hypotheses and must not be shared between goroutines.
type MutableDungeon struct {
	dungeon   *Dungeon
	items     requirements.ItemProvider
	overworld OverworldAccessibility

	nodes     map[entities.DungeonNodeID]*DungeonNode
	nodeOrder []entities.DungeonNodeID

	smallKeyDoors map[entities.KeyDoorID]*KeyDoor
	bigKeyDoors   map[entities.KeyDoorID]*KeyDoor

	// doorConnections indexes the connections gated by each small-key door
	doorConnections map[entities.KeyDoorID][]KeyDoorConnection
}

var lockedDoor = &KeyDoor{}

// NewMutableDungeon wires the node graph of d. items and overworld may be nil
// and bound later with Bind, but must be set before a state is applied.
func NewMutableDungeon(d *Dungeon, items requirements.ItemProvider, overworld OverworldAccessibility) (*MutableDungeon, error) {
	if d == nil {
		return nil, errors.InvalidArgument("dungeon is required")
	}

	md := &MutableDungeon{
		dungeon:         d,
		items:           items,
		overworld:       overworld,
		nodes:           make(map[entities.DungeonNodeID]*DungeonNode, len(d.Nodes)),
		nodeOrder:       append([]entities.DungeonNodeID(nil), d.Nodes...),
		smallKeyDoors:   make(map[entities.KeyDoorID]*KeyDoor, len(d.SmallKeyDoors)),
		bigKeyDoors:     make(map[entities.KeyDoorID]*KeyDoor, len(d.BigKeyDoors)),
		doorConnections: make(map[entities.KeyDoorID][]KeyDoorConnection),
	}

	for _, id := range d.Nodes {
		md.nodes[id] = &DungeonNode{ID: id}
	}
	for _, id := range d.SmallKeyDoors {
		md.smallKeyDoors[id] = &KeyDoor{ID: id}
	}
	for _, id := range d.BigKeyDoors {
		md.bigKeyDoors[id] = &KeyDoor{ID: id, Big: true}
	}

	for _, conn := range d.Connections {
		node, ok := md.nodes[conn.Target()]
		if !ok {
			return nil, errors.Internalf("connection targets unknown node %s", conn.Target()).
				WithMeta("dungeon_id", string(d.ID))
		}
		node.Connections = append(node.Connections, conn)
		if gated, ok := conn.(KeyDoorConnection); ok {
			if _, small := md.smallKeyDoors[gated.Door]; small {
				md.doorConnections[gated.Door] = append(md.doorConnections[gated.Door], gated)
			}
		}
	}

	return md, nil
}

// Dungeon returns the catalog entry this copy was built from
func (md *MutableDungeon) Dungeon() *Dungeon {
	return md.dungeon
}

// Bind swaps the item and overworld providers. Node levels are stale until the
// next ApplyState.
func (md *MutableDungeon) Bind(items requirements.ItemProvider, overworld OverworldAccessibility) {
	md.items = items
	md.overworld = overworld
}

// ApplyState sets every key door from state and recomputes node accessibility.
// A state naming a door outside this dungeon is rejected before any door changes.
func (md *MutableDungeon) ApplyState(state DungeonState) error {
	if md.items == nil {
		return errors.FailedPrecondition("mutable dungeon is not bound to an item provider").
			WithMeta("dungeon_id", string(md.dungeon.ID))
	}

	for _, id := range state.UnlockedDoors() {
		if _, ok := md.smallKeyDoors[id]; !ok {
			return errors.InvalidArgumentf("key door %s does not belong to %s", id, md.dungeon.ID).
				WithMeta("dungeon_id", string(md.dungeon.ID)).
				WithMeta("key_door_id", string(id))
		}
	}

	for id, door := range md.smallKeyDoors {
		door.Unlocked = state.IsUnlocked(id)
	}
	for _, door := range md.bigKeyDoors {
		door.Unlocked = state.bigKey
	}
	if err := md.Recompute(); err != nil {
		return err
	}

	if state.bigKey || len(md.bigKeyDoors) == 0 || md.items.Mode().KeyDropShuffle {
		return nil
	}
	if !md.anyCollectable(md.dungeon.BigKeyDrops, state.sequenceBreak) {
		return nil
	}
	for _, door := range md.bigKeyDoors {
		door.Unlocked = true
	}
	return md.Recompute()
}

// Recompute resets every node and iterates connections to their least fixed point
func (md *MutableDungeon) Recompute() error {
	for _, node := range md.nodes {
		node.Accessibility = entities.AccessibilityNone
	}

	maxPasses := len(md.nodeOrder)*4 + 1
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for _, id := range md.nodeOrder {
			node := md.nodes[id]
			level := node.evaluate(md)
			if level != node.Accessibility {
				node.Accessibility = level
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}

	return errors.Internal("accessibility did not converge").
		WithMeta("dungeon_id", string(md.dungeon.ID)).
		WithMeta("passes", maxPasses)
}

// NodeAccessibility returns the current level of a node, None when unknown
func (md *MutableDungeon) NodeAccessibility(id entities.DungeonNodeID) entities.AccessibilityLevel {
	node, ok := md.nodes[id]
	if !ok {
		return entities.AccessibilityNone
	}
	return node.Accessibility
}

// ItemAccessibility returns the current level of the node holding an item slot
func (md *MutableDungeon) ItemAccessibility(id entities.DungeonItemID) entities.AccessibilityLevel {
	node, ok := md.dungeon.Locations[id]
	if !ok {
		return entities.AccessibilityNone
	}
	return md.NodeAccessibility(node)
}

// GetAccessibleKeyDoors lists the locked small-key doors the player can stand in
// front of, in catalog order
func (md *MutableDungeon) GetAccessibleKeyDoors(sequenceBreak bool) []entities.KeyDoorID {
	var out []entities.KeyDoorID
	for _, id := range md.dungeon.SmallKeyDoors {
		if md.smallKeyDoors[id].Unlocked {
			continue
		}
		for _, conn := range md.doorConnections[id] {
			if md.NodeAccessibility(conn.From).Collectable(sequenceBreak) &&
				requirements.Met(conn.Requirement, md.items, sequenceBreak) {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// ValidateKeyLayout reports whether any of the dungeon's key layouts accepts state.
// A dungeon without layouts accepts nothing.
func (md *MutableDungeon) ValidateKeyLayout(state DungeonState) bool {
	for _, layout := range md.dungeon.KeyLayouts {
		if layout.CanBeTrue(md, state) {
			return true
		}
	}
	return false
}

// AvailableKeys is the number of small keys spendable under state. Reachable
// key drops add to the held keys unless drops are shuffled into the pool.
func (md *MutableDungeon) AvailableKeys(state DungeonState) int {
	keys := state.keysCollected
	if md.items.Mode().KeyDropShuffle {
		return keys
	}
	for _, id := range md.dungeon.SmallKeyDrops {
		if md.ItemAccessibility(id).Collectable(state.sequenceBreak) {
			keys++
		}
	}
	return keys
}

// DoorStates returns the Unlocked flag of every key door
func (md *MutableDungeon) DoorStates() map[entities.KeyDoorID]bool {
	out := make(map[entities.KeyDoorID]bool, len(md.smallKeyDoors)+len(md.bigKeyDoors))
	for id, door := range md.smallKeyDoors {
		out[id] = door.Unlocked
	}
	for id, door := range md.bigKeyDoors {
		out[id] = door.Unlocked
	}
	return out
}

func (md *MutableDungeon) door(id entities.KeyDoorID) *KeyDoor {
	if door, ok := md.smallKeyDoors[id]; ok {
		return door
	}
	if door, ok := md.bigKeyDoors[id]; ok {
		return door
	}
	return lockedDoor
}

// countLocations splits locations into collectable and not. Key drops only
// count as slots when drops are shuffled.
func (md *MutableDungeon) countLocations(locations []entities.DungeonItemID, sequenceBreak bool) (int, int) {
	keyDrops := md.items.Mode().KeyDropShuffle
	accessible, inaccessible := 0, 0
	for _, id := range locations {
		if !keyDrops && md.dungeon.IsKeyDrop(id) {
			continue
		}
		if md.ItemAccessibility(id).Collectable(sequenceBreak) {
			accessible++
		} else {
			inaccessible++
		}
	}
	return accessible, inaccessible
}

func (md *MutableDungeon) anyCollectable(ids []entities.DungeonItemID, sequenceBreak bool) bool {
	for _, id := range ids {
		if md.ItemAccessibility(id).Collectable(sequenceBreak) {
			return true
		}
	}
	return false
}

// keySlots counts the accessible slots that could hold a small key under state
func (md *MutableDungeon) keySlots(state DungeonState) int {
	mode := md.items.Mode()
	slots, _ := md.countLocations(md.dungeon.Items, state.sequenceBreak)
	if mode.KeyDropShuffle {
		drops, _ := md.countLocations(md.dungeon.SmallKeyDrops, state.sequenceBreak)
		bigDrops, _ := md.countLocations(md.dungeon.BigKeyDrops, state.sequenceBreak)
		slots += drops + bigDrops
	}
	if state.bigKey && md.dungeon.BigKeyInPool(mode) && !mode.BigKeyShuffle {
		slots--
	}
	return slots
}

// bigKeySlotAccessible reports whether any slot that could hold the big key is reachable
func (md *MutableDungeon) bigKeySlotAccessible(sequenceBreak bool) bool {
	if md.anyCollectable(md.dungeon.Items, sequenceBreak) {
		return true
	}
	if !md.items.Mode().KeyDropShuffle {
		return false
	}
	return md.anyCollectable(md.dungeon.SmallKeyDrops, sequenceBreak) ||
		md.anyCollectable(md.dungeon.BigKeyDrops, sequenceBreak)
}

// itemBlockedKeySlots counts the key slots that are out of reach now but that
// more items or overworld progress would reach without opening another door
func (md *MutableDungeon) itemBlockedKeySlots(state DungeonState) (int, error) {
	saved := make(map[entities.DungeonNodeID]entities.AccessibilityLevel, len(md.nodes))
	for id, node := range md.nodes {
		saved[id] = node.Accessibility
	}
	items, overworld := md.items, md.overworld
	defer func() {
		md.items, md.overworld = items, overworld
		for id, level := range saved {
			md.nodes[id].Accessibility = level
		}
	}()

	md.items = unlimitedItems{mode: items.Mode()}
	md.overworld = openOverworld{}
	if err := md.Recompute(); err != nil {
		return 0, err
	}

	slots := append([]entities.DungeonItemID(nil), md.dungeon.Items...)
	if items.Mode().KeyDropShuffle {
		slots = append(slots, md.dungeon.SmallKeyDrops...)
		slots = append(slots, md.dungeon.BigKeyDrops...)
	}

	count := 0
	for _, id := range slots {
		node, ok := md.dungeon.Locations[id]
		if !ok {
			continue
		}
		if saved[node].Collectable(state.sequenceBreak) {
			continue
		}
		if md.nodes[node].Accessibility.Collectable(true) {
			count++
		}
	}
	return count, nil
}

type unlimitedItems struct {
	mode entities.Mode
}

func (u unlimitedItems) ItemCount(entities.ItemType) int { return math.MaxInt32 }

func (u unlimitedItems) Mode() entities.Mode { return u.mode }

type openOverworld struct{}

func (openOverworld) Accessibility(entities.OverworldNodeID) entities.AccessibilityLevel {
	return entities.AccessibilityNormal
}
