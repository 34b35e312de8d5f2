package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

// OverworldAccessibility reports the current level of the overworld nodes that
// feed dungeon entrances.
//
//go:generate mockgen -destination=mock/mock_overworld.go -package=dungeonsmock github.com/KirkDiggler/dungeon-tracker/internal/dungeons OverworldAccessibility
type OverworldAccessibility interface {
	Accessibility(id entities.OverworldNodeID) entities.AccessibilityLevel
}

// NodeConnection is a directed edge into a dungeon node.
// The set of variants is closed: EntryConnection, PlainConnection and KeyDoorConnection.
type NodeConnection interface {
	// Target is the node this connection leads into
	Target() entities.DungeonNodeID

	evaluate(md *MutableDungeon) entities.AccessibilityLevel
}

// EntryConnection leads from an overworld node into the dungeon
type EntryConnection struct {
	From entities.OverworldNodeID
	To   entities.DungeonNodeID
}

// Target implements NodeConnection
func (c EntryConnection) Target() entities.DungeonNodeID { return c.To }

func (c EntryConnection) evaluate(md *MutableDungeon) entities.AccessibilityLevel {
	if md.overworld == nil {
		return entities.AccessibilityNone
	}
	return md.overworld.Accessibility(c.From).NodeLevel()
}

// PlainConnection leads between two dungeon nodes, gated by an optional requirement
type PlainConnection struct {
	From        entities.DungeonNodeID
	To          entities.DungeonNodeID
	Requirement requirements.Requirement
}

// Target implements NodeConnection
func (c PlainConnection) Target() entities.DungeonNodeID { return c.To }

func (c PlainConnection) evaluate(md *MutableDungeon) entities.AccessibilityLevel {
	level := md.nodes[c.From].Accessibility
	if level == entities.AccessibilityNone || c.Requirement == nil {
		return level
	}
	return entities.MinAccessibility(level, c.Requirement.Accessibility(md.items))
}

// KeyDoorConnection leads between two dungeon nodes through a key door
type KeyDoorConnection struct {
	From        entities.DungeonNodeID
	To          entities.DungeonNodeID
	Door        entities.KeyDoorID
	Requirement requirements.Requirement
}

// Target implements NodeConnection
func (c KeyDoorConnection) Target() entities.DungeonNodeID { return c.To }

func (c KeyDoorConnection) evaluate(md *MutableDungeon) entities.AccessibilityLevel {
	level := md.nodes[c.From].Accessibility
	if level == entities.AccessibilityNone {
		return level
	}
	level = entities.MinAccessibility(level, md.door(c.Door).Requirement().Accessibility(md.items))
	if level == entities.AccessibilityNone || c.Requirement == nil {
		return level
	}
	return entities.MinAccessibility(level, c.Requirement.Accessibility(md.items))
}

// Entry builds an entry connection
func Entry(from entities.OverworldNodeID, to entities.DungeonNodeID) NodeConnection {
	return EntryConnection{From: from, To: to}
}

// Plain builds an internal connection. A nil requirement is always met.
func Plain(from, to entities.DungeonNodeID, req requirements.Requirement) NodeConnection {
	return PlainConnection{From: from, To: to, Requirement: req}
}

// Gated builds a connection through a key door
func Gated(from, to entities.DungeonNodeID, door entities.KeyDoorID, req requirements.Requirement) NodeConnection {
	return KeyDoorConnection{From: from, To: to, Door: door, Requirement: req}
}
