package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func easternPalace() *Dungeon {
	front := []entities.DungeonItemID{
		entities.EPCannonballChest,
		entities.EPMapChest,
		entities.EPCompassChest,
		entities.EPBigKeyChest,
	}

	return &Dungeon{
		ID:       entities.DungeonEasternPalace,
		Name:     "Eastern Palace",
		Map:      entities.MapItem(entities.DungeonEasternPalace),
		Compass:  entities.CompassItem(entities.DungeonEasternPalace),
		SmallKey: entities.SmallKeyItem(entities.DungeonEasternPalace),
		BigKey:   entities.BigKeyItem(entities.DungeonEasternPalace),
		Items: []entities.DungeonItemID{
			entities.EPCannonballChest,
			entities.EPMapChest,
			entities.EPCompassChest,
			entities.EPBigChest,
			entities.EPBigKeyChest,
		},
		Bosses: []entities.DungeonItemID{entities.EPBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.EPDarkSquarePot,
			entities.EPDarkEyegoreDrop,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.EPDarkSquareKeyDoor,
			entities.EPEyegoreKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.EPBigChestDoor,
			entities.EPBigKeyDoor,
		},
		KeyLayouts: []KeyLayout{
			BigKeyLayout{
				Locations:   front,
				Requirement: requirements.KeyDropShuffle(false),
			},
			SmallKeyLayout{
				Count: 2,
				Locations: append(append([]entities.DungeonItemID{}, front...),
					entities.EPDarkSquarePot,
					entities.EPDarkEyegoreDrop,
				),
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children: []KeyLayout{
					BigKeyLayout{Locations: append(append([]entities.DungeonItemID{}, front...), entities.EPDarkSquarePot)},
				},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.EPFront,
			entities.EPBigChestRoom,
			entities.EPDarkSquare,
			entities.EPBigKeyRoom,
			entities.EPPastBigKeyDoor,
			entities.EPPastEyegoreKeyDoor,
			entities.EPBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldEPEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldEPEntry, entities.EPFront),
			Gated(entities.EPFront, entities.EPBigChestRoom, entities.EPBigChestDoor, nil),
			Plain(entities.EPFront, entities.EPDarkSquare, requirements.DarkRoom(entities.SequenceBreakDarkRoomEP)),
			Gated(entities.EPDarkSquare, entities.EPBigKeyRoom, entities.EPDarkSquareKeyDoor, nil),
			Gated(entities.EPFront, entities.EPPastBigKeyDoor, entities.EPBigKeyDoor, requirements.Item(entities.ItemBow)),
			Gated(entities.EPPastBigKeyDoor, entities.EPPastEyegoreKeyDoor, entities.EPEyegoreKeyDoor, nil),
			Plain(entities.EPPastEyegoreKeyDoor, entities.EPBossRoom, requirements.Boss(entities.BossArmos)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.EPCannonballChest: entities.EPFront,
			entities.EPMapChest:        entities.EPFront,
			entities.EPCompassChest:    entities.EPFront,
			entities.EPBigChest:        entities.EPBigChestRoom,
			entities.EPBigKeyChest:     entities.EPBigKeyRoom,
			entities.EPBoss:            entities.EPBossRoom,
			entities.EPDarkSquarePot:   entities.EPDarkSquare,
			entities.EPDarkEyegoreDrop: entities.EPPastBigKeyDoor,
		},
	}
}
