package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func skullWoods() *Dungeon {
	regular := []entities.DungeonItemID{
		entities.SWMapChest,
		entities.SWCompassChest,
		entities.SWPotPrison,
		entities.SWPinballRoom,
		entities.SWBigKeyChest,
		entities.SWBridgeRoom,
	}
	withDrops := append(append([]entities.DungeonItemID{}, regular...),
		entities.SWWestLobbyPot,
		entities.SWSpikeCornerDrop,
	)

	return &Dungeon{
		ID:            entities.DungeonSkullWoods,
		Name:          "Skull Woods",
		Map:           entities.MapItem(entities.DungeonSkullWoods),
		Compass:       entities.CompassItem(entities.DungeonSkullWoods),
		SmallKey:      entities.SmallKeyItem(entities.DungeonSkullWoods),
		BigKey:        entities.BigKeyItem(entities.DungeonSkullWoods),
		SmallKeyCount: 3,
		Items: []entities.DungeonItemID{
			entities.SWMapChest,
			entities.SWCompassChest,
			entities.SWPotPrison,
			entities.SWPinballRoom,
			entities.SWBigKeyChest,
			entities.SWBigChest,
			entities.SWBridgeRoom,
		},
		Bosses: []entities.DungeonItemID{entities.SWBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.SWWestLobbyPot,
			entities.SWSpikeCornerDrop,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.SWFrontKeyDoor,
			entities.SWWestLobbyKeyDoor,
			entities.SWBackKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{entities.SWBigChestDoor},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:             3,
				Locations:         regular,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(false),
				Children:          []KeyLayout{BigKeyLayout{Locations: regular}},
			},
			SmallKeyLayout{
				Count:             5,
				Locations:         withDrops,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children:          []KeyLayout{BigKeyLayout{Locations: withDrops}},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.SWFront,
			entities.SWPastFrontKeyDoor,
			entities.SWWestLobby,
			entities.SWBigChestArea,
			entities.SWBigChestRoom,
			entities.SWBack,
			entities.SWPastBackKeyDoor,
			entities.SWBossRoom,
		},
		Entries: []entities.OverworldNodeID{
			entities.OverworldSWFrontEntry,
			entities.OverworldSWWestLobbyEntry,
			entities.OverworldSWBigChestEntry,
			entities.OverworldSWBackEntry,
		},
		Connections: []NodeConnection{
			Entry(entities.OverworldSWFrontEntry, entities.SWFront),
			Entry(entities.OverworldSWWestLobbyEntry, entities.SWWestLobby),
			Entry(entities.OverworldSWBigChestEntry, entities.SWBigChestArea),
			Entry(entities.OverworldSWBackEntry, entities.SWBack),

			Gated(entities.SWFront, entities.SWPastFrontKeyDoor, entities.SWFrontKeyDoor, nil),
			Gated(entities.SWFront, entities.SWWestLobby, entities.SWWestLobbyKeyDoor, nil),
			Gated(entities.SWWestLobby, entities.SWFront, entities.SWWestLobbyKeyDoor, nil),
			Plain(entities.SWFront, entities.SWBigChestArea, nil),
			Plain(entities.SWBigChestArea, entities.SWFront, nil),
			Gated(entities.SWBigChestArea, entities.SWBigChestRoom, entities.SWBigChestDoor, nil),

			Gated(entities.SWBack, entities.SWPastBackKeyDoor, entities.SWBackKeyDoor, nil),
			Plain(entities.SWPastBackKeyDoor, entities.SWBossRoom, requirements.All(
				requirements.Item(entities.ItemSword),
				requirements.Boss(entities.BossMothula),
			)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.SWMapChest:        entities.SWFront,
			entities.SWCompassChest:    entities.SWFront,
			entities.SWPotPrison:       entities.SWFront,
			entities.SWPinballRoom:     entities.SWPastFrontKeyDoor,
			entities.SWBigKeyChest:     entities.SWWestLobby,
			entities.SWBigChest:        entities.SWBigChestRoom,
			entities.SWBridgeRoom:      entities.SWBack,
			entities.SWBoss:            entities.SWBossRoom,
			entities.SWWestLobbyPot:    entities.SWWestLobby,
			entities.SWSpikeCornerDrop: entities.SWPastBackKeyDoor,
		},
	}
}
