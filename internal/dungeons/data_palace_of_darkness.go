package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func palaceOfDarkness() *Dungeon {
	dark := requirements.DarkRoom(entities.SequenceBreakDarkRoomPoD)

	pastShooter := []entities.DungeonItemID{
		entities.PoDMapChest,
		entities.PoDArenaLedgeChest,
		entities.PoDArenaBridge,
		entities.PoDStalfosBasement,
		entities.PoDBigKeyChest,
		entities.PoDCompassChest,
		entities.PoDDarkBasementLeft,
		entities.PoDDarkBasementRight,
		entities.PoDHarmlessHellway,
		entities.PoDDarkMazeTop,
		entities.PoDDarkMazeBottom,
	}
	bigKeyLocations := append([]entities.DungeonItemID{entities.PoDShooterRoom}, pastShooter...)

	return &Dungeon{
		ID:            entities.DungeonPalaceOfDarkness,
		Name:          "Palace of Darkness",
		Map:           entities.MapItem(entities.DungeonPalaceOfDarkness),
		Compass:       entities.CompassItem(entities.DungeonPalaceOfDarkness),
		SmallKey:      entities.SmallKeyItem(entities.DungeonPalaceOfDarkness),
		BigKey:        entities.BigKeyItem(entities.DungeonPalaceOfDarkness),
		SmallKeyCount: 6,
		Items: []entities.DungeonItemID{
			entities.PoDShooterRoom,
			entities.PoDMapChest,
			entities.PoDArenaLedgeChest,
			entities.PoDArenaBridge,
			entities.PoDStalfosBasement,
			entities.PoDBigKeyChest,
			entities.PoDCompassChest,
			entities.PoDDarkBasementLeft,
			entities.PoDDarkBasementRight,
			entities.PoDHarmlessHellway,
			entities.PoDDarkMazeTop,
			entities.PoDDarkMazeBottom,
			entities.PoDBigChest,
		},
		Bosses: []entities.DungeonItemID{entities.PoDBoss},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.PoDFirstKeyDoor,
			entities.PoDBigKeyChestKeyDoor,
			entities.PoDBridgeKeyDoor,
			entities.PoDHellwayKeyDoor,
			entities.PoDDarkMazeKeyDoor,
			entities.PoDBossAreaKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.PoDBigChestDoor,
			entities.PoDBigKeyDoor,
		},
		KeyLayouts: []KeyLayout{
			// the first door can only be opened with the shooter room key
			SmallKeyLayout{
				Count:     1,
				Locations: []entities.DungeonItemID{entities.PoDShooterRoom},
				Children: []KeyLayout{
					SmallKeyLayout{
						Count:             5,
						Locations:         pastShooter,
						BigKeyInLocations: true,
						Children:          []KeyLayout{BigKeyLayout{Locations: bigKeyLocations}},
					},
				},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.PoDFront,
			entities.PoDPastFirstKeyDoor,
			entities.PoDArenaLedge,
			entities.PoDBigKeyChestRoom,
			entities.PoDPastBridgeKeyDoor,
			entities.PoDDarkBasement,
			entities.PoDHellway,
			entities.PoDDarkMaze,
			entities.PoDBigChestRoom,
			entities.PoDPastBossAreaKeyDoor,
			entities.PoDPastBigKeyDoor,
			entities.PoDBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldPoDEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldPoDEntry, entities.PoDFront),
			Gated(entities.PoDFront, entities.PoDPastFirstKeyDoor, entities.PoDFirstKeyDoor, nil),
			Plain(entities.PoDPastFirstKeyDoor, entities.PoDArenaLedge, requirements.Item(entities.ItemBow)),
			Gated(entities.PoDPastFirstKeyDoor, entities.PoDBigKeyChestRoom, entities.PoDBigKeyChestKeyDoor, nil),
			Gated(entities.PoDPastFirstKeyDoor, entities.PoDPastBridgeKeyDoor, entities.PoDBridgeKeyDoor, nil),
			Plain(entities.PoDPastBridgeKeyDoor, entities.PoDDarkBasement, dark),
			Gated(entities.PoDPastBridgeKeyDoor, entities.PoDHellway, entities.PoDHellwayKeyDoor, nil),
			Gated(entities.PoDPastBridgeKeyDoor, entities.PoDDarkMaze, entities.PoDDarkMazeKeyDoor, dark),
			Gated(entities.PoDDarkMaze, entities.PoDBigChestRoom, entities.PoDBigChestDoor, nil),
			Gated(entities.PoDDarkMaze, entities.PoDPastBossAreaKeyDoor, entities.PoDBossAreaKeyDoor, requirements.All(
				requirements.Item(entities.ItemHammer),
				requirements.Item(entities.ItemBow),
			)),
			Gated(entities.PoDPastBossAreaKeyDoor, entities.PoDPastBigKeyDoor, entities.PoDBigKeyDoor, dark),
			Plain(entities.PoDPastBigKeyDoor, entities.PoDBossRoom, requirements.Boss(entities.BossHelmasaur)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.PoDShooterRoom:       entities.PoDFront,
			entities.PoDMapChest:          entities.PoDArenaLedge,
			entities.PoDArenaLedgeChest:   entities.PoDArenaLedge,
			entities.PoDArenaBridge:       entities.PoDPastFirstKeyDoor,
			entities.PoDStalfosBasement:   entities.PoDPastFirstKeyDoor,
			entities.PoDBigKeyChest:       entities.PoDBigKeyChestRoom,
			entities.PoDCompassChest:      entities.PoDPastBridgeKeyDoor,
			entities.PoDDarkBasementLeft:  entities.PoDDarkBasement,
			entities.PoDDarkBasementRight: entities.PoDDarkBasement,
			entities.PoDHarmlessHellway:   entities.PoDHellway,
			entities.PoDDarkMazeTop:       entities.PoDDarkMaze,
			entities.PoDDarkMazeBottom:    entities.PoDDarkMaze,
			entities.PoDBigChest:          entities.PoDBigChestRoom,
			entities.PoDBoss:              entities.PoDBossRoom,
		},
	}
}
