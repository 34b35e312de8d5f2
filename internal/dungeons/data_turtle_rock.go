package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func turtleRock() *Dungeon {
	somaria := requirements.Item(entities.ItemSomaria)

	bigKeyLocations := []entities.DungeonItemID{
		entities.TRCompassChest,
		entities.TRRollerRoomLeft,
		entities.TRRollerRoomRight,
		entities.TRChainChomps,
		entities.TRBigKeyChest,
		entities.TREyeBridgeTopLeft,
		entities.TREyeBridgeTopRight,
		entities.TREyeBridgeBottomLeft,
		entities.TREyeBridgeBottomRight,
	}
	regular := append(append([]entities.DungeonItemID{}, bigKeyLocations...), entities.TRCrystaroller)
	withDrops := append(append([]entities.DungeonItemID{}, regular...),
		entities.TRPokey1Drop,
		entities.TRPokey2Drop,
	)

	return &Dungeon{
		ID:            entities.DungeonTurtleRock,
		Name:          "Turtle Rock",
		Map:           entities.MapItem(entities.DungeonTurtleRock),
		Compass:       entities.CompassItem(entities.DungeonTurtleRock),
		SmallKey:      entities.SmallKeyItem(entities.DungeonTurtleRock),
		BigKey:        entities.BigKeyItem(entities.DungeonTurtleRock),
		SmallKeyCount: 4,
		Items: []entities.DungeonItemID{
			entities.TRCompassChest,
			entities.TRRollerRoomLeft,
			entities.TRRollerRoomRight,
			entities.TRChainChomps,
			entities.TRBigKeyChest,
			entities.TRBigChest,
			entities.TRCrystaroller,
			entities.TREyeBridgeTopLeft,
			entities.TREyeBridgeTopRight,
			entities.TREyeBridgeBottomLeft,
			entities.TREyeBridgeBottomRight,
		},
		Bosses: []entities.DungeonItemID{entities.TRBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.TRPokey1Drop,
			entities.TRPokey2Drop,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.TRFirstKeyDoor,
			entities.TRSecondKeyDoor,
			entities.TRThirdKeyDoor,
			entities.TRFourthKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.TRBigChestDoor,
			entities.TRBigKeyDoor,
		},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:             4,
				Locations:         regular,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(false),
				Children:          []KeyLayout{BigKeyLayout{Locations: bigKeyLocations}},
			},
			SmallKeyLayout{
				Count:             6,
				Locations:         withDrops,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children: []KeyLayout{
					BigKeyLayout{Locations: append(append([]entities.DungeonItemID{}, bigKeyLocations...),
						entities.TRPokey1Drop,
						entities.TRPokey2Drop,
					)},
				},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.TRFront,
			entities.TRRollerRoom,
			entities.TRPastFirstKeyDoor,
			entities.TRPastSecondKeyDoor,
			entities.TRMiddle,
			entities.TRBigChestRoom,
			entities.TRPastBigKeyDoor,
			entities.TRLaserBridge,
			entities.TRPastThirdKeyDoor,
			entities.TRPastFourthKeyDoor,
			entities.TRBossRoom,
		},
		Entries: []entities.OverworldNodeID{
			entities.OverworldTRFrontEntry,
			entities.OverworldTRMiddleEntry,
			entities.OverworldTRBackEntry,
		},
		Connections: []NodeConnection{
			Entry(entities.OverworldTRFrontEntry, entities.TRFront),
			Entry(entities.OverworldTRMiddleEntry, entities.TRMiddle),
			Entry(entities.OverworldTRBackEntry, entities.TRLaserBridge),

			Plain(entities.TRFront, entities.TRRollerRoom, requirements.All(somaria, requirements.Item(entities.ItemFireRod))),
			Gated(entities.TRFront, entities.TRPastFirstKeyDoor, entities.TRFirstKeyDoor, somaria),
			Gated(entities.TRPastFirstKeyDoor, entities.TRPastSecondKeyDoor, entities.TRSecondKeyDoor, nil),
			Plain(entities.TRPastSecondKeyDoor, entities.TRMiddle, nil),
			Gated(entities.TRMiddle, entities.TRBigChestRoom, entities.TRBigChestDoor, requirements.Any(
				requirements.Item(entities.ItemHookshot),
				somaria,
			)),
			Gated(entities.TRMiddle, entities.TRPastBigKeyDoor, entities.TRBigKeyDoor, nil),
			Plain(entities.TRPastBigKeyDoor, entities.TRLaserBridge, requirements.All(
				somaria,
				requirements.DarkRoom(entities.SequenceBreakDarkRoomTR),
			)),
			Gated(entities.TRLaserBridge, entities.TRPastThirdKeyDoor, entities.TRThirdKeyDoor, requirements.Any(
				requirements.Item(entities.ItemCape),
				requirements.Item(entities.ItemByrna),
				requirements.Item(entities.ItemShield),
			)),
			Gated(entities.TRPastThirdKeyDoor, entities.TRPastFourthKeyDoor, entities.TRFourthKeyDoor, somaria),
			Plain(entities.TRPastFourthKeyDoor, entities.TRBossRoom, requirements.Boss(entities.BossTrinexx)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.TRCompassChest:         entities.TRFront,
			entities.TRRollerRoomLeft:       entities.TRRollerRoom,
			entities.TRRollerRoomRight:      entities.TRRollerRoom,
			entities.TRChainChomps:          entities.TRPastFirstKeyDoor,
			entities.TRBigKeyChest:          entities.TRPastSecondKeyDoor,
			entities.TRBigChest:             entities.TRBigChestRoom,
			entities.TRCrystaroller:         entities.TRPastBigKeyDoor,
			entities.TREyeBridgeTopLeft:     entities.TRLaserBridge,
			entities.TREyeBridgeTopRight:    entities.TRLaserBridge,
			entities.TREyeBridgeBottomLeft:  entities.TRLaserBridge,
			entities.TREyeBridgeBottomRight: entities.TRLaserBridge,
			entities.TRBoss:                 entities.TRBossRoom,
			entities.TRPokey1Drop:           entities.TRPastFirstKeyDoor,
			entities.TRPokey2Drop:           entities.TRPastSecondKeyDoor,
		},
	}
}
