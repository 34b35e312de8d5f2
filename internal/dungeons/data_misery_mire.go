package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func miseryMire() *Dungeon {
	regular := []entities.DungeonItemID{
		entities.MMBridgeChest,
		entities.MMSpikeChest,
		entities.MMMainLobby,
		entities.MMMapChest,
		entities.MMCompassChest,
		entities.MMBigKeyChest,
	}
	withDrops := append(append([]entities.DungeonItemID{}, regular...),
		entities.MMSpikesPot,
		entities.MMFishbonePot,
		entities.MMConveyorDrop,
	)

	return &Dungeon{
		ID:            entities.DungeonMiseryMire,
		Name:          "Misery Mire",
		Map:           entities.MapItem(entities.DungeonMiseryMire),
		Compass:       entities.CompassItem(entities.DungeonMiseryMire),
		SmallKey:      entities.SmallKeyItem(entities.DungeonMiseryMire),
		BigKey:        entities.BigKeyItem(entities.DungeonMiseryMire),
		SmallKeyCount: 3,
		Items: []entities.DungeonItemID{
			entities.MMBridgeChest,
			entities.MMSpikeChest,
			entities.MMMainLobby,
			entities.MMMapChest,
			entities.MMCompassChest,
			entities.MMBigKeyChest,
			entities.MMBigChest,
		},
		Bosses: []entities.DungeonItemID{entities.MMBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.MMSpikesPot,
			entities.MMFishbonePot,
			entities.MMConveyorDrop,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.MMFirstKeyDoor,
			entities.MMSecondKeyDoor,
			entities.MMThirdKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.MMBigChestDoor,
			entities.MMBigKeyDoor,
		},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:             3,
				Locations:         regular,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(false),
				Children:          []KeyLayout{BigKeyLayout{Locations: regular}},
			},
			SmallKeyLayout{
				Count:             6,
				Locations:         withDrops,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children:          []KeyLayout{BigKeyLayout{Locations: withDrops}},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.MMEntrance,
			entities.MMFront,
			entities.MMPastFirstKeyDoor,
			entities.MMPastSecondKeyDoor,
			entities.MMBigChestRoom,
			entities.MMPastBigKeyDoor,
			entities.MMPastThirdKeyDoor,
			entities.MMBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldMMEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldMMEntry, entities.MMEntrance),
			Plain(entities.MMEntrance, entities.MMFront, requirements.Any(
				requirements.Item(entities.ItemHookshot),
				requirements.Item(entities.ItemBoots),
			)),
			Gated(entities.MMFront, entities.MMPastFirstKeyDoor, entities.MMFirstKeyDoor, nil),
			Gated(entities.MMFront, entities.MMPastSecondKeyDoor, entities.MMSecondKeyDoor, requirements.FireSource),
			Gated(entities.MMFront, entities.MMBigChestRoom, entities.MMBigChestDoor, nil),
			Gated(entities.MMFront, entities.MMPastBigKeyDoor, entities.MMBigKeyDoor, requirements.Item(entities.ItemSomaria)),
			Gated(entities.MMPastBigKeyDoor, entities.MMPastThirdKeyDoor, entities.MMThirdKeyDoor,
				requirements.DarkRoom(entities.SequenceBreakDarkRoomMM)),
			Plain(entities.MMPastThirdKeyDoor, entities.MMBossRoom, requirements.Boss(entities.BossVitreous)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.MMBridgeChest:  entities.MMFront,
			entities.MMSpikeChest:   entities.MMFront,
			entities.MMMainLobby:    entities.MMFront,
			entities.MMMapChest:     entities.MMPastFirstKeyDoor,
			entities.MMCompassChest: entities.MMPastSecondKeyDoor,
			entities.MMBigKeyChest:  entities.MMPastSecondKeyDoor,
			entities.MMBigChest:     entities.MMBigChestRoom,
			entities.MMBoss:         entities.MMBossRoom,
			entities.MMSpikesPot:    entities.MMFront,
			entities.MMFishbonePot:  entities.MMPastFirstKeyDoor,
			entities.MMConveyorDrop: entities.MMPastSecondKeyDoor,
		},
	}
}
