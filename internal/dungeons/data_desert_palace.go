package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func desertPalace() *Dungeon {
	regular := []entities.DungeonItemID{
		entities.DPMapChest,
		entities.DPTorchItem,
		entities.DPCompassChest,
		entities.DPBigKeyChest,
	}
	withDrops := append(append([]entities.DungeonItemID{}, regular...),
		entities.DPBeamosHallPot,
		entities.DPTiles1Pot,
		entities.DPTiles2Pot,
	)

	return &Dungeon{
		ID:            entities.DungeonDesertPalace,
		Name:          "Desert Palace",
		Map:           entities.MapItem(entities.DungeonDesertPalace),
		Compass:       entities.CompassItem(entities.DungeonDesertPalace),
		SmallKey:      entities.SmallKeyItem(entities.DungeonDesertPalace),
		BigKey:        entities.BigKeyItem(entities.DungeonDesertPalace),
		SmallKeyCount: 1,
		Items: []entities.DungeonItemID{
			entities.DPMapChest,
			entities.DPTorchItem,
			entities.DPCompassChest,
			entities.DPBigKeyChest,
			entities.DPBigChest,
		},
		Bosses: []entities.DungeonItemID{entities.DPBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.DPBeamosHallPot,
			entities.DPTiles1Pot,
			entities.DPTiles2Pot,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.DPRightKeyDoor,
			entities.DPBackFirstKeyDoor,
			entities.DPBackSecondKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.DPBigChestDoor,
			entities.DPBigKeyDoor,
		},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:             1,
				Locations:         regular,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(false),
				Children:          []KeyLayout{BigKeyLayout{Locations: regular}},
			},
			SmallKeyLayout{
				Count:             4,
				Locations:         withDrops,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children:          []KeyLayout{BigKeyLayout{Locations: withDrops}},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.DPFront,
			entities.DPTorch,
			entities.DPBigChestRoom,
			entities.DPPastRightKeyDoor,
			entities.DPBack,
			entities.DPPastBackFirstKeyDoor,
			entities.DPPastBackSecondKeyDoor,
			entities.DPPastBigKeyDoor,
			entities.DPBossRoom,
		},
		Entries: []entities.OverworldNodeID{
			entities.OverworldDPFrontEntry,
			entities.OverworldDPBackEntry,
		},
		Connections: []NodeConnection{
			Entry(entities.OverworldDPFrontEntry, entities.DPFront),
			Entry(entities.OverworldDPBackEntry, entities.DPBack),

			// the torch item can be seen from the floor but needs boots to knock down
			Plain(entities.DPFront, entities.DPTorch, requirements.Any(
				requirements.Item(entities.ItemBoots),
				requirements.Inspect,
			)),
			Gated(entities.DPFront, entities.DPBigChestRoom, entities.DPBigChestDoor, nil),
			Gated(entities.DPFront, entities.DPPastRightKeyDoor, entities.DPRightKeyDoor, nil),

			Gated(entities.DPBack, entities.DPPastBackFirstKeyDoor, entities.DPBackFirstKeyDoor, nil),
			Gated(entities.DPPastBackFirstKeyDoor, entities.DPPastBackSecondKeyDoor, entities.DPBackSecondKeyDoor, nil),
			Gated(entities.DPPastBackSecondKeyDoor, entities.DPPastBigKeyDoor, entities.DPBigKeyDoor, requirements.FireSource),
			Plain(entities.DPPastBigKeyDoor, entities.DPBossRoom, requirements.Boss(entities.BossLanmolas)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.DPMapChest:      entities.DPFront,
			entities.DPTorchItem:     entities.DPTorch,
			entities.DPCompassChest:  entities.DPPastRightKeyDoor,
			entities.DPBigKeyChest:   entities.DPPastRightKeyDoor,
			entities.DPBigChest:      entities.DPBigChestRoom,
			entities.DPBoss:          entities.DPBossRoom,
			entities.DPBeamosHallPot: entities.DPFront,
			entities.DPTiles1Pot:     entities.DPBack,
			entities.DPTiles2Pot:     entities.DPPastBackFirstKeyDoor,
		},
	}
}
