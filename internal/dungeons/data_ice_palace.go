package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func icePalace() *Dungeon {
	regular := []entities.DungeonItemID{
		entities.IPCompassChest,
		entities.IPSpikeRoom,
		entities.IPMapChest,
		entities.IPBigKeyChest,
		entities.IPFreezorChest,
		entities.IPIcedT,
	}
	withDrops := append(append([]entities.DungeonItemID{}, regular...),
		entities.IPJellyDrop,
		entities.IPConveyorDrop,
		entities.IPHammerBlockDrop,
		entities.IPManyPotsPot,
	)

	return &Dungeon{
		ID:            entities.DungeonIcePalace,
		Name:          "Ice Palace",
		Map:           entities.MapItem(entities.DungeonIcePalace),
		Compass:       entities.CompassItem(entities.DungeonIcePalace),
		SmallKey:      entities.SmallKeyItem(entities.DungeonIcePalace),
		BigKey:        entities.BigKeyItem(entities.DungeonIcePalace),
		SmallKeyCount: 2,
		Items: []entities.DungeonItemID{
			entities.IPCompassChest,
			entities.IPSpikeRoom,
			entities.IPMapChest,
			entities.IPBigKeyChest,
			entities.IPFreezorChest,
			entities.IPBigChest,
			entities.IPIcedT,
		},
		Bosses: []entities.DungeonItemID{entities.IPBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.IPJellyDrop,
			entities.IPConveyorDrop,
			entities.IPHammerBlockDrop,
			entities.IPManyPotsPot,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.IPFirstKeyDoor,
			entities.IPSecondKeyDoor,
			entities.IPThirdKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.IPBigChestDoor,
			entities.IPBigKeyDoor,
		},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:             2,
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
			entities.IPEntrance,
			entities.IPFront,
			entities.IPPastFirstKeyDoor,
			entities.IPPastSecondKeyDoor,
			entities.IPHammerBlocks,
			entities.IPFreezorRoom,
			entities.IPBigChestRoom,
			entities.IPIcedTRoom,
			entities.IPPastBigKeyDoor,
			entities.IPPastThirdKeyDoor,
			entities.IPBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldIPEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldIPEntry, entities.IPEntrance),
			Plain(entities.IPEntrance, entities.IPFront, requirements.Any(
				requirements.MeltIce,
				requirements.SequenceBreak(entities.SequenceBreakIcePalaceEntry),
			)),
			Gated(entities.IPFront, entities.IPPastFirstKeyDoor, entities.IPFirstKeyDoor, nil),
			Gated(entities.IPPastFirstKeyDoor, entities.IPPastSecondKeyDoor, entities.IPSecondKeyDoor, nil),
			Plain(entities.IPPastSecondKeyDoor, entities.IPHammerBlocks, requirements.All(
				requirements.Item(entities.ItemHammer),
				requirements.Item(entities.ItemGloves),
			)),
			Plain(entities.IPPastSecondKeyDoor, entities.IPFreezorRoom, requirements.MeltIce),
			Gated(entities.IPPastSecondKeyDoor, entities.IPBigChestRoom, entities.IPBigChestDoor, nil),
			Plain(entities.IPPastSecondKeyDoor, entities.IPIcedTRoom, nil),
			Gated(entities.IPIcedTRoom, entities.IPPastBigKeyDoor, entities.IPBigKeyDoor, requirements.Item(entities.ItemHammer)),
			Gated(entities.IPPastBigKeyDoor, entities.IPPastThirdKeyDoor, entities.IPThirdKeyDoor, nil),
			Plain(entities.IPPastThirdKeyDoor, entities.IPBossRoom, requirements.Boss(entities.BossKholdstare)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.IPCompassChest:    entities.IPFront,
			entities.IPSpikeRoom:       entities.IPPastSecondKeyDoor,
			entities.IPMapChest:        entities.IPHammerBlocks,
			entities.IPBigKeyChest:     entities.IPHammerBlocks,
			entities.IPFreezorChest:    entities.IPFreezorRoom,
			entities.IPBigChest:        entities.IPBigChestRoom,
			entities.IPIcedT:           entities.IPIcedTRoom,
			entities.IPBoss:            entities.IPBossRoom,
			entities.IPJellyDrop:       entities.IPFront,
			entities.IPConveyorDrop:    entities.IPPastFirstKeyDoor,
			entities.IPHammerBlockDrop: entities.IPHammerBlocks,
			entities.IPManyPotsPot:     entities.IPIcedTRoom,
		},
	}
}
