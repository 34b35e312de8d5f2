package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func swampPalace() *Dungeon {
	pastEntrance := []entities.DungeonItemID{
		entities.SPMapChest,
		entities.SPWestChest,
		entities.SPCompassChest,
		entities.SPBigKeyChest,
		entities.SPFloodedRoomLeft,
		entities.SPFloodedRoomRight,
		entities.SPWaterfallRoom,
	}
	pastEntranceWithDrops := append(append([]entities.DungeonItemID{}, pastEntrance...),
		entities.SPPotRowPot,
		entities.SPTrench1Pot,
		entities.SPHookshotPot,
		entities.SPTrench2Pot,
		entities.SPWaterwayPot,
	)
	entrance := []entities.DungeonItemID{entities.SPEntranceChest}

	return &Dungeon{
		ID:            entities.DungeonSwampPalace,
		Name:          "Swamp Palace",
		Map:           entities.MapItem(entities.DungeonSwampPalace),
		Compass:       entities.CompassItem(entities.DungeonSwampPalace),
		SmallKey:      entities.SmallKeyItem(entities.DungeonSwampPalace),
		BigKey:        entities.BigKeyItem(entities.DungeonSwampPalace),
		SmallKeyCount: 1,
		Items: []entities.DungeonItemID{
			entities.SPEntranceChest,
			entities.SPMapChest,
			entities.SPWestChest,
			entities.SPCompassChest,
			entities.SPBigKeyChest,
			entities.SPBigChest,
			entities.SPFloodedRoomLeft,
			entities.SPFloodedRoomRight,
			entities.SPWaterfallRoom,
		},
		Bosses: []entities.DungeonItemID{entities.SPBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.SPPotRowPot,
			entities.SPTrench1Pot,
			entities.SPHookshotPot,
			entities.SPTrench2Pot,
			entities.SPWaterwayPot,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.SPFirstKeyDoor,
			entities.SPSecondKeyDoor,
			entities.SPThirdKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{entities.SPBigChestDoor},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:       1,
				Locations:   entrance,
				Requirement: requirements.KeyDropShuffle(false),
				Children:    []KeyLayout{BigKeyLayout{Locations: pastEntrance}},
			},
			SmallKeyLayout{
				Count:       1,
				Locations:   entrance,
				Requirement: requirements.KeyDropShuffle(true),
				Children: []KeyLayout{
					SmallKeyLayout{
						Count:             5,
						Locations:         pastEntranceWithDrops,
						BigKeyInLocations: true,
						Children:          []KeyLayout{BigKeyLayout{Locations: pastEntranceWithDrops}},
					},
				},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.SPEntrance,
			entities.SPPastFirstKeyDoor,
			entities.SPPastSecondKeyDoor,
			entities.SPBigChestRoom,
			entities.SPPastHookshot,
			entities.SPPastThirdKeyDoor,
			entities.SPBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldSPEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldSPEntry, entities.SPEntrance),
			Gated(entities.SPEntrance, entities.SPPastFirstKeyDoor, entities.SPFirstKeyDoor, requirements.Item(entities.ItemFlippers)),
			Gated(entities.SPPastFirstKeyDoor, entities.SPPastSecondKeyDoor, entities.SPSecondKeyDoor, nil),
			Gated(entities.SPPastSecondKeyDoor, entities.SPBigChestRoom, entities.SPBigChestDoor, nil),
			Plain(entities.SPPastSecondKeyDoor, entities.SPPastHookshot, requirements.Item(entities.ItemHookshot)),
			Gated(entities.SPPastHookshot, entities.SPPastThirdKeyDoor, entities.SPThirdKeyDoor, nil),
			Plain(entities.SPPastThirdKeyDoor, entities.SPBossRoom, requirements.Boss(entities.BossArrghus)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.SPEntranceChest:    entities.SPEntrance,
			entities.SPMapChest:         entities.SPPastFirstKeyDoor,
			entities.SPWestChest:        entities.SPPastSecondKeyDoor,
			entities.SPCompassChest:     entities.SPPastSecondKeyDoor,
			entities.SPBigKeyChest:      entities.SPPastSecondKeyDoor,
			entities.SPBigChest:         entities.SPBigChestRoom,
			entities.SPFloodedRoomLeft:  entities.SPPastHookshot,
			entities.SPFloodedRoomRight: entities.SPPastHookshot,
			entities.SPWaterfallRoom:    entities.SPPastHookshot,
			entities.SPBoss:             entities.SPBossRoom,
			entities.SPPotRowPot:        entities.SPPastFirstKeyDoor,
			entities.SPTrench1Pot:       entities.SPPastSecondKeyDoor,
			entities.SPHookshotPot:      entities.SPPastHookshot,
			entities.SPTrench2Pot:       entities.SPPastHookshot,
			entities.SPWaterwayPot:      entities.SPPastThirdKeyDoor,
		},
	}
}
