package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func thievesTown() *Dungeon {
	front := []entities.DungeonItemID{
		entities.TTMapChest,
		entities.TTAmbushChest,
		entities.TTCompassChest,
		entities.TTBigKeyChest,
	}
	regular := append(append([]entities.DungeonItemID{}, front...),
		entities.TTAttic,
		entities.TTBlindsCellChest,
	)
	withDrops := append(append([]entities.DungeonItemID{}, regular...),
		entities.TTHallwayPot,
		entities.TTSpikeSwitchPot,
	)

	return &Dungeon{
		ID:            entities.DungeonThievesTown,
		Name:          "Thieves' Town",
		Map:           entities.MapItem(entities.DungeonThievesTown),
		Compass:       entities.CompassItem(entities.DungeonThievesTown),
		SmallKey:      entities.SmallKeyItem(entities.DungeonThievesTown),
		BigKey:        entities.BigKeyItem(entities.DungeonThievesTown),
		SmallKeyCount: 1,
		Items: []entities.DungeonItemID{
			entities.TTMapChest,
			entities.TTAmbushChest,
			entities.TTCompassChest,
			entities.TTBigKeyChest,
			entities.TTAttic,
			entities.TTBlindsCellChest,
			entities.TTBigChest,
		},
		Bosses: []entities.DungeonItemID{entities.TTBoss},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.TTHallwayPot,
			entities.TTSpikeSwitchPot,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.TTFirstKeyDoor,
			entities.TTSecondKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.TTBigKeyDoor,
			entities.TTBlindsCellDoor,
			entities.TTBigChestDoor,
		},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:             1,
				Locations:         regular,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(false),
				Children:          []KeyLayout{BigKeyLayout{Locations: front}},
			},
			SmallKeyLayout{
				Count:             3,
				Locations:         withDrops,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children:          []KeyLayout{BigKeyLayout{Locations: front}},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.TTFront,
			entities.TTPastBigKeyDoor,
			entities.TTPastFirstKeyDoor,
			entities.TTBlindsCell,
			entities.TTPastSecondKeyDoor,
			entities.TTBigChestRoom,
			entities.TTBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldTTEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldTTEntry, entities.TTFront),
			Gated(entities.TTFront, entities.TTPastBigKeyDoor, entities.TTBigKeyDoor, nil),
			Gated(entities.TTPastBigKeyDoor, entities.TTPastFirstKeyDoor, entities.TTFirstKeyDoor, nil),
			Gated(entities.TTPastBigKeyDoor, entities.TTBlindsCell, entities.TTBlindsCellDoor, nil),
			Gated(entities.TTPastBigKeyDoor, entities.TTPastSecondKeyDoor, entities.TTSecondKeyDoor, nil),
			Gated(entities.TTPastSecondKeyDoor, entities.TTBigChestRoom, entities.TTBigChestDoor, requirements.Item(entities.ItemHammer)),
			Plain(entities.TTPastFirstKeyDoor, entities.TTBossRoom, requirements.Boss(entities.BossBlind)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.TTMapChest:        entities.TTFront,
			entities.TTAmbushChest:     entities.TTFront,
			entities.TTCompassChest:    entities.TTFront,
			entities.TTBigKeyChest:     entities.TTFront,
			entities.TTAttic:           entities.TTPastFirstKeyDoor,
			entities.TTBlindsCellChest: entities.TTBlindsCell,
			entities.TTBigChest:        entities.TTBigChestRoom,
			entities.TTBoss:            entities.TTBossRoom,
			entities.TTHallwayPot:      entities.TTPastBigKeyDoor,
			entities.TTSpikeSwitchPot:  entities.TTPastFirstKeyDoor,
		},
	}
}
