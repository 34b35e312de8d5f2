package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func hyruleCastle() *Dungeon {
	dark := requirements.DarkRoom(entities.SequenceBreakDarkRoomHC)

	regular := []entities.DungeonItemID{
		entities.HCSanctuaryChest,
		entities.HCSecretRoomLeft,
		entities.HCSecretRoomMiddle,
		entities.HCSecretRoomRight,
		entities.HCDarkCross,
		entities.HCMapChest,
		entities.HCBoomerangChest,
	}
	withDrops := append(append([]entities.DungeonItemID{}, regular...),
		entities.HCZeldasChest,
		entities.HCMapGuardDrop,
		entities.HCBoomerangGuardDrop,
		entities.HCKeyRatDrop,
		entities.HCBallNChainDrop,
	)

	return &Dungeon{
		ID:            entities.DungeonHyruleCastle,
		Name:          "Hyrule Castle",
		Map:           entities.MapItem(entities.DungeonHyruleCastle),
		SmallKey:      entities.SmallKeyItem(entities.DungeonHyruleCastle),
		BigKey:        entities.BigKeyItem(entities.DungeonHyruleCastle),
		SmallKeyCount: 1,
		Items: []entities.DungeonItemID{
			entities.HCSanctuaryChest,
			entities.HCSecretRoomLeft,
			entities.HCSecretRoomMiddle,
			entities.HCSecretRoomRight,
			entities.HCDarkCross,
			entities.HCMapChest,
			entities.HCBoomerangChest,
			entities.HCZeldasChest,
		},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.HCMapGuardDrop,
			entities.HCBoomerangGuardDrop,
			entities.HCKeyRatDrop,
		},
		BigKeyDrops: []entities.DungeonItemID{entities.HCBallNChainDrop},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.HCEscapeFirstKeyDoor,
			entities.HCEscapeSecondKeyDoor,
			entities.HCDarkCrossKeyDoor,
			entities.HCSewerRatKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{entities.HCZeldasCellDoor},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:       1,
				Locations:   regular,
				Requirement: requirements.KeyDropShuffle(false),
			},
			SmallKeyLayout{
				Count:             4,
				Locations:         withDrops,
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children: []KeyLayout{
					BigKeyLayout{Locations: append(append([]entities.DungeonItemID{}, regular...),
						entities.HCMapGuardDrop,
						entities.HCBoomerangGuardDrop,
						entities.HCKeyRatDrop,
						entities.HCBallNChainDrop,
					)},
				},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.HCSanctuary,
			entities.HCFront,
			entities.HCMapRoom,
			entities.HCPastEscapeFirstKeyDoor,
			entities.HCPastEscapeSecondKeyDoor,
			entities.HCZeldasCell,
			entities.HCDarkRoomFront,
			entities.HCPastDarkCrossKeyDoor,
			entities.HCSewerRatRoom,
			entities.HCPastSewerRatKeyDoor,
			entities.HCDarkRoomBack,
			entities.HCSecretRoom,
		},
		Entries: []entities.OverworldNodeID{
			entities.OverworldHCSanctuaryEntry,
			entities.OverworldHCFrontEntry,
		},
		Connections: []NodeConnection{
			Entry(entities.OverworldHCSanctuaryEntry, entities.HCSanctuary),
			Entry(entities.OverworldHCFrontEntry, entities.HCFront),

			Plain(entities.HCFront, entities.HCMapRoom, nil),
			Gated(entities.HCMapRoom, entities.HCPastEscapeFirstKeyDoor, entities.HCEscapeFirstKeyDoor, nil),
			Gated(entities.HCPastEscapeFirstKeyDoor, entities.HCPastEscapeSecondKeyDoor, entities.HCEscapeSecondKeyDoor, nil),
			Gated(entities.HCPastEscapeSecondKeyDoor, entities.HCZeldasCell, entities.HCZeldasCellDoor, nil),

			// sewers, entered from the front
			Plain(entities.HCFront, entities.HCDarkRoomFront, dark),
			Gated(entities.HCDarkRoomFront, entities.HCPastDarkCrossKeyDoor, entities.HCDarkCrossKeyDoor, nil),
			Plain(entities.HCPastDarkCrossKeyDoor, entities.HCSewerRatRoom, dark),
			Gated(entities.HCSewerRatRoom, entities.HCPastSewerRatKeyDoor, entities.HCSewerRatKeyDoor, nil),
			Plain(entities.HCPastSewerRatKeyDoor, entities.HCDarkRoomBack, dark),
			Plain(entities.HCDarkRoomBack, entities.HCSecretRoom, nil),
			Plain(entities.HCSecretRoom, entities.HCSanctuary, nil),

			// sewers, entered from the sanctuary
			Plain(entities.HCSanctuary, entities.HCSecretRoom, nil),
			Plain(entities.HCSecretRoom, entities.HCDarkRoomBack, dark),
			Plain(entities.HCDarkRoomBack, entities.HCPastSewerRatKeyDoor, dark),
			Gated(entities.HCPastSewerRatKeyDoor, entities.HCSewerRatRoom, entities.HCSewerRatKeyDoor, nil),
			Plain(entities.HCSewerRatRoom, entities.HCPastDarkCrossKeyDoor, dark),
			Gated(entities.HCPastDarkCrossKeyDoor, entities.HCDarkRoomFront, entities.HCDarkCrossKeyDoor, nil),
			Plain(entities.HCDarkRoomFront, entities.HCFront, dark),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.HCSanctuaryChest:     entities.HCSanctuary,
			entities.HCSecretRoomLeft:     entities.HCSecretRoom,
			entities.HCSecretRoomMiddle:   entities.HCSecretRoom,
			entities.HCSecretRoomRight:    entities.HCSecretRoom,
			entities.HCDarkCross:          entities.HCDarkRoomFront,
			entities.HCMapChest:           entities.HCMapRoom,
			entities.HCBoomerangChest:     entities.HCPastEscapeFirstKeyDoor,
			entities.HCZeldasChest:        entities.HCZeldasCell,
			entities.HCMapGuardDrop:       entities.HCMapRoom,
			entities.HCBoomerangGuardDrop: entities.HCPastEscapeFirstKeyDoor,
			entities.HCKeyRatDrop:         entities.HCSewerRatRoom,
			entities.HCBallNChainDrop:     entities.HCPastEscapeSecondKeyDoor,
		},
	}
}
