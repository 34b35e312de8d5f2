package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func ganonsTower() *Dungeon {
	bigKeyLocations := []entities.DungeonItemID{
		entities.GTHopeRoomLeft,
		entities.GTHopeRoomRight,
		entities.GTBobsTorchItem,
		entities.GTDMsTopLeft,
		entities.GTDMsTopRight,
		entities.GTDMsBottomLeft,
		entities.GTDMsBottomRight,
		entities.GTMapChest,
		entities.GTFiresnakeRoom,
		entities.GTRandomizerTopLeft,
		entities.GTRandomizerTopRight,
		entities.GTRandomizerBottomLeft,
		entities.GTRandomizerBottomRight,
		entities.GTTileRoom,
		entities.GTCompassTopLeft,
		entities.GTCompassTopRight,
		entities.GTCompassBottomLeft,
		entities.GTCompassBottomRight,
		entities.GTBobsChest,
		entities.GTBigKeyChest,
		entities.GTBigKeyRoomLeft,
		entities.GTBigKeyRoomRight,
	}
	regular := append(append([]entities.DungeonItemID{}, bigKeyLocations...),
		entities.GTMiniHelmasaurLeft,
		entities.GTMiniHelmasaurRight,
		entities.GTPreMoldorm,
		entities.GTValidationChest,
	)
	drops := []entities.DungeonItemID{
		entities.GTConveyorCrossPot,
		entities.GTDoubleSwitchPot,
		entities.GTConveyorStarPitsPot,
		entities.GTMiniHelmasaurDrop,
	}

	return &Dungeon{
		ID:            entities.DungeonGanonsTower,
		Name:          "Ganon's Tower",
		Map:           entities.MapItem(entities.DungeonGanonsTower),
		Compass:       entities.CompassItem(entities.DungeonGanonsTower),
		SmallKey:      entities.SmallKeyItem(entities.DungeonGanonsTower),
		BigKey:        entities.BigKeyItem(entities.DungeonGanonsTower),
		SmallKeyCount: 4,
		Items:         append(append([]entities.DungeonItemID{}, regular...), entities.GTBigChest),
		SmallKeyDrops: drops,
		SmallKeyDoors: []entities.KeyDoorID{
			entities.GTMapKeyDoor,
			entities.GTFirstKeyDoor,
			entities.GTRightKeyDoor,
			entities.GTUpperKeyDoor,
		},
		BigKeyDoors: []entities.KeyDoorID{
			entities.GTBigChestDoor,
			entities.GTBigKeyDoor,
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
				Count:             8,
				Locations:         append(append([]entities.DungeonItemID{}, regular...), drops...),
				BigKeyInLocations: true,
				Requirement:       requirements.KeyDropShuffle(true),
				Children: []KeyLayout{
					BigKeyLayout{Locations: append(append([]entities.DungeonItemID{}, bigKeyLocations...), drops[:3]...)},
				},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.GTFront,
			entities.GTBobsTorch,
			entities.GTLeftSide,
			entities.GTDMsRoom,
			entities.GTMapRoom,
			entities.GTPastFirstKeyDoor,
			entities.GTRightSide,
			entities.GTPastRightKeyDoor,
			entities.GTBobsArea,
			entities.GTBigChestRoom,
			entities.GTUpstairs,
			entities.GTPastUpperKeyDoor,
			entities.GTValidation,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldGTEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldGTEntry, entities.GTFront),
			Plain(entities.GTFront, entities.GTBobsTorch, requirements.Any(
				requirements.Item(entities.ItemBoots),
				requirements.Inspect,
			)),

			// left side
			Plain(entities.GTFront, entities.GTLeftSide, requirements.Item(entities.ItemHammer)),
			Plain(entities.GTLeftSide, entities.GTDMsRoom, requirements.Item(entities.ItemHookshot)),
			Gated(entities.GTLeftSide, entities.GTMapRoom, entities.GTMapKeyDoor, requirements.Any(
				requirements.Item(entities.ItemHookshot),
				requirements.Item(entities.ItemBoots),
			)),
			Gated(entities.GTLeftSide, entities.GTPastFirstKeyDoor, entities.GTFirstKeyDoor, nil),
			Plain(entities.GTPastFirstKeyDoor, entities.GTBobsArea, nil),

			// right side
			Plain(entities.GTFront, entities.GTRightSide, requirements.Item(entities.ItemSomaria)),
			Gated(entities.GTRightSide, entities.GTPastRightKeyDoor, entities.GTRightKeyDoor, requirements.Item(entities.ItemFireRod)),
			Plain(entities.GTPastRightKeyDoor, entities.GTBobsArea, nil),

			Gated(entities.GTBobsArea, entities.GTBigChestRoom, entities.GTBigChestDoor, nil),

			// upstairs
			Gated(entities.GTFront, entities.GTUpstairs, entities.GTBigKeyDoor, requirements.All(
				requirements.Item(entities.ItemBow),
				requirements.FireSource,
			)),
			Gated(entities.GTUpstairs, entities.GTPastUpperKeyDoor, entities.GTUpperKeyDoor, nil),
			Plain(entities.GTPastUpperKeyDoor, entities.GTValidation, requirements.All(
				requirements.Item(entities.ItemHookshot),
				requirements.Boss(entities.BossMoldorm),
			)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.GTHopeRoomLeft:          entities.GTFront,
			entities.GTHopeRoomRight:         entities.GTFront,
			entities.GTBobsTorchItem:         entities.GTBobsTorch,
			entities.GTDMsTopLeft:            entities.GTDMsRoom,
			entities.GTDMsTopRight:           entities.GTDMsRoom,
			entities.GTDMsBottomLeft:         entities.GTDMsRoom,
			entities.GTDMsBottomRight:        entities.GTDMsRoom,
			entities.GTMapChest:              entities.GTMapRoom,
			entities.GTFiresnakeRoom:         entities.GTPastFirstKeyDoor,
			entities.GTRandomizerTopLeft:     entities.GTPastFirstKeyDoor,
			entities.GTRandomizerTopRight:    entities.GTPastFirstKeyDoor,
			entities.GTRandomizerBottomLeft:  entities.GTPastFirstKeyDoor,
			entities.GTRandomizerBottomRight: entities.GTPastFirstKeyDoor,
			entities.GTTileRoom:              entities.GTRightSide,
			entities.GTCompassTopLeft:        entities.GTPastRightKeyDoor,
			entities.GTCompassTopRight:       entities.GTPastRightKeyDoor,
			entities.GTCompassBottomLeft:     entities.GTPastRightKeyDoor,
			entities.GTCompassBottomRight:    entities.GTPastRightKeyDoor,
			entities.GTBobsChest:             entities.GTBobsArea,
			entities.GTBigKeyChest:           entities.GTBobsArea,
			entities.GTBigKeyRoomLeft:        entities.GTBobsArea,
			entities.GTBigKeyRoomRight:       entities.GTBobsArea,
			entities.GTBigChest:              entities.GTBigChestRoom,
			entities.GTMiniHelmasaurLeft:     entities.GTUpstairs,
			entities.GTMiniHelmasaurRight:    entities.GTUpstairs,
			entities.GTPreMoldorm:            entities.GTPastUpperKeyDoor,
			entities.GTValidationChest:       entities.GTValidation,
			entities.GTConveyorCrossPot:      entities.GTLeftSide,
			entities.GTDoubleSwitchPot:       entities.GTBobsArea,
			entities.GTConveyorStarPitsPot:   entities.GTPastRightKeyDoor,
			entities.GTMiniHelmasaurDrop:     entities.GTUpstairs,
		},
	}
}
