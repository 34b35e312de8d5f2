package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func towerOfHera() *Dungeon {
	return &Dungeon{
		ID:            entities.DungeonTowerOfHera,
		Name:          "Tower of Hera",
		Map:           entities.MapItem(entities.DungeonTowerOfHera),
		Compass:       entities.CompassItem(entities.DungeonTowerOfHera),
		SmallKey:      entities.SmallKeyItem(entities.DungeonTowerOfHera),
		BigKey:        entities.BigKeyItem(entities.DungeonTowerOfHera),
		SmallKeyCount: 1,
		Items: []entities.DungeonItemID{
			entities.ToHBasementCage,
			entities.ToHMapChest,
			entities.ToHBigKeyChest,
			entities.ToHCompassChest,
			entities.ToHBigChest,
		},
		Bosses:        []entities.DungeonItemID{entities.ToHBoss},
		SmallKeyDoors: []entities.KeyDoorID{entities.ToHBasementKeyDoor},
		BigKeyDoors: []entities.KeyDoorID{
			entities.ToHBigKeyDoor,
			entities.ToHBigChestDoor,
		},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:     1,
				Locations: []entities.DungeonItemID{entities.ToHBasementCage, entities.ToHMapChest},
				Doors:     []entities.KeyDoorID{entities.ToHBasementKeyDoor},
				Children: []KeyLayout{
					BigKeyLayout{Locations: []entities.DungeonItemID{
						entities.ToHBasementCage,
						entities.ToHMapChest,
						entities.ToHBigKeyChest,
					}},
				},
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.ToHFront,
			entities.ToHPastKeyDoor,
			entities.ToHBigKeyChestRoom,
			entities.ToHUpper,
			entities.ToHBigChestRoom,
			entities.ToHBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldToHEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldToHEntry, entities.ToHFront),
			Gated(entities.ToHFront, entities.ToHPastKeyDoor, entities.ToHBasementKeyDoor, nil),
			Plain(entities.ToHPastKeyDoor, entities.ToHBigKeyChestRoom, requirements.Any(
				requirements.FireSource,
				requirements.SequenceBreak(entities.SequenceBreakTorchToH),
				requirements.Inspect,
			)),
			Gated(entities.ToHFront, entities.ToHUpper, entities.ToHBigKeyDoor, nil),
			Gated(entities.ToHUpper, entities.ToHBigChestRoom, entities.ToHBigChestDoor, nil),
			Plain(entities.ToHUpper, entities.ToHBossRoom, requirements.Boss(entities.BossMoldorm)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.ToHBasementCage: entities.ToHFront,
			entities.ToHMapChest:     entities.ToHFront,
			entities.ToHBigKeyChest:  entities.ToHBigKeyChestRoom,
			entities.ToHCompassChest: entities.ToHUpper,
			entities.ToHBigChest:     entities.ToHBigChestRoom,
			entities.ToHBoss:         entities.ToHBossRoom,
		},
	}
}
