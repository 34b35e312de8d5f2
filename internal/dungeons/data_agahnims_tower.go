package dungeons

import (
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

func agahnimsTower() *Dungeon {
	dark := requirements.DarkRoom(entities.SequenceBreakDarkRoomAT)

	return &Dungeon{
		ID:            entities.DungeonAgahnimsTower,
		Name:          "Agahnim's Tower",
		SmallKey:      entities.SmallKeyItem(entities.DungeonAgahnimsTower),
		SmallKeyCount: 2,
		Items: []entities.DungeonItemID{
			entities.ATRoom03,
			entities.ATDarkMazeChest,
		},
		SmallKeyDrops: []entities.DungeonItemID{
			entities.ATDarkArcherDrop,
			entities.ATCirclePotsDrop,
		},
		SmallKeyDoors: []entities.KeyDoorID{
			entities.ATFirstKeyDoor,
			entities.ATSecondKeyDoor,
			entities.ATThirdKeyDoor,
			entities.ATFourthKeyDoor,
		},
		KeyLayouts: []KeyLayout{
			SmallKeyLayout{
				Count:       2,
				Locations:   []entities.DungeonItemID{entities.ATRoom03, entities.ATDarkMazeChest},
				Requirement: requirements.KeyDropShuffle(false),
			},
			SmallKeyLayout{
				Count: 4,
				Locations: []entities.DungeonItemID{
					entities.ATRoom03,
					entities.ATDarkMazeChest,
					entities.ATDarkArcherDrop,
					entities.ATCirclePotsDrop,
				},
				Requirement: requirements.KeyDropShuffle(true),
			},
		},
		Nodes: []entities.DungeonNodeID{
			entities.ATFront,
			entities.ATPastFirstKeyDoor,
			entities.ATDarkMaze,
			entities.ATPastSecondKeyDoor,
			entities.ATPastThirdKeyDoor,
			entities.ATPastFourthKeyDoor,
			entities.ATBossRoom,
		},
		Entries: []entities.OverworldNodeID{entities.OverworldATEntry},
		Connections: []NodeConnection{
			Entry(entities.OverworldATEntry, entities.ATFront),
			Gated(entities.ATFront, entities.ATPastFirstKeyDoor, entities.ATFirstKeyDoor, nil),
			Plain(entities.ATPastFirstKeyDoor, entities.ATDarkMaze, dark),
			Gated(entities.ATDarkMaze, entities.ATPastSecondKeyDoor, entities.ATSecondKeyDoor, nil),
			Gated(entities.ATPastSecondKeyDoor, entities.ATPastThirdKeyDoor, entities.ATThirdKeyDoor, dark),
			Gated(entities.ATPastThirdKeyDoor, entities.ATPastFourthKeyDoor, entities.ATFourthKeyDoor, nil),
			Plain(entities.ATPastFourthKeyDoor, entities.ATBossRoom, requirements.Boss(entities.BossAgahnim)),
		},
		Locations: map[entities.DungeonItemID]entities.DungeonNodeID{
			entities.ATRoom03:         entities.ATFront,
			entities.ATDarkMazeChest:  entities.ATDarkMaze,
			entities.ATDarkArcherDrop: entities.ATPastSecondKeyDoor,
			entities.ATCirclePotsDrop: entities.ATPastThirdKeyDoor,
		},
	}
}
