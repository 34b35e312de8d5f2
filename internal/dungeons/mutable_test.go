package dungeons

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	dungeonsmock "github.com/KirkDiggler/dungeon-tracker/internal/dungeons/mock"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/overworld"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
)

type MutableDungeonTestSuite struct {
	suite.Suite
	factory *Factory
}

func (s *MutableDungeonTestSuite) SetupTest() {
	f, err := NewFactory()
	s.Require().NoError(err)
	s.factory = f
}

func (s *MutableDungeonTestSuite) build(id entities.DungeonID, items requirements.ItemProvider, ow OverworldAccessibility) *MutableDungeon {
	md, err := s.factory.NewMutableDungeon(id, items, ow)
	s.Require().NoError(err)
	return md
}

func (s *MutableDungeonTestSuite) TestDesertPalaceRightKeyDoor() {
	md := s.build(entities.DungeonDesertPalace, inventoryWith(entities.Mode{}), overworld.Open())

	s.Run("locked", func() {
		s.Require().NoError(md.ApplyState(EmptyState(false)))
		s.Equal(entities.AccessibilityNormal, md.NodeAccessibility(entities.DPFront))
		s.Equal(entities.AccessibilityNone, md.NodeAccessibility(entities.DPPastRightKeyDoor))
		s.Contains(md.GetAccessibleKeyDoors(false), entities.DPRightKeyDoor)
	})

	s.Run("unlocked", func() {
		state := mustState(s.T(), []entities.KeyDoorID{entities.DPRightKeyDoor}, 1, false, false)
		s.Require().NoError(md.ApplyState(state))
		s.Equal(entities.AccessibilityNormal, md.NodeAccessibility(entities.DPPastRightKeyDoor))
		s.Equal(entities.AccessibilityNormal, md.ItemAccessibility(entities.DPCompassChest))
		s.NotContains(md.GetAccessibleKeyDoors(false), entities.DPRightKeyDoor)
	})

	s.Run("state fully determines the doors", func() {
		s.Require().NoError(md.ApplyState(EmptyState(false)))
		s.False(md.DoorStates()[entities.DPRightKeyDoor])
		s.Equal(entities.AccessibilityNone, md.NodeAccessibility(entities.DPPastRightKeyDoor))
	})
}

func (s *MutableDungeonTestSuite) TestDesertPalaceTorch() {
	s.Run("without boots the torch item is only visible", func() {
		md := s.build(entities.DungeonDesertPalace, inventoryWith(entities.Mode{}), overworld.Open())
		s.Require().NoError(md.ApplyState(EmptyState(false)))
		s.Equal(entities.AccessibilityInspect, md.ItemAccessibility(entities.DPTorchItem))
	})

	s.Run("boots knock it down", func() {
		md := s.build(entities.DungeonDesertPalace, inventoryWith(entities.Mode{}, entities.ItemBoots), overworld.Open())
		s.Require().NoError(md.ApplyState(EmptyState(false)))
		s.Equal(entities.AccessibilityNormal, md.ItemAccessibility(entities.DPTorchItem))
	})
}

func (s *MutableDungeonTestSuite) TestHyruleCastleDarkRoom() {
	ow := overworld.NewStatic(map[entities.OverworldNodeID]entities.AccessibilityLevel{
		entities.OverworldHCFrontEntry: entities.AccessibilityNormal,
	}, entities.AccessibilityNone)

	testCases := []struct {
		name     string
		items    *entities.Inventory
		expected entities.AccessibilityLevel
	}{
		{
			name:     "no light",
			items:    inventoryWith(entities.Mode{}),
			expected: entities.AccessibilityNone,
		},
		{
			name: "dark room trick",
			items: inventoryWith(entities.Mode{
				SequenceBreaks: []entities.SequenceBreakID{entities.SequenceBreakDarkRoomHC},
			}),
			expected: entities.AccessibilitySequenceBreak,
		},
		{
			name:     "lamp",
			items:    inventoryWith(entities.Mode{}, entities.ItemLamp),
			expected: entities.AccessibilityNormal,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			md := s.build(entities.DungeonHyruleCastle, tc.items, ow)
			s.Require().NoError(md.ApplyState(EmptyState(false)))
			s.Equal(tc.expected, md.NodeAccessibility(entities.HCDarkRoomFront))
			s.Equal(entities.AccessibilityNone, md.NodeAccessibility(entities.HCSanctuary))
		})
	}
}

func (s *MutableDungeonTestSuite) TestBigKeyDropUnlocksBigKeyDoors() {
	doors := []entities.KeyDoorID{entities.HCEscapeFirstKeyDoor, entities.HCEscapeSecondKeyDoor}

	s.Run("drop reachable", func() {
		md := s.build(entities.DungeonHyruleCastle, inventoryWith(entities.Mode{}), overworld.Open())
		s.Require().NoError(md.ApplyState(mustState(s.T(), doors, 0, false, false)))
		s.True(md.DoorStates()[entities.HCZeldasCellDoor])
		s.Equal(entities.AccessibilityNormal, md.ItemAccessibility(entities.HCZeldasChest))
	})

	s.Run("drop shuffled into the pool", func() {
		md := s.build(entities.DungeonHyruleCastle, inventoryWith(entities.Mode{KeyDropShuffle: true}), overworld.Open())
		s.Require().NoError(md.ApplyState(mustState(s.T(), doors, 0, false, false)))
		s.False(md.DoorStates()[entities.HCZeldasCellDoor])
		s.Equal(entities.AccessibilityNone, md.ItemAccessibility(entities.HCZeldasChest))
	})

	s.Run("drop out of reach", func() {
		md := s.build(entities.DungeonHyruleCastle, inventoryWith(entities.Mode{}), overworld.Open())
		s.Require().NoError(md.ApplyState(mustState(s.T(), doors[:1], 0, false, false)))
		s.False(md.DoorStates()[entities.HCZeldasCellDoor])
	})
}

func (s *MutableDungeonTestSuite) TestApplyStateRejectsForeignDoor() {
	md := s.build(entities.DungeonDesertPalace, inventoryWith(entities.Mode{}), overworld.Open())
	s.Require().NoError(md.ApplyState(mustState(s.T(), []entities.KeyDoorID{entities.DPRightKeyDoor}, 1, false, false)))
	before := md.DoorStates()
	levels := nodeLevels(md)

	state := mustState(s.T(), []entities.KeyDoorID{entities.DPBackFirstKeyDoor, entities.EPEyegoreKeyDoor}, 2, true, false)
	err := md.ApplyState(state)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(string(entities.EPEyegoreKeyDoor), errors.GetMeta(err)["key_door_id"])

	s.Equal(before, md.DoorStates())
	s.Equal(levels, nodeLevels(md))
}

func (s *MutableDungeonTestSuite) TestApplyStateRequiresItems() {
	md := s.build(entities.DungeonEasternPalace, nil, nil)

	err := md.ApplyState(EmptyState(false))
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	md.Bind(inventoryWith(entities.Mode{}), overworld.Open())
	s.NoError(md.ApplyState(EmptyState(false)))
	s.Equal(entities.AccessibilityNormal, md.NodeAccessibility(entities.EPFront))
}

func (s *MutableDungeonTestSuite) TestUnboundOverworldClosesEntrances() {
	md := s.build(entities.DungeonEasternPalace, inventoryWith(entities.Mode{}), nil)
	s.Require().NoError(md.ApplyState(EmptyState(false)))
	for id, level := range nodeLevels(md) {
		s.Equal(entities.AccessibilityNone, level, id)
	}
}

func (s *MutableDungeonTestSuite) TestPartialEntranceCountsAsNormal() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	ow := dungeonsmock.NewMockOverworldAccessibility(ctrl)
	ow.EXPECT().Accessibility(entities.OverworldEPEntry).
		Return(entities.AccessibilityPartial).
		AnyTimes()

	md := s.build(entities.DungeonEasternPalace, inventoryWith(entities.Mode{}), ow)
	s.Require().NoError(md.ApplyState(EmptyState(false)))

	for _, node := range md.Dungeon().Nodes {
		s.NotEqual(entities.AccessibilityPartial, md.NodeAccessibility(node), "node %s", node)
	}
	s.Equal(entities.AccessibilityNormal, md.NodeAccessibility(entities.EPFront))
}

func (s *MutableDungeonTestSuite) TestEntranceFollowsOverworld() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	ow := dungeonsmock.NewMockOverworldAccessibility(ctrl)
	ow.EXPECT().Accessibility(entities.OverworldEPEntry).
		Return(entities.AccessibilitySequenceBreak).
		AnyTimes()

	md := s.build(entities.DungeonEasternPalace, inventoryWith(entities.Mode{}, entities.ItemLamp), ow)
	s.Require().NoError(md.ApplyState(EmptyState(true)))

	s.Equal(entities.AccessibilitySequenceBreak, md.NodeAccessibility(entities.EPFront))
	s.Equal(entities.AccessibilitySequenceBreak, md.NodeAccessibility(entities.EPDarkSquare))
	s.Equal(entities.AccessibilityNone, md.NodeAccessibility(entities.EPBigKeyRoom))
}

func (s *MutableDungeonTestSuite) TestApplyStateIsIdempotent() {
	items := inventoryWith(entities.Mode{}, everyItem...)
	for _, d := range s.factory.All() {
		s.Run(string(d.ID), func() {
			md := s.build(d.ID, items, overworld.Open())
			state := EmptyState(false).WithKeys(1)
			if len(d.SmallKeyDoors) > 0 {
				state = state.WithDoor(d.SmallKeyDoors[0])
			}

			s.Require().NoError(md.ApplyState(state))
			first, firstDoors := nodeLevels(md), md.DoorStates()
			s.Require().NoError(md.ApplyState(state))
			s.Equal(first, nodeLevels(md))
			s.Equal(firstDoors, md.DoorStates())
		})
	}
}

func (s *MutableDungeonTestSuite) TestRecomputeIgnoresEvaluationOrder() {
	items := inventoryWith(entities.Mode{}, entities.ItemLamp, entities.ItemBow, entities.ItemHammer, entities.ItemHookshot)
	rng := rand.New(rand.NewSource(7))

	for _, d := range s.factory.All() {
		s.Run(string(d.ID), func() {
			md := s.build(d.ID, items, overworld.Open())
			state := EmptyState(false)
			if len(d.SmallKeyDoors) > 1 {
				state = state.WithDoor(d.SmallKeyDoors[1])
			}
			s.Require().NoError(md.ApplyState(state))
			expected := nodeLevels(md)

			for round := 0; round < 5; round++ {
				rng.Shuffle(len(md.nodeOrder), func(i, j int) {
					md.nodeOrder[i], md.nodeOrder[j] = md.nodeOrder[j], md.nodeOrder[i]
				})
				for _, node := range md.nodes {
					conns := node.Connections
					rng.Shuffle(len(conns), func(i, j int) { conns[i], conns[j] = conns[j], conns[i] })
				}

				s.Require().NoError(md.ApplyState(state))
				s.Empty(cmp.Diff(expected, nodeLevels(md)))
			}
		})
	}
}

func (s *MutableDungeonTestSuite) TestMoreItemsNeverLowerAccessibility() {
	modes := map[string]entities.Mode{
		"vanilla":   {},
		"key drops": {KeyDropShuffle: true},
		"dark rooms": {SequenceBreaks: []entities.SequenceBreakID{
			entities.SequenceBreakDarkRoomHC,
			entities.SequenceBreakDarkRoomPoD,
		}},
	}

	for _, d := range s.factory.All() {
		for name, mode := range modes {
			s.Run(string(d.ID)+" "+name, func() {
				for _, state := range []DungeonState{EmptyState(false), openState(d, mode)} {
					inv := inventoryWith(mode)
					md := s.build(d.ID, inv, overworld.Open())
					s.Require().NoError(md.ApplyState(state))
					previous := nodeLevels(md)

					for _, item := range everyItem {
						inv = inv.WithItem(item, 1)
						md.Bind(inv, overworld.Open())
						s.Require().NoError(md.ApplyState(state))
						current := nodeLevels(md)
						for id, level := range previous {
							s.GreaterOrEqual(current[id], level, "%s dropped after adding %s", id, item)
						}
						previous = current
					}
				}
			})
		}
	}
}

func (s *MutableDungeonTestSuite) TestMoreDoorsNeverLowerAccessibility() {
	items := inventoryWith(entities.Mode{}, everyItem...)

	for _, d := range s.factory.All() {
		s.Run(string(d.ID), func() {
			md := s.build(d.ID, items, overworld.Open())
			state := EmptyState(false)
			s.Require().NoError(md.ApplyState(state))
			previous := nodeLevels(md)

			for _, door := range d.SmallKeyDoors {
				state = state.WithDoor(door)
				s.Require().NoError(md.ApplyState(state))
				current := nodeLevels(md)
				for id, level := range previous {
					s.GreaterOrEqual(current[id], level, "%s dropped after opening %s", id, door)
				}
				previous = current
			}
		})
	}
}

func (s *MutableDungeonTestSuite) TestRecomputeFailsWithoutFixedPoint() {
	calls := 0
	flicker := requirements.Func(func(requirements.ItemProvider) entities.AccessibilityLevel {
		calls++
		if calls%2 == 1 {
			return entities.AccessibilityNormal
		}
		return entities.AccessibilityNone
	})

	d := &Dungeon{
		ID:          "Flicker",
		Nodes:       []entities.DungeonNodeID{"Lobby", "Hall"},
		Entries:     []entities.OverworldNodeID{"FlickerEntry"},
		Connections: []NodeConnection{Entry("FlickerEntry", "Lobby"), Plain("Lobby", "Hall", flicker)},
		KeyLayouts:  []KeyLayout{EndKeyLayout{}},
	}
	s.Require().NoError(d.Validate())

	md, err := NewMutableDungeon(d, inventoryWith(entities.Mode{}), overworld.Open())
	s.Require().NoError(err)

	err = md.ApplyState(EmptyState(false))
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Equal("Flicker", errors.GetMeta(err)["dungeon_id"])
}

func (s *MutableDungeonTestSuite) TestAvailableKeys() {
	s.Run("reachable drops add keys", func() {
		md := s.build(entities.DungeonDesertPalace, inventoryWith(entities.Mode{}), overworld.Open())
		state := EmptyState(false).WithKeys(1)
		s.Require().NoError(md.ApplyState(state))
		// beamos hall pot and the first tiles pot
		s.Equal(3, md.AvailableKeys(state))
	})

	s.Run("shuffled drops are held keys", func() {
		md := s.build(entities.DungeonDesertPalace, inventoryWith(entities.Mode{KeyDropShuffle: true}), overworld.Open())
		state := EmptyState(false).WithKeys(1)
		s.Require().NoError(md.ApplyState(state))
		s.Equal(1, md.AvailableKeys(state))
	})
}

func TestMutableDungeonTestSuite(t *testing.T) {
	suite.Run(t, new(MutableDungeonTestSuite))
}
