package sections_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-tracker/internal/dungeons"
	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/sections"
)

type BoardTestSuite struct {
	suite.Suite
	board *sections.Board
	ctx   context.Context
}

func (s *BoardTestSuite) SetupTest() {
	s.board = sections.NewBoard()
	s.ctx = context.Background()
}

func (s *BoardTestSuite) update(id entities.DungeonID, evaluationID string) *sections.Update {
	return &sections.Update{
		DungeonID:    id,
		EvaluationID: evaluationID,
		Result: dungeons.DungeonResult{
			Bosses:        []entities.AccessibilityLevel{entities.AccessibilityNormal},
			Accessibility: entities.AccessibilityPartial,
			Accessible:    2,
		},
		Doors: map[entities.KeyDoorID]bool{entities.EPEyegoreKeyDoor: true},
	}
}

func (s *BoardTestSuite) TestPublishValidation() {
	s.Run("nil update", func() {
		err := s.board.Publish(s.ctx, nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing dungeon", func() {
		err := s.board.Publish(s.ctx, &sections.Update{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *BoardTestSuite) TestPublishReplacesSection() {
	s.Require().NoError(s.board.Publish(s.ctx, s.update(entities.DungeonEasternPalace, "eval_1")))
	s.Require().NoError(s.board.Publish(s.ctx, s.update(entities.DungeonEasternPalace, "eval_2")))

	got, err := s.board.Get(entities.DungeonEasternPalace)
	s.Require().NoError(err)
	s.Equal("eval_2", got.EvaluationID)
	s.Len(s.board.All(), 1)
}

func (s *BoardTestSuite) TestSectionsAreCopies() {
	published := s.update(entities.DungeonEasternPalace, "eval_1")
	s.Require().NoError(s.board.Publish(s.ctx, published))

	published.Doors[entities.EPEyegoreKeyDoor] = false
	published.Result.Bosses[0] = entities.AccessibilityNone

	got, err := s.board.Get(entities.DungeonEasternPalace)
	s.Require().NoError(err)
	s.True(got.Doors[entities.EPEyegoreKeyDoor])
	s.Equal(entities.AccessibilityNormal, got.Result.Bosses[0])

	got.Doors[entities.EPEyegoreKeyDoor] = false
	again, err := s.board.Get(entities.DungeonEasternPalace)
	s.Require().NoError(err)
	s.True(again.Doors[entities.EPEyegoreKeyDoor])
}

func (s *BoardTestSuite) TestGetMissing() {
	_, err := s.board.Get(entities.DungeonTurtleRock)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(string(entities.DungeonTurtleRock), errors.GetMeta(err)["dungeon_id"])
}

func (s *BoardTestSuite) TestAllInTrackerOrder() {
	for _, id := range []entities.DungeonID{
		entities.DungeonGanonsTower,
		entities.DungeonHyruleCastle,
		entities.DungeonDesertPalace,
	} {
		s.Require().NoError(s.board.Publish(s.ctx, s.update(id, "eval_1")))
	}

	var order []entities.DungeonID
	for _, update := range s.board.All() {
		order = append(order, update.DungeonID)
	}
	s.Equal([]entities.DungeonID{
		entities.DungeonHyruleCastle,
		entities.DungeonDesertPalace,
		entities.DungeonGanonsTower,
	}, order)
}

func (s *BoardTestSuite) TestClear() {
	s.Require().NoError(s.board.Publish(s.ctx, s.update(entities.DungeonEasternPalace, "eval_1")))
	s.board.Clear()
	s.Empty(s.board.All())
}

func TestBoardTestSuite(t *testing.T) {
	suite.Run(t, new(BoardTestSuite))
}
