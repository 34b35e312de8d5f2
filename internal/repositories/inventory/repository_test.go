package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-tracker/internal/repositories/inventory"
	"github.com/KirkDiggler/dungeon-tracker/internal/requirements"
	"github.com/KirkDiggler/dungeon-tracker/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour against both implementations
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(c clock.Clock) (inventory.Repository, func())
	repo    inventory.Repository
	cleanup func()
	now     time.Time
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.repo, s.cleanup = s.newRepo(clock.Fixed{At: s.now})
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, inventory.GetInput{Profile: testutils.Profile})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(testutils.Profile, errors.GetMeta(err)["profile"])
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	mode := testutils.WithTricks(entities.Mode{KeyDropShuffle: true}, entities.SequenceBreakDarkRoomEP)
	saved, err := s.repo.Save(s.ctx, inventory.SaveInput{
		Profile: testutils.Profile,
		Items: map[entities.ItemType]int{
			entities.ItemLamp:   1,
			entities.ItemSword:  2,
			entities.ItemHammer: 0,
		},
		Mode: mode,
	})
	s.Require().NoError(err)
	s.Equal(s.now, saved.Snapshot.UpdatedAt)
	s.NotContains(saved.Snapshot.Items, entities.ItemHammer)

	got, err := s.repo.Get(s.ctx, inventory.GetInput{Profile: testutils.Profile})
	s.Require().NoError(err)
	s.Equal(testutils.Profile, got.Snapshot.Profile)
	s.Equal(map[entities.ItemType]int{entities.ItemLamp: 1, entities.ItemSword: 2}, got.Snapshot.Items)
	s.Equal(mode, got.Snapshot.Mode)
	s.True(s.now.Equal(got.Snapshot.UpdatedAt))
}

func (s *RepositoryTestSuite) TestSaveValidation() {
	testCases := []struct {
		name  string
		input inventory.SaveInput
	}{
		{name: "missing profile", input: inventory.SaveInput{}},
		{
			name: "unknown item",
			input: inventory.SaveInput{
				Profile: testutils.Profile,
				Items:   map[entities.ItemType]int{"Ocarina": 1},
			},
		},
		{
			name: "negative count",
			input: inventory.SaveInput{
				Profile: testutils.Profile,
				Items:   map[entities.ItemType]int{entities.ItemBow: -1},
			},
		},
		{
			name: "unknown trick",
			input: inventory.SaveInput{
				Profile: testutils.Profile,
				Mode:    entities.Mode{SequenceBreaks: []entities.SequenceBreakID{"Clip"}},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Save(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestSetItemCreatesSnapshot() {
	out, err := s.repo.SetItem(s.ctx, inventory.SetItemInput{
		Profile: testutils.Profile,
		Item:    entities.SmallKeyItem(entities.DungeonDesertPalace),
		Count:   1,
	})
	s.Require().NoError(err)
	s.Equal(1, out.Snapshot.Items[entities.SmallKeyItem(entities.DungeonDesertPalace)])

	_, err = s.repo.SetItem(s.ctx, inventory.SetItemInput{Profile: testutils.Profile, Item: entities.ItemLamp, Count: 1})
	s.Require().NoError(err)

	removed, err := s.repo.SetItem(s.ctx, inventory.SetItemInput{
		Profile: testutils.Profile,
		Item:    entities.SmallKeyItem(entities.DungeonDesertPalace),
		Count:   0,
	})
	s.Require().NoError(err)
	s.Equal(map[entities.ItemType]int{entities.ItemLamp: 1}, removed.Snapshot.Items)

	got, err := s.repo.Get(s.ctx, inventory.GetInput{Profile: testutils.Profile})
	s.Require().NoError(err)
	s.Equal(removed.Snapshot.Items, got.Snapshot.Items)
}

func (s *RepositoryTestSuite) TestSetItemValidation() {
	testCases := []struct {
		name  string
		input inventory.SetItemInput
	}{
		{name: "missing profile", input: inventory.SetItemInput{Item: entities.ItemLamp, Count: 1}},
		{name: "unknown item", input: inventory.SetItemInput{Profile: testutils.Profile, Item: "Ocarina", Count: 1}},
		{name: "negative count", input: inventory.SetItemInput{Profile: testutils.Profile, Item: entities.ItemLamp, Count: -1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.SetItem(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestSetModeKeepsItems() {
	_, err := s.repo.SetItem(s.ctx, inventory.SetItemInput{Profile: testutils.Profile, Item: entities.ItemBow, Count: 1})
	s.Require().NoError(err)

	out, err := s.repo.SetMode(s.ctx, inventory.SetModeInput{Profile: testutils.Profile, Mode: testutils.Keysanity()})
	s.Require().NoError(err)
	s.Equal(testutils.Keysanity(), out.Snapshot.Mode)
	s.Equal(1, out.Snapshot.Items[entities.ItemBow])

	_, err = s.repo.SetMode(s.ctx, inventory.SetModeInput{
		Profile: testutils.Profile,
		Mode:    entities.Mode{SequenceBreaks: []entities.SequenceBreakID{"Clip"}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	gone, err := s.repo.Delete(s.ctx, inventory.DeleteInput{Profile: testutils.Profile})
	s.Require().NoError(err)
	s.False(gone.Deleted)

	_, err = s.repo.SetItem(s.ctx, inventory.SetItemInput{Profile: testutils.Profile, Item: entities.ItemBow, Count: 1})
	s.Require().NoError(err)

	gone, err = s.repo.Delete(s.ctx, inventory.DeleteInput{Profile: testutils.Profile})
	s.Require().NoError(err)
	s.True(gone.Deleted)

	_, err = s.repo.Get(s.ctx, inventory.GetInput{Profile: testutils.Profile})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestSnapshotInventory() {
	out, err := s.repo.Save(s.ctx, inventory.SaveInput{
		Profile: testutils.Profile,
		Items:   map[entities.ItemType]int{entities.ItemLamp: 1},
		Mode:    testutils.WithTricks(entities.Mode{}, entities.SequenceBreakDarkRoomHC),
	})
	s.Require().NoError(err)

	var provider requirements.ItemProvider = out.Snapshot.Inventory()
	s.Equal(1, provider.ItemCount(entities.ItemLamp))
	s.Equal(0, provider.ItemCount(entities.ItemBow))
	s.True(provider.Mode().SequenceBreakEnabled(entities.SequenceBreakDarkRoomHC))

	out.Snapshot.Items[entities.ItemLamp] = 0
	s.Equal(1, provider.ItemCount(entities.ItemLamp))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(c clock.Clock) (inventory.Repository, func()) {
			return inventory.NewInMemory(c), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(c clock.Clock) (inventory.Repository, func()) {
			repo, err := inventory.NewRedisRepository(&inventory.Config{Client: client, Clock: c})
			if err != nil {
				t.Fatalf("failed to create repository: %v", err)
			}
			return repo, func() {
				if err := testutils.FlushTestRedis(context.Background(), client); err != nil {
					t.Errorf("failed to flush redis: %v", err)
				}
			}
		},
	})
}
