package dungeons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-tracker/internal/entities"
	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

func TestNewDungeonState(t *testing.T) {
	t.Run("negative keys", func(t *testing.T) {
		_, err := NewDungeonState(nil, -1, false, false)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("empty door id", func(t *testing.T) {
		_, err := NewDungeonState([]entities.KeyDoorID{""}, 0, false, false)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("duplicate doors collapse", func(t *testing.T) {
		state, err := NewDungeonState([]entities.KeyDoorID{
			entities.DPRightKeyDoor,
			entities.DPRightKeyDoor,
		}, 1, true, true)
		require.NoError(t, err)
		assert.Equal(t, 1, state.UnlockedCount())
		assert.Equal(t, 1, state.KeysCollected())
		assert.True(t, state.BigKeyCollected())
		assert.True(t, state.SequenceBreak())
	})
}

func TestDungeonState_WithLeavesOriginalUntouched(t *testing.T) {
	base := EmptyState(false)

	withDoor := base.WithDoor(entities.DPRightKeyDoor)
	withKeys := base.WithKeys(2)
	withBigKey := base.WithBigKey(true)

	assert.False(t, base.IsUnlocked(entities.DPRightKeyDoor))
	assert.Equal(t, 0, base.KeysCollected())
	assert.False(t, base.BigKeyCollected())

	assert.True(t, withDoor.IsUnlocked(entities.DPRightKeyDoor))
	assert.Equal(t, 2, withKeys.KeysCollected())
	assert.True(t, withBigKey.BigKeyCollected())

	again := withDoor.WithDoor(entities.DPBackFirstKeyDoor)
	assert.Equal(t, 1, withDoor.UnlockedCount())
	assert.Equal(t, 2, again.UnlockedCount())
}

func TestDungeonState_Key(t *testing.T) {
	a := EmptyState(true).WithDoor(entities.DPBackFirstKeyDoor).WithDoor(entities.DPRightKeyDoor).WithKeys(1)
	b := EmptyState(true).WithDoor(entities.DPRightKeyDoor).WithDoor(entities.DPBackFirstKeyDoor).WithKeys(1)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "DPBackFirstKeyDoor,DPRightKeyDoor|k=1|bk=false|sb=true", a.Key())
	assert.Equal(t, []entities.KeyDoorID{entities.DPBackFirstKeyDoor, entities.DPRightKeyDoor}, a.UnlockedDoors())

	assert.False(t, a.Equal(a.WithBigKey(true)))
	assert.False(t, a.Equal(a.WithKeys(2)))
	assert.False(t, EmptyState(true).Equal(EmptyState(false)))
}
