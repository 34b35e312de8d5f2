package idgen

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequential(t *testing.T) {
	g := NewSequential("eval")
	assert.Equal(t, "eval_1", g.Generate())
	assert.Equal(t, "eval_2", g.Generate())

	bare := NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequential_Concurrent(t *testing.T) {
	g := NewSequential("eval")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(g.Generate(), true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()
	assert.Equal(t, "eval_51", g.Generate())
}

func TestUUID(t *testing.T) {
	id := NewUUID("eval").Generate()
	require.True(t, strings.HasPrefix(id, "eval_"))

	parsed, err := uuid.Parse(strings.TrimPrefix(id, "eval_"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	_, err = uuid.Parse(NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestUUID_Ordered(t *testing.T) {
	g := NewUUID("")
	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}
