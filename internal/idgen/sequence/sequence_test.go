package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Sequential(t *testing.T) {
	g := New(0)

	first, err := g.NextID(context.Background())
	require.NoError(t, err)
	second, err := g.NextID(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestGenerator_ConcurrentUnique(t *testing.T) {
	g := New(10)

	const workers = 50
	ids := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := g.NextID(context.Background())
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.Greater(t, id, int64(10))
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
