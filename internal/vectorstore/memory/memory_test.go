package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/domain"
	"docqa/internal/vectorstore"
)

func newTestIndex(t *testing.T, vectors ...[]float32) *Index {
	t.Helper()
	idx, err := NewIndex(2)
	require.NoError(t, err)
	require.NoError(t, idx.Add(vectors))
	return idx
}

func TestNewIndex_InvalidDimension(t *testing.T) {
	_, err := NewIndex(0)
	assert.Error(t, err)
}

func TestIndex_SearchOrdersByDistance(t *testing.T) {
	idx := newTestIndex(t,
		[]float32{10, 10},
		[]float32{1, 0},
		[]float32{3, 4},
	)

	hits, err := idx.Search([]float32{0, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []vectorstore.Hit{
		{Position: 1, Distance: 1},
		{Position: 2, Distance: 25},
		{Position: 0, Distance: 200},
	}, hits)
}

func TestIndex_SearchTopK(t *testing.T) {
	idx := newTestIndex(t,
		[]float32{5, 0},
		[]float32{1, 0},
		[]float32{2, 0},
		[]float32{9, 0},
	)

	hits, err := idx.Search([]float32{0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, 1, hits[0].Position)
	assert.Equal(t, 2, hits[1].Position)
}

func TestIndex_SearchFewerThanK(t *testing.T) {
	idx := newTestIndex(t, []float32{1, 1}, []float32{2, 2})

	hits, err := idx.Search([]float32{0, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestIndex_SearchTiesByPosition(t *testing.T) {
	idx := newTestIndex(t,
		[]float32{0, 1},
		[]float32{1, 0},
		[]float32{0, -1},
		[]float32{-1, 0},
	)

	for i := 0; i < 5; i++ {
		hits, err := idx.Search([]float32{0, 0}, 4)
		require.NoError(t, err)
		positions := []int{hits[0].Position, hits[1].Position, hits[2].Position, hits[3].Position}
		assert.Equal(t, []int{0, 1, 2, 3}, positions)
	}
}

func TestIndex_SearchNonPositiveK(t *testing.T) {
	idx := newTestIndex(t, []float32{1, 1})

	hits, err := idx.Search([]float32{0, 0}, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndex_SearchEmpty(t *testing.T) {
	idx := newTestIndex(t)

	hits, err := idx.Search([]float32{0, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndex_AddAppendsInOrder(t *testing.T) {
	idx := newTestIndex(t, []float32{0, 0})
	require.NoError(t, idx.Add([][]float32{{5, 5}, {1, 1}}))
	assert.Equal(t, 3, idx.Len())

	hits, err := idx.Search([]float32{5, 5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, hits[0].Position)
}

func TestIndex_DimensionMismatch(t *testing.T) {
	idx := newTestIndex(t, []float32{1, 1})

	err := idx.Add([][]float32{{1, 2}, {1, 2, 3}})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	assert.Equal(t, 1, idx.Len(), "a rejected batch must not be partially stored")

	_, err = idx.Search([]float32{1}, 1)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestIndex_ConcurrentAccess(t *testing.T) {
	idx := newTestIndex(t, []float32{0, 0})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, idx.Add([][]float32{{float32(i), 1}}))
		}(i)
		go func() {
			defer wg.Done()
			_, err := idx.Search([]float32{1, 1}, 3)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 9, idx.Len())
}

func TestFactory(t *testing.T) {
	var f vectorstore.Factory = Factory
	idx, err := f(3)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Dimension())
	assert.Equal(t, 0, idx.Len())
}
