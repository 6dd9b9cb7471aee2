package memory

import (
	"fmt"
	"sort"
	"sync"

	"docqa/internal/domain"
	"docqa/internal/vectorstore"
)

// Index is an in-memory vector index using exact brute-force squared Euclidean distance.
type Index struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float32
}

// NewIndex creates an empty index for vectors of the given dimension.
func NewIndex(dimension int) (*Index, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid dimension %d", dimension)
	}
	return &Index{dimension: dimension}, nil
}

// Factory adapts NewIndex to vectorstore.Factory.
func Factory(dimension int) (vectorstore.Index, error) {
	idx, err := NewIndex(dimension)
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Dimension returns the vector length the index accepts.
func (s *Index) Dimension() int { return s.dimension }

// Len returns the number of stored vectors.
func (s *Index) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

// Add appends vectors in order. Nothing is stored if any vector has the wrong dimension.
func (s *Index) Add(vectors [][]float32) error {
	for i, v := range vectors {
		if len(v) != s.dimension {
			return fmt.Errorf("vector %d has %d values, index expects %d: %w", i, len(v), s.dimension, domain.ErrDimensionMismatch)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Search returns up to k positions ordered by ascending squared Euclidean
// distance to query. Equal distances keep position order.
func (s *Index) Search(query []float32, k int) ([]vectorstore.Hit, error) {
	if len(query) != s.dimension {
		return nil, fmt.Errorf("query has %d values, index expects %d: %w", len(query), s.dimension, domain.ErrDimensionMismatch)
	}
	if k <= 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	hits := make([]vectorstore.Hit, len(s.vectors))
	for i := range s.vectors {
		hits[i] = vectorstore.Hit{Position: i, Distance: squaredL2(s.vectors[i], query)}
	}
	// hits start in position order, so a stable sort keeps ties by position
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
