package vectorstore

// Hit is a stored vector's insertion position and its distance to the query.
type Hit struct {
	Position int
	Distance float32
}

// Index stores vectors in insertion order and answers nearest-neighbor queries.
// Positions are the only addressing scheme; there is no delete or update, so
// clearing an index means building a new one.
type Index interface {
	Add(vectors [][]float32) error
	// Search returns up to k hits ordered by ascending distance, ties by lower position.
	Search(query []float32, k int) ([]Hit, error)
	Len() int
	Dimension() int
}

// Factory builds an empty index for vectors of the given dimension.
type Factory func(dimension int) (Index, error)
