package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotIndexed        = errors.New("no document has been indexed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

// EmbeddingError reports a failed call to the embedding provider.
type EmbeddingError struct {
	Op  string
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding %s: %v", e.Op, e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

// WrapEmbedding wraps err as an *EmbeddingError unless it already is one.
func WrapEmbedding(op string, err error) error {
	if err == nil {
		return nil
	}
	var ee *EmbeddingError
	if errors.As(err, &ee) {
		return err
	}
	return &EmbeddingError{Op: op, Err: err}
}
