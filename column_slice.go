package frame

import (
	errors "github.com/go-frame/frame/errors"
)

// ColumnSlice is a non-owning view over a contiguous index range of a
// Column. It captures the Column's generation counter at creation;
// once the Column's length changes, every access fails fast with a
// StaleViewError rather than reading relocated storage.
type ColumnSlice[T any] struct {
	col   *Column[T]
	start int
	end   int
	gen   uint64
}

// Len returns the number of values in this view
func (s *ColumnSlice[T]) Len() int {
	return s.end - s.start
}

// Get returns the value at position i of this view
func (s *ColumnSlice[T]) Get(i int) (value T, present bool, err error) {
	var zero T
	if s.gen != s.col.gen {
		return zero, false, errors.StaleViewError{FrameID: s.col.name}
	}
	if i < 0 || i >= s.Len() {
		return zero, false, errors.IndexOutOfBoundsError{Index: i, Length: s.Len()}
	}
	return s.col.Get(s.start + i)
}

// Materialize copies this view into a new, independent Column
func (s *ColumnSlice[T]) Materialize() (*Column[T], error) {
	if s.gen != s.col.gen {
		return nil, errors.StaleViewError{FrameID: s.col.name}
	}
	indices := make([]int, 0, s.Len())
	for i := s.start; i < s.end; i++ {
		indices = append(indices, i)
	}
	return s.col.gatherIndices(s.col.name, indices).(*Column[T]), nil
}

// ColumnIndexSlice is a non-owning view over an arbitrary ordered set
// of positions of a Column, produced by Filter and Distinct. The same
// staleness contract as ColumnSlice applies.
type ColumnIndexSlice[T any] struct {
	col     *Column[T]
	indices []int
	gen     uint64
}

// Len returns the number of values in this view
func (s *ColumnIndexSlice[T]) Len() int {
	return len(s.indices)
}

// Indices returns a copy of the selected positions, in selection order
func (s *ColumnIndexSlice[T]) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// Get returns the value at position i of this view
func (s *ColumnIndexSlice[T]) Get(i int) (value T, present bool, err error) {
	var zero T
	if s.gen != s.col.gen {
		return zero, false, errors.StaleViewError{FrameID: s.col.name}
	}
	if i < 0 || i >= len(s.indices) {
		return zero, false, errors.IndexOutOfBoundsError{Index: i, Length: len(s.indices)}
	}
	return s.col.Get(s.indices[i])
}

// Materialize copies this view into a new, independent Column
func (s *ColumnIndexSlice[T]) Materialize() (*Column[T], error) {
	if s.gen != s.col.gen {
		return nil, errors.StaleViewError{FrameID: s.col.name}
	}
	return s.col.gatherIndices(s.col.name, s.indices).(*Column[T]), nil
}
