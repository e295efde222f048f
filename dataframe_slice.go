package frame

import (
	errors "github.com/go-frame/frame/errors"
)

// Slice is a non-owning, ordered, possibly-discontiguous row-index
// view over a DataFrame. It never owns column storage. A Slice
// captures its base frame's generation counter; once the base is
// structurally mutated (row count change or sort), every access fails
// fast with a StaleViewError.
type Slice struct {
	df      *DataFrame
	indices []int
	gen     uint64
}

// Base returns the DataFrame this Slice views
func (s *Slice) Base() *DataFrame {
	return s.df
}

// Len returns the number of rows selected by this Slice
func (s *Slice) Len() int {
	return len(s.indices)
}

// Indices returns a copy of the selected row positions, in selection
// order
func (s *Slice) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// Row returns a view over the i-th selected row
func (s *Slice) Row(i int) (Row, error) {
	if err := s.valid(); err != nil {
		return Row{}, err
	}
	if i < 0 || i >= len(s.indices) {
		return Row{}, errors.IndexOutOfBoundsError{Index: i, Length: len(s.indices)}
	}
	return Row{df: s.df, idx: s.indices[i]}, nil
}

// Filter narrows this Slice to the selected rows satisfying pred,
// preserving selection order
func (s *Slice) Filter(pred func(row Row) (bool, error)) (*Slice, error) {
	if err := s.valid(); err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(s.indices))
	for _, idx := range s.indices {
		keep, err := pred(Row{df: s.df, idx: idx})
		if err != nil {
			return nil, err
		}
		if keep {
			indices = append(indices, idx)
		}
	}
	return &Slice{df: s.df, indices: indices, gen: s.gen}, nil
}

// Materialize copies the selected rows into a new, independent
// DataFrame with the same column schema as the base
func (s *Slice) Materialize() (*DataFrame, error) {
	if err := s.valid(); err != nil {
		return nil, err
	}
	out := CreateDataFrame()
	for _, col := range s.df.cols {
		out.insertColumnUnchecked(&ErasedColumn{col: col.col.gatherIndices(col.Name(), s.indices)}, len(out.cols))
	}
	return out, nil
}

func (s *Slice) valid() error {
	if s.gen != s.df.gen {
		return errors.StaleViewError{FrameID: s.df.id}
	}
	return nil
}
