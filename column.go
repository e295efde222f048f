package frame

import (
	"fmt"

	errors "github.com/go-frame/frame/errors"
)

// Column is a named, dense, nullable sequence of values of a single
// type T. Indexing is 0-based with no gaps. A Column exclusively owns
// its backing storage; slices derived from it are non-owning views
// which become stale when the Column's length changes.
type Column[T any] struct {
	name    string
	values  []T
	missing []bool
	gen     uint64
}

// CreateColumn returns a new, empty Column with the given name
func CreateColumn[T any](name string) *Column[T] {
	return &Column[T]{name: name}
}

// CreateColumnFromValues returns a new Column populated with the given
// present values
func CreateColumnFromValues[T any](name string, values []T) *Column[T] {
	col := &Column[T]{
		name:    name,
		values:  make([]T, len(values)),
		missing: make([]bool, len(values)),
	}
	copy(col.values, values)
	return col
}

// CreateNullableColumn returns a new Column populated from pointers,
// where a nil pointer denotes a missing value
func CreateNullableColumn[T any](name string, values []*T) *Column[T] {
	col := &Column[T]{
		name:    name,
		values:  make([]T, len(values)),
		missing: make([]bool, len(values)),
	}
	for i, v := range values {
		if v == nil {
			col.missing[i] = true
		} else {
			col.values[i] = *v
		}
	}
	return col
}

// Name returns the name of this Column
func (c *Column[T]) Name() string {
	return c.name
}

// Len returns the number of values (present or missing) in this Column
func (c *Column[T]) Len() int {
	return len(c.values)
}

// Kind returns the Kind tag for this Column's element type
func (c *Column[T]) Kind() Kind {
	var zero T
	return kindOf(zero)
}

// Get returns the value at position i. present is false when the
// value is missing, in which case value is the zero value of T.
func (c *Column[T]) Get(i int) (value T, present bool, err error) {
	var zero T
	if i < 0 || i >= len(c.values) {
		return zero, false, errors.IndexOutOfBoundsError{Index: i, Length: len(c.values)}
	}
	if c.missing[i] {
		return zero, false, nil
	}
	return c.values[i], true, nil
}

// IsMissing returns true iff the value at position i is missing
func (c *Column[T]) IsMissing(i int) (bool, error) {
	if i < 0 || i >= len(c.values) {
		return false, errors.IndexOutOfBoundsError{Index: i, Length: len(c.values)}
	}
	return c.missing[i], nil
}

// Set overwrites the value at position i with a present value
func (c *Column[T]) Set(i int, value T) error {
	if i < 0 || i >= len(c.values) {
		return errors.IndexOutOfBoundsError{Index: i, Length: len(c.values)}
	}
	c.values[i] = value
	c.missing[i] = false
	return nil
}

// SetMissing marks the value at position i as missing
func (c *Column[T]) SetMissing(i int) error {
	if i < 0 || i >= len(c.values) {
		return errors.IndexOutOfBoundsError{Index: i, Length: len(c.values)}
	}
	var zero T
	c.values[i] = zero
	c.missing[i] = true
	return nil
}

// Append adds a present value to the end of this Column
func (c *Column[T]) Append(value T) {
	c.values = append(c.values, value)
	c.missing = append(c.missing, false)
	c.gen++
}

// AppendMissing adds a missing value to the end of this Column
func (c *Column[T]) AppendMissing() {
	var zero T
	c.values = append(c.values, zero)
	c.missing = append(c.missing, true)
	c.gen++
}

// Insert places a present value at position i, shifting subsequent
// values right. i may equal Len(), in which case Insert appends.
func (c *Column[T]) Insert(i int, value T) error {
	return c.insert(i, value, false)
}

// InsertMissing places a missing value at position i, shifting
// subsequent values right
func (c *Column[T]) InsertMissing(i int) error {
	var zero T
	return c.insert(i, zero, true)
}

func (c *Column[T]) insert(i int, value T, missing bool) error {
	if i < 0 || i > len(c.values) {
		return errors.IndexOutOfBoundsError{Index: i, Length: len(c.values)}
	}
	var zero T
	c.values = append(c.values, zero)
	copy(c.values[i+1:], c.values[i:])
	c.values[i] = value
	c.missing = append(c.missing, false)
	copy(c.missing[i+1:], c.missing[i:])
	c.missing[i] = missing
	c.gen++
	return nil
}

// Remove deletes the value at position i, shifting subsequent values left
func (c *Column[T]) Remove(i int) error {
	if i < 0 || i >= len(c.values) {
		return errors.IndexOutOfBoundsError{Index: i, Length: len(c.values)}
	}
	c.values = append(c.values[:i], c.values[i+1:]...)
	c.missing = append(c.missing[:i], c.missing[i+1:]...)
	c.gen++
	return nil
}

// Slice returns a non-owning view over the contiguous index range
// [start, end). The view is invalidated by any length change to this
// Column.
func (c *Column[T]) Slice(start int, end int) (*ColumnSlice[T], error) {
	if start < 0 || start > len(c.values) {
		return nil, errors.IndexOutOfBoundsError{Index: start, Length: len(c.values)}
	}
	if end < start || end > len(c.values) {
		return nil, errors.IndexOutOfBoundsError{Index: end, Length: len(c.values)}
	}
	return &ColumnSlice[T]{col: c, start: start, end: end, gen: c.gen}, nil
}

// Filter returns a non-owning discontiguous view over the positions
// whose values satisfy pred, in original index order
func (c *Column[T]) Filter(pred func(value T, present bool) bool) *ColumnIndexSlice[T] {
	indices := make([]int, 0, len(c.values))
	for i, v := range c.values {
		if pred(v, !c.missing[i]) {
			indices = append(indices, i)
		}
	}
	return &ColumnIndexSlice[T]{col: c, indices: indices, gen: c.gen}
}

// Distinct returns a view keeping exactly one representative per
// distinct value, at the smallest original index. The missing value,
// if any occurs, counts as one distinct value.
func (c *Column[T]) Distinct() *ColumnIndexSlice[T] {
	seen := make(map[string]bool, len(c.values))
	seenMissing := false
	indices := make([]int, 0, len(c.values))
	for i, v := range c.values {
		if c.missing[i] {
			if !seenMissing {
				seenMissing = true
				indices = append(indices, i)
			}
			continue
		}
		key := string(encodeValue(v))
		if !seen[key] {
			seen[key] = true
			indices = append(indices, i)
		}
	}
	return &ColumnIndexSlice[T]{col: c, indices: indices, gen: c.gen}
}

// Clone returns a deep copy of this Column
func (c *Column[T]) Clone() *Column[T] {
	clone := &Column[T]{
		name:    c.name,
		values:  make([]T, len(c.values)),
		missing: make([]bool, len(c.missing)),
	}
	copy(clone.values, c.values)
	copy(clone.missing, c.missing)
	return clone
}

// ToString returns a string representation of this Column
func (c *Column[T]) ToString() string {
	res := fmt.Sprintf("%s: [", c.name)
	for i, v := range c.values {
		if i > 0 {
			res += ", "
		}
		res += formatValue(v, c.missing[i])
	}
	return res + "]"
}

// anyColumn implementation - the type-erased face of a Column,
// consumed by ErasedColumn and DataFrame. See erased.go.

func (c *Column[T]) typeName() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (c *Column[T]) generation() uint64 {
	return c.gen
}

func (c *Column[T]) rename(name string) {
	c.name = name
}

func (c *Column[T]) valueAt(i int) (interface{}, bool) {
	if c.missing[i] {
		return nil, false
	}
	return c.values[i], true
}

func (c *Column[T]) canAssign(v interface{}) bool {
	if v == nil {
		return true
	}
	_, ok := v.(T)
	return ok
}

func (c *Column[T]) setValueAt(i int, v interface{}) error {
	if i < 0 || i >= len(c.values) {
		return errors.IndexOutOfBoundsError{Index: i, Length: len(c.values)}
	}
	if v == nil {
		return c.SetMissing(i)
	}
	tv, ok := v.(T)
	if !ok {
		return errors.TypeMismatchError{Name: c.name, Expected: c.typeName(), Actual: fmt.Sprintf("%T", v)}
	}
	return c.Set(i, tv)
}

func (c *Column[T]) appendValue(v interface{}) error {
	if v == nil {
		c.AppendMissing()
		return nil
	}
	tv, ok := v.(T)
	if !ok {
		return errors.TypeMismatchError{Name: c.name, Expected: c.typeName(), Actual: fmt.Sprintf("%T", v)}
	}
	c.Append(tv)
	return nil
}

func (c *Column[T]) insertValueAt(i int, v interface{}) error {
	if v == nil {
		return c.InsertMissing(i)
	}
	tv, ok := v.(T)
	if !ok {
		return errors.TypeMismatchError{Name: c.name, Expected: c.typeName(), Actual: fmt.Sprintf("%T", v)}
	}
	return c.insert(i, tv, false)
}

func (c *Column[T]) removeAt(i int) error {
	return c.Remove(i)
}

func (c *Column[T]) clone() anyColumn {
	return c.Clone()
}

func (c *Column[T]) emptyLike(name string) anyColumn {
	return CreateColumn[T](name)
}

// gatherIndices builds a new Column containing the values at the given
// positions of this Column, in the given order
func (c *Column[T]) gatherIndices(name string, indices []int) anyColumn {
	gathered := &Column[T]{
		name:    name,
		values:  make([]T, len(indices)),
		missing: make([]bool, len(indices)),
	}
	for out, i := range indices {
		gathered.values[out] = c.values[i]
		gathered.missing[out] = c.missing[i]
	}
	return gathered
}

// gatherOptional is gatherIndices with -1 allowed as a position,
// producing a missing value. Join output assembly uses it to null-pad
// unmatched rows.
func (c *Column[T]) gatherOptional(name string, indices []int) anyColumn {
	gathered := &Column[T]{
		name:    name,
		values:  make([]T, len(indices)),
		missing: make([]bool, len(indices)),
	}
	for out, i := range indices {
		if i < 0 {
			gathered.missing[out] = true
			continue
		}
		gathered.values[out] = c.values[i]
		gathered.missing[out] = c.missing[i]
	}
	return gathered
}

// permute reorders this Column in place according to perm, where the
// value at perm[i] moves to position i
func (c *Column[T]) permute(perm []int) {
	values := make([]T, len(c.values))
	missing := make([]bool, len(c.missing))
	for out, i := range perm {
		values[out] = c.values[i]
		missing[out] = c.missing[i]
	}
	c.values = values
	c.missing = missing
	c.gen++
}
