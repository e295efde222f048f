package frame

import (
	"fmt"

	errors "github.com/go-frame/frame/errors"
)

// anyColumn is the type-erased contract every Column[T] satisfies.
// It is what a DataFrame stores internally so that heterogeneously
// typed columns can live side by side.
type anyColumn interface {
	Name() string
	Len() int
	Kind() Kind
	ToString() string
	typeName() string
	generation() uint64
	rename(name string)
	valueAt(i int) (interface{}, bool)
	canAssign(v interface{}) bool
	setValueAt(i int, v interface{}) error
	appendValue(v interface{}) error
	insertValueAt(i int, v interface{}) error
	removeAt(i int) error
	clone() anyColumn
	emptyLike(name string) anyColumn
	gatherIndices(name string, indices []int) anyColumn
	gatherOptional(name string, indices []int) anyColumn
	permute(perm []int)
}

// ErasedColumn wraps a Column of an unknown element type, enabling
// heterogeneous storage within a DataFrame. Dynamic access goes
// through Value/SetValue; typed access is recovered via As, the
// single checked downcast boundary of the engine. Callers should
// branch on Kind before downcasting rather than probing with As.
type ErasedColumn struct {
	col anyColumn
}

// Erase wraps a Column for heterogeneous storage. The ErasedColumn
// takes exclusive ownership of the Column.
func Erase[T any](col *Column[T]) *ErasedColumn {
	return &ErasedColumn{col: col}
}

// As recovers the typed Column wrapped by an ErasedColumn. It fails
// with a TypeMismatchError iff T does not match the stored element
// type. This check runs on every call and is never assumed away.
func As[T any](ec *ErasedColumn) (*Column[T], error) {
	col, ok := ec.col.(*Column[T])
	if !ok {
		var zero T
		return nil, errors.TypeMismatchError{
			Name:     ec.col.Name(),
			Expected: ec.col.typeName(),
			Actual:   typeNameOf(zero),
		}
	}
	return col, nil
}

// Name returns the name of the wrapped Column
func (ec *ErasedColumn) Name() string {
	return ec.col.Name()
}

// Len returns the number of values in the wrapped Column
func (ec *ErasedColumn) Len() int {
	return ec.col.Len()
}

// Kind returns the Kind tag of the wrapped Column's element type
func (ec *ErasedColumn) Kind() Kind {
	return ec.col.Kind()
}

// TypeName returns the Go name of the wrapped Column's element type
func (ec *ErasedColumn) TypeName() string {
	return ec.col.typeName()
}

// Value returns the value at position i as an interface{}. present is
// false when the value is missing, in which case value is nil.
func (ec *ErasedColumn) Value(i int) (value interface{}, present bool, err error) {
	if i < 0 || i >= ec.col.Len() {
		return nil, false, errors.IndexOutOfBoundsError{Index: i, Length: ec.col.Len()}
	}
	v, p := ec.col.valueAt(i)
	return v, p, nil
}

// IsMissing returns true iff the value at position i is missing
func (ec *ErasedColumn) IsMissing(i int) (bool, error) {
	if i < 0 || i >= ec.col.Len() {
		return false, errors.IndexOutOfBoundsError{Index: i, Length: ec.col.Len()}
	}
	_, p := ec.col.valueAt(i)
	return !p, nil
}

// SetValue overwrites the value at position i. A nil value marks the
// position missing; a non-nil value must match the stored element type
// or SetValue fails with a TypeMismatchError.
func (ec *ErasedColumn) SetValue(i int, v interface{}) error {
	return ec.col.setValueAt(i, v)
}

// AppendValue adds a value to the end of the wrapped Column, under the
// same typing rules as SetValue
func (ec *ErasedColumn) AppendValue(v interface{}) error {
	return ec.col.appendValue(v)
}

// Clone returns a deep copy of this ErasedColumn
func (ec *ErasedColumn) Clone() *ErasedColumn {
	return &ErasedColumn{col: ec.col.clone()}
}

// ToString returns a string representation of the wrapped Column
func (ec *ErasedColumn) ToString() string {
	return ec.col.ToString()
}

func typeNameOf(v interface{}) string {
	if v == nil {
		return "interface {}"
	}
	return fmt.Sprintf("%T", v)
}
