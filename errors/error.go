package errors

import (
	"fmt"
)

// RowCountMismatchError occurs when a Column's length does not match the row count of a DataFrame
type RowCountMismatchError struct {
	Name     string
	Expected int
	Actual   int
}

// Error returns a textual representation of this RowCountMismatchError
func (e RowCountMismatchError) Error() string {
	return fmt.Sprintf("Column %s has %d rows, expected %d", e.Name, e.Actual, e.Expected)
}

// MissingValueError occurs when a typed accessor reads a missing value
type MissingValueError struct{ Name string }

// Error returns a textual representation of this MissingValueError
func (e MissingValueError) Error() string {
	return fmt.Sprintf("Value for column %s is missing", e.Name)
}

// DuplicateColumnNameError occurs when a column name or alias collides with an existing one
type DuplicateColumnNameError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnNameError
func (e DuplicateColumnNameError) Error() string {
	return fmt.Sprintf("Column %s already exists", e.Name)
}

// ColumnNotFoundError occurs when a column name or alias does not exist in a DataFrame
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Column %s does not exist", e.Name)
}

// AmbiguousColumnNameError occurs when a lookup matches more than one column
type AmbiguousColumnNameError struct{ Name string }

// Error returns a textual representation of this AmbiguousColumnNameError
func (e AmbiguousColumnNameError) Error() string {
	return fmt.Sprintf("Column name %s is ambiguous - disambiguate via an alias", e.Name)
}

// TypeMismatchError occurs when a value or typed view does not match a column's stored type
type TypeMismatchError struct {
	Name     string
	Expected string
	Actual   string
}

// Error returns a textual representation of this TypeMismatchError
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Column %s stores %s, not %s", e.Name, e.Expected, e.Actual)
}

// IndexOutOfBoundsError occurs when a row or column index falls outside [0, length)
type IndexOutOfBoundsError struct {
	Index  int
	Length int
}

// Error returns a textual representation of this IndexOutOfBoundsError
func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("Index %d is out of bounds for length %d", e.Index, e.Length)
}

// SchemaMismatchError occurs when two DataFrames are expected to share a column schema but do not
type SchemaMismatchError struct{ Reason string }

// Error returns a textual representation of this SchemaMismatchError
func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("Schemas do not match: %s", e.Reason)
}

// StaleViewError occurs when a slice or grouping is accessed after its base was structurally mutated
type StaleViewError struct {
	FrameID string
}

// Error returns a textual representation of this StaleViewError
func (e StaleViewError) Error() string {
	return fmt.Sprintf("View over frame %s is stale - the base was structurally mutated", e.FrameID)
}

// ParseError occurs when a codec cannot convert a raw cell into a typed column value
type ParseError struct {
	Row    int
	Column string
	Raw    string
	Reason string
}

// Error returns a textual representation of this ParseError
func (e ParseError) Error() string {
	return fmt.Sprintf("Row %d, column %s: cannot parse %q: %s", e.Row, e.Column, e.Raw, e.Reason)
}
