package frame

import (
	"log"
	"sort"

	errors "github.com/go-frame/frame/errors"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

// SortOrder selects the direction of a Sort
type SortOrder int

const (
	// Ascending sorts smallest values first
	Ascending SortOrder = iota
	// Descending sorts largest values first
	Descending
)

// A DataFrame is an ordered collection of named, equal-length,
// heterogeneously typed columns. It is the central entity of the
// engine: slices, groupings, joins and summaries all derive from one.
//
// A DataFrame is mutably owned by one logical owner at a time. Views
// derived from it (Slice, RowGrouping, column slices) hold non-owning
// back-references; structurally mutating a DataFrame while such a view
// is alive is a precondition violation, detected via a generation
// counter and reported as a StaleViewError on the next view access.
type DataFrame struct {
	id      string
	cols    []*ErasedColumn
	aliases map[string]*ErasedColumn
	gen     uint64
}

// CreateDataFrame returns a new, empty DataFrame
func CreateDataFrame() *DataFrame {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for DataFrame: %v", err)
	}
	return &DataFrame{
		id:      id.String(),
		aliases: make(map[string]*ErasedColumn),
	}
}

// FromColumns returns a new DataFrame populated with deep copies of
// the given columns. All columns must share one length and carry
// unique names.
func FromColumns(cols ...*ErasedColumn) (*DataFrame, error) {
	df := CreateDataFrame()
	var multierr *multierror.Error
	for _, col := range cols {
		if len(df.cols) > 0 && col.Len() != df.RowCount() {
			multierr = multierror.Append(multierr, errors.RowCountMismatchError{
				Name:     col.Name(),
				Expected: df.RowCount(),
				Actual:   col.Len(),
			})
			continue
		}
		if err := df.AppendColumn(col.Clone()); err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return df, nil
}

// ID returns the unique identity of this DataFrame
func (df *DataFrame) ID() string {
	return df.id
}

// RowCount returns the number of rows in this DataFrame
func (df *DataFrame) RowCount() int {
	if len(df.cols) == 0 {
		return 0
	}
	return df.cols[0].Len()
}

// ColumnCount returns the number of columns in this DataFrame
func (df *DataFrame) ColumnCount() int {
	return len(df.cols)
}

// Shape returns the row and column counts of this DataFrame
func (df *DataFrame) Shape() (rows int, cols int) {
	return df.RowCount(), len(df.cols)
}

// ColumnNames returns the primary column names in display order
func (df *DataFrame) ColumnNames() []string {
	names := make([]string, len(df.cols))
	for i, col := range df.cols {
		names[i] = col.Name()
	}
	return names
}

// Columns returns the columns of this DataFrame in display order. The
// returned columns are the live storage, not copies.
func (df *DataFrame) Columns() []*ErasedColumn {
	cols := make([]*ErasedColumn, len(df.cols))
	copy(cols, df.cols)
	return cols
}

// Column looks a column up by primary name or alias. Lookup by a
// primary name shared by several columns (possible after a join) fails
// with an AmbiguousColumnNameError until disambiguated via an alias.
func (df *DataFrame) Column(name string) (*ErasedColumn, error) {
	return df.findColumn(name)
}

// ColumnAt returns the column at the given position
func (df *DataFrame) ColumnAt(i int) (*ErasedColumn, error) {
	if i < 0 || i >= len(df.cols) {
		return nil, errors.IndexOutOfBoundsError{Index: i, Length: len(df.cols)}
	}
	return df.cols[i], nil
}

func (df *DataFrame) findColumn(name string) (*ErasedColumn, error) {
	var found *ErasedColumn
	matches := 0
	for _, col := range df.cols {
		if col.Name() == name {
			found = col
			matches++
		}
	}
	if matches > 1 {
		return nil, errors.AmbiguousColumnNameError{Name: name}
	}
	if matches == 1 {
		return found, nil
	}
	if col, ok := df.aliases[name]; ok {
		return col, nil
	}
	return nil, errors.ColumnNotFoundError{Name: name}
}

// nameTaken reports whether a name is already claimed by a primary
// column or an alias
func (df *DataFrame) nameTaken(name string) bool {
	for _, col := range df.cols {
		if col.Name() == name {
			return true
		}
	}
	_, ok := df.aliases[name]
	return ok
}

// Alias registers an alternate lookup name for an existing column.
// Many aliases may target one column.
func (df *DataFrame) Alias(alias string, target string) error {
	col, err := df.findColumn(target)
	if err != nil {
		return err
	}
	if df.nameTaken(alias) {
		return errors.DuplicateColumnNameError{Name: alias}
	}
	df.aliases[alias] = col
	return nil
}

// AppendColumn adds a column to the end of this DataFrame, taking
// ownership of it. The column's length must match the frame's row
// count, unless the frame has no columns yet, in which case the
// frame's row count becomes the column's length.
func (df *DataFrame) AppendColumn(col *ErasedColumn) error {
	return df.InsertColumn(col, len(df.cols))
}

// InsertColumn places a column at the given position, shifting
// subsequent columns right
func (df *DataFrame) InsertColumn(col *ErasedColumn, at int) error {
	if at < 0 || at > len(df.cols) {
		return errors.IndexOutOfBoundsError{Index: at, Length: len(df.cols)}
	}
	if len(df.cols) > 0 && col.Len() != df.RowCount() {
		return errors.RowCountMismatchError{Name: col.Name(), Expected: df.RowCount(), Actual: col.Len()}
	}
	if df.nameTaken(col.Name()) {
		return errors.DuplicateColumnNameError{Name: col.Name()}
	}
	df.insertColumnUnchecked(col, at)
	return nil
}

// insertColumnUnchecked skips the duplicate-name check. Join output
// assembly uses it to carry colliding names, which are then reached
// via aliases.
func (df *DataFrame) insertColumnUnchecked(col *ErasedColumn, at int) {
	df.cols = append(df.cols, nil)
	copy(df.cols[at+1:], df.cols[at:])
	df.cols[at] = col
}

// RemoveColumn detaches the named column from this DataFrame and
// returns it, along with dropping any alias targeting it
func (df *DataFrame) RemoveColumn(name string) (*ErasedColumn, error) {
	col, err := df.findColumn(name)
	if err != nil {
		return nil, err
	}
	for i, c := range df.cols {
		if c == col {
			df.cols = append(df.cols[:i], df.cols[i+1:]...)
			break
		}
	}
	for alias, target := range df.aliases {
		if target == col {
			delete(df.aliases, alias)
		}
	}
	return col, nil
}

// RenameColumn changes a column's primary name. The new name must not
// collide with an existing column or alias.
func (df *DataFrame) RenameColumn(old string, new string) error {
	col, err := df.findColumn(old)
	if err != nil {
		return err
	}
	if new != old && df.nameTaken(new) {
		return errors.DuplicateColumnNameError{Name: new}
	}
	col.col.rename(new)
	return nil
}

// AppendRow adds one row to this DataFrame. values must contain one
// entry per column, in display order; nil denotes a missing value.
// The append is atomic: every value is validated against its column's
// type before any column is touched, and a failure reports every
// mismatched column at once.
func (df *DataFrame) AppendRow(values ...interface{}) error {
	return df.InsertRow(df.RowCount(), values...)
}

// InsertRow places one row at the given position, shifting subsequent
// rows down, under the same atomicity contract as AppendRow
func (df *DataFrame) InsertRow(at int, values ...interface{}) error {
	if at < 0 || at > df.RowCount() {
		return errors.IndexOutOfBoundsError{Index: at, Length: df.RowCount()}
	}
	if len(values) != len(df.cols) {
		return errors.RowCountMismatchError{Name: "row values", Expected: len(df.cols), Actual: len(values)}
	}
	var multierr *multierror.Error
	for i, col := range df.cols {
		if values[i] != nil && !col.col.canAssign(values[i]) {
			multierr = multierror.Append(multierr, errors.TypeMismatchError{
				Name:     col.Name(),
				Expected: col.TypeName(),
				Actual:   typeNameOf(values[i]),
			})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return err
	}
	for i, col := range df.cols {
		if err := col.col.insertValueAt(at, values[i]); err != nil {
			// validated above, so this is unreachable in practice
			return err
		}
	}
	df.gen++
	return nil
}

// RemoveRow deletes the row at the given position, shifting subsequent
// rows up
func (df *DataFrame) RemoveRow(at int) error {
	if at < 0 || at >= df.RowCount() {
		return errors.IndexOutOfBoundsError{Index: at, Length: df.RowCount()}
	}
	for _, col := range df.cols {
		if err := col.col.removeAt(at); err != nil {
			return err
		}
	}
	df.gen++
	return nil
}

// Row returns a logical view over one row of this DataFrame, valid
// while the row index remains in bounds
func (df *DataFrame) Row(i int) (Row, error) {
	if i < 0 || i >= df.RowCount() {
		return Row{}, errors.IndexOutOfBoundsError{Index: i, Length: df.RowCount()}
	}
	return Row{df: df, idx: i}, nil
}

// Filter evaluates pred against every row in index order and returns a
// view over the matching rows, preserving their original order
func (df *DataFrame) Filter(pred func(row Row) (bool, error)) (*Slice, error) {
	indices := make([]int, 0, df.RowCount())
	for i := 0; i < df.RowCount(); i++ {
		keep, err := pred(Row{df: df, idx: i})
		if err != nil {
			return nil, err
		}
		if keep {
			indices = append(indices, i)
		}
	}
	return &Slice{df: df, indices: indices, gen: df.gen}, nil
}

// SliceRows returns a view over an explicit ordered set of row
// positions
func (df *DataFrame) SliceRows(indices []int) (*Slice, error) {
	owned := make([]int, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= df.RowCount() {
			return nil, errors.IndexOutOfBoundsError{Index: idx, Length: df.RowCount()}
		}
		owned[i] = idx
	}
	return &Slice{df: df, indices: owned, gen: df.gen}, nil
}

// Sort stably reorders the rows of this DataFrame by the named
// column. Missing values sort before all present values regardless of
// order - descending only reverses the present region.
func (df *DataFrame) Sort(on string, order SortOrder) error {
	col, err := df.findColumn(on)
	if err != nil {
		return err
	}
	perm := make([]int, df.RowCount())
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		av, apresent := col.col.valueAt(perm[a])
		bv, bpresent := col.col.valueAt(perm[b])
		if !apresent || !bpresent {
			return !apresent && bpresent
		}
		if order == Descending {
			return compareValues(av, bv) > 0
		}
		return compareValues(av, bv) < 0
	})
	for _, c := range df.cols {
		c.col.permute(perm)
	}
	df.gen++
	return nil
}

// Select projects the named columns into a new DataFrame, preserving
// the requested order. Requesting a name twice yields the column
// twice. Projected columns are deep copies.
func (df *DataFrame) Select(names ...string) (*DataFrame, error) {
	out := CreateDataFrame()
	for _, name := range names {
		col, err := df.findColumn(name)
		if err != nil {
			return nil, err
		}
		if len(out.cols) > 0 && col.Len() != out.RowCount() {
			return nil, errors.RowCountMismatchError{Name: name, Expected: out.RowCount(), Actual: col.Len()}
		}
		out.insertColumnUnchecked(col.Clone(), len(out.cols))
	}
	return out, nil
}

// Equals reports structural equality: same shape, same column names,
// kinds and element types in order, and equal optional values
// everywhere
func (df *DataFrame) Equals(other *DataFrame) bool {
	if df.ColumnCount() != other.ColumnCount() || df.RowCount() != other.RowCount() {
		return false
	}
	for i, col := range df.cols {
		ocol := other.cols[i]
		if col.Name() != ocol.Name() || col.TypeName() != ocol.TypeName() {
			return false
		}
		for r := 0; r < col.Len(); r++ {
			v, present := col.col.valueAt(r)
			ov, opresent := ocol.col.valueAt(r)
			if present != opresent {
				return false
			}
			if present && string(encodeValue(v)) != string(encodeValue(ov)) {
				return false
			}
		}
	}
	return true
}

// Concat concatenates the rows of several DataFrames sharing one
// column schema (names, element types and order) into a new
// DataFrame. Diverging schemas fail with a SchemaMismatchError.
func Concat(frames ...*DataFrame) (*DataFrame, error) {
	if len(frames) == 0 {
		return CreateDataFrame(), nil
	}
	first := frames[0]
	for _, other := range frames[1:] {
		if err := sameSchema(first, other); err != nil {
			return nil, err
		}
	}
	out := CreateDataFrame()
	for _, col := range first.cols {
		out.insertColumnUnchecked(col.Clone(), len(out.cols))
	}
	for _, other := range frames[1:] {
		for i, col := range other.cols {
			for r := 0; r < col.Len(); r++ {
				v, present := col.col.valueAt(r)
				if !present {
					v = nil
				}
				if err := out.cols[i].AppendValue(v); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

func sameSchema(a *DataFrame, b *DataFrame) error {
	if a.ColumnCount() != b.ColumnCount() {
		return errors.SchemaMismatchError{Reason: "frames have unequal numbers of columns"}
	}
	for i, col := range a.cols {
		ocol := b.cols[i]
		if col.Name() != ocol.Name() {
			return errors.SchemaMismatchError{Reason: "column " + col.Name() + " is named " + ocol.Name() + " in the other frame"}
		}
		if col.TypeName() != ocol.TypeName() {
			return errors.SchemaMismatchError{Reason: "column " + col.Name() + " stores " + col.TypeName() + " in one frame and " + ocol.TypeName() + " in the other"}
		}
	}
	return nil
}
