package frame

import (
	"testing"

	errors "github.com/go-frame/frame/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

// testFrame builds the frame used throughout these tests:
// id:[1,2,3,4], city:["NYC","LA","NYC",nil], score:[1.5,2.5,3.5,4.5]
func testFrame(t *testing.T) *DataFrame {
	df := CreateDataFrame()
	require.Nil(t, df.AppendColumn(Erase(CreateColumnFromValues[int64]("id", []int64{1, 2, 3, 4}))))
	require.Nil(t, df.AppendColumn(Erase(CreateNullableColumn[string]("city", []*string{strPtr("NYC"), strPtr("LA"), strPtr("NYC"), nil}))))
	require.Nil(t, df.AppendColumn(Erase(CreateColumnFromValues[float64]("score", []float64{1.5, 2.5, 3.5, 4.5}))))
	return df
}

func TestDataFrameColumnMutation(t *testing.T) {
	df := testFrame(t)
	rows, cols := df.Shape()
	require.Equal(t, 4, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []string{"id", "city", "score"}, df.ColumnNames())

	// length mismatch
	err := df.AppendColumn(Erase(CreateColumnFromValues[int64]("short", []int64{1})))
	require.IsType(t, errors.RowCountMismatchError{}, err)

	// name collision
	err = df.AppendColumn(Erase(CreateColumnFromValues[int64]("id", []int64{9, 9, 9, 9})))
	require.IsType(t, errors.DuplicateColumnNameError{}, err)

	require.Nil(t, df.InsertColumn(Erase(CreateColumnFromValues[bool]("flag", []bool{true, false, true, false})), 1))
	require.Equal(t, []string{"id", "flag", "city", "score"}, df.ColumnNames())

	removed, err := df.RemoveColumn("flag")
	require.Nil(t, err)
	require.Equal(t, "flag", removed.Name())
	require.Equal(t, []string{"id", "city", "score"}, df.ColumnNames())

	_, err = df.RemoveColumn("flag")
	require.IsType(t, errors.ColumnNotFoundError{}, err)

	require.Nil(t, df.RenameColumn("score", "points"))
	require.IsType(t, errors.DuplicateColumnNameError{}, df.RenameColumn("points", "id"))
	require.IsType(t, errors.ColumnNotFoundError{}, df.RenameColumn("missing", "anything"))
}

func TestDataFrameFirstColumnSetsRowCount(t *testing.T) {
	df := CreateDataFrame()
	require.Equal(t, 0, df.RowCount())
	require.Nil(t, df.AppendColumn(Erase(CreateColumnFromValues[int64]("id", []int64{1, 2}))))
	require.Equal(t, 2, df.RowCount())
}

func TestDataFrameAppendRowAtomicity(t *testing.T) {
	df := testFrame(t)

	// wrong width leaves the frame untouched
	err := df.AppendRow(int64(5), "SF")
	require.IsType(t, errors.RowCountMismatchError{}, err)
	require.Equal(t, 4, df.RowCount())

	// a type mismatch anywhere aborts before any column mutates,
	// and every mismatched column is reported
	err = df.AppendRow("five", "SF", "oops")
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Equal(t, 2, len(merr.Errors))
	require.Equal(t, 4, df.RowCount())
	for _, col := range df.Columns() {
		require.Equal(t, 4, col.Len())
	}

	// nil is assignable to every column
	require.Nil(t, df.AppendRow(int64(5), nil, 5.5))
	require.Equal(t, 5, df.RowCount())
	row, err := df.Row(4)
	require.Nil(t, err)
	require.True(t, row.IsNil("city"))
	v, err := row.GetInt("id")
	require.Nil(t, err)
	require.Equal(t, int64(5), v)
}

func TestDataFrameInsertRemoveRow(t *testing.T) {
	df := testFrame(t)
	require.Nil(t, df.InsertRow(0, int64(0), "SEA", 0.5))
	require.Equal(t, 5, df.RowCount())
	row, err := df.Row(0)
	require.Nil(t, err)
	city, err := row.GetString("city")
	require.Nil(t, err)
	require.Equal(t, "SEA", city)

	require.Nil(t, df.RemoveRow(0))
	require.Equal(t, 4, df.RowCount())
	require.IsType(t, errors.IndexOutOfBoundsError{}, df.RemoveRow(4))
	require.IsType(t, errors.IndexOutOfBoundsError{}, df.InsertRow(9, int64(0), "X", 0.0))
}

func TestDataFrameFilterPreservesOrder(t *testing.T) {
	df := testFrame(t)
	slice, err := df.Filter(func(row Row) (bool, error) {
		id, err := row.GetInt("id")
		if err != nil {
			return false, err
		}
		return id%2 == 1, nil
	})
	require.Nil(t, err)
	require.Equal(t, []int{0, 2}, slice.Indices())

	materialized, err := slice.Materialize()
	require.Nil(t, err)
	require.Equal(t, 2, materialized.RowCount())
	require.Equal(t, 3, materialized.ColumnCount())
}

func TestDataFrameSliceStaleness(t *testing.T) {
	df := testFrame(t)
	slice, err := df.Filter(func(row Row) (bool, error) { return true, nil })
	require.Nil(t, err)

	require.Nil(t, df.AppendRow(int64(5), "SF", 5.5))
	_, err = slice.Row(0)
	require.IsType(t, errors.StaleViewError{}, err)
	_, err = slice.Materialize()
	require.IsType(t, errors.StaleViewError{}, err)
	_, err = slice.Filter(func(row Row) (bool, error) { return true, nil })
	require.IsType(t, errors.StaleViewError{}, err)
}

func TestDataFrameSortMissingAlwaysFirst(t *testing.T) {
	df := CreateDataFrame()
	require.Nil(t, df.AppendColumn(Erase(CreateNullableColumn[int64]("n", []*int64{intPtr(3), nil, intPtr(1), intPtr(2)}))))
	require.Nil(t, df.AppendColumn(Erase(CreateColumnFromValues[string]("tag", []string{"c", "x", "a", "b"}))))

	require.Nil(t, df.Sort("n", Ascending))
	col, err := df.Column("n")
	require.Nil(t, err)
	missing, err := col.IsMissing(0)
	require.Nil(t, err)
	require.True(t, missing)
	ascending := make([]interface{}, 0)
	for i := 1; i < col.Len(); i++ {
		v, _, err := col.Value(i)
		require.Nil(t, err)
		ascending = append(ascending, v)
	}
	require.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, ascending)

	// companion column moved with the sorted one
	tag, err := df.Column("tag")
	require.Nil(t, err)
	v, _, err := tag.Value(0)
	require.Nil(t, err)
	require.Equal(t, "x", v)

	// descending reverses only the present region
	require.Nil(t, df.Sort("n", Descending))
	missing, err = col.IsMissing(0)
	require.Nil(t, err)
	require.True(t, missing)
	descending := make([]interface{}, 0)
	for i := 1; i < col.Len(); i++ {
		v, _, err := col.Value(i)
		require.Nil(t, err)
		descending = append(descending, v)
	}
	require.Equal(t, []interface{}{int64(3), int64(2), int64(1)}, descending)
}

func TestDataFrameSelect(t *testing.T) {
	df := testFrame(t)
	projected, err := df.Select("score", "id", "id")
	require.Nil(t, err)
	require.Equal(t, []string{"score", "id", "id"}, projected.ColumnNames())

	// duplicate names in the projection make direct lookup ambiguous
	_, err = projected.Column("id")
	require.IsType(t, errors.AmbiguousColumnNameError{}, err)

	// projection copies storage
	col, err := projected.Column("score")
	require.Nil(t, err)
	require.Nil(t, col.SetValue(0, 9.9))
	original, err := df.Column("score")
	require.Nil(t, err)
	v, _, err := original.Value(0)
	require.Nil(t, err)
	require.Equal(t, 1.5, v)

	_, err = df.Select("nope")
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestDataFrameAliases(t *testing.T) {
	df := testFrame(t)
	require.Nil(t, df.Alias("town", "city"))
	col, err := df.Column("town")
	require.Nil(t, err)
	require.Equal(t, "city", col.Name())

	require.IsType(t, errors.DuplicateColumnNameError{}, df.Alias("id", "city"))
	require.IsType(t, errors.ColumnNotFoundError{}, df.Alias("x", "nope"))

	// removing a column drops aliases targeting it
	_, err = df.RemoveColumn("city")
	require.Nil(t, err)
	_, err = df.Column("town")
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestDataFrameRoundTrip(t *testing.T) {
	df := testFrame(t)
	rebuilt, err := FromColumns(df.Columns()...)
	require.Nil(t, err)
	require.True(t, df.Equals(rebuilt))
	require.True(t, rebuilt.Equals(df))

	// FromColumns copies storage
	col, err := rebuilt.Column("id")
	require.Nil(t, err)
	require.Nil(t, col.SetValue(0, int64(99)))
	require.False(t, df.Equals(rebuilt))
}

func TestDataFrameFromColumnsValidation(t *testing.T) {
	_, err := FromColumns(
		Erase(CreateColumnFromValues[int64]("a", []int64{1, 2})),
		Erase(CreateColumnFromValues[int64]("b", []int64{1})),
		Erase(CreateColumnFromValues[int64]("a", []int64{3, 4})),
	)
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Equal(t, 2, len(merr.Errors))
}

func TestConcat(t *testing.T) {
	a := testFrame(t)
	b := testFrame(t)
	combined, err := Concat(a, b)
	require.Nil(t, err)
	require.Equal(t, 8, combined.RowCount())
	require.Equal(t, []string{"id", "city", "score"}, combined.ColumnNames())

	mismatched := CreateDataFrame()
	require.Nil(t, mismatched.AppendColumn(Erase(CreateColumnFromValues[int64]("id", []int64{1}))))
	_, err = Concat(a, mismatched)
	require.IsType(t, errors.SchemaMismatchError{}, err)
}
