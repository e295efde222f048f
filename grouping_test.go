package frame_test

import (
	"math"
	"strings"
	"testing"

	frame "github.com/go-frame/frame"
	"github.com/go-frame/frame/aggregators"
	errors "github.com/go-frame/frame/errors"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func groupingFrame(t *testing.T) *frame.DataFrame {
	df := frame.CreateDataFrame()
	require.Nil(t, df.AppendColumn(frame.Erase(frame.CreateColumnFromValues[int64]("id", []int64{1, 2, 3, 4}))))
	require.Nil(t, df.AppendColumn(frame.Erase(frame.CreateNullableColumn[string]("city", []*string{strPtr("NYC"), strPtr("LA"), strPtr("NYC"), nil}))))
	return df
}

func TestGroupByDiscoveryOrder(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)
	require.Equal(t, 3, grouping.Len())

	groups := grouping.Groups()
	key, present := groups[0].Key()
	require.True(t, present)
	require.Equal(t, "NYC", key)
	require.Equal(t, []int{0, 2}, groups[0].Rows().Indices())

	key, present = groups[1].Key()
	require.True(t, present)
	require.Equal(t, "LA", key)
	require.Equal(t, []int{1}, groups[1].Rows().Indices())

	// the missing key forms its own group
	_, present = groups[2].Key()
	require.False(t, present)
	require.Equal(t, []int{3}, groups[2].Rows().Indices())
}

func TestGroupByWrongKeyType(t *testing.T) {
	df := groupingFrame(t)
	_, err := frame.GroupBy[int64](df, "city")
	require.IsType(t, errors.TypeMismatchError{}, err)
	_, err = frame.GroupBy[string](df, "nope")
	require.IsType(t, errors.ColumnNotFoundError{}, err)
}

func TestGroupByFuncDropsKeylessRows(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupByFunc(df, "city", func(v interface{}, present bool) (string, bool) {
		if !present {
			return "", false
		}
		return strings.ToLower(v.(string)), true
	})
	require.Nil(t, err)
	require.Equal(t, 2, grouping.Len())
	total := 0
	for _, group := range grouping.Groups() {
		total += group.Rows().Len()
	}
	require.Equal(t, 3, total)
}

func TestGroupingCounts(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)

	counts, err := grouping.Counts(false, frame.Ascending)
	require.Nil(t, err)
	require.Equal(t, []string{"city", "count"}, counts.ColumnNames())
	require.Equal(t, 3, counts.RowCount())

	cityCol, err := counts.Column("city")
	require.Nil(t, err)
	countCol, err := counts.Column("count")
	require.Nil(t, err)

	v, _, err := cityCol.Value(0)
	require.Nil(t, err)
	require.Equal(t, "NYC", v)
	n, _, err := countCol.Value(0)
	require.Nil(t, err)
	require.Equal(t, int64(2), n)

	missing, err := cityCol.IsMissing(2)
	require.Nil(t, err)
	require.True(t, missing)
	n, _, err = countCol.Value(2)
	require.Nil(t, err)
	require.Equal(t, int64(1), n)

	// sorting by size descending puts NYC first, preserving
	// discovery order among the size-1 groups
	sorted, err := grouping.Counts(true, frame.Descending)
	require.Nil(t, err)
	countCol, err = sorted.Column("count")
	require.Nil(t, err)
	n, _, err = countCol.Value(0)
	require.Nil(t, err)
	require.Equal(t, int64(2), n)
	cityCol, err = sorted.Column("city")
	require.Nil(t, err)
	v, _, err = cityCol.Value(1)
	require.Nil(t, err)
	require.Equal(t, "LA", v)
}

func TestGroupingAggregate(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)

	agg, err := grouping.Aggregate([]string{"id"}, func(name string) string { return name + "_sum" }, aggregators.Sum)
	require.Nil(t, err)
	require.Equal(t, []string{"city", "id_sum"}, agg.ColumnNames())
	require.Equal(t, 3, agg.RowCount())

	sums, err := agg.Column("id_sum")
	require.Nil(t, err)
	v, _, err := sums.Value(0)
	require.Nil(t, err)
	require.Equal(t, 4.0, v) // NYC: 1 + 3
	v, _, err = sums.Value(1)
	require.Nil(t, err)
	require.Equal(t, 2.0, v) // LA
	v, _, err = sums.Value(2)
	require.Nil(t, err)
	require.Equal(t, 4.0, v) // missing city
}

func TestGroupingAggregateMean(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)

	agg, err := grouping.Aggregate([]string{"id"}, nil, aggregators.Mean)
	require.Nil(t, err)
	means, err := agg.Column("id")
	require.Nil(t, err)
	v, _, err := means.Value(0)
	require.Nil(t, err)
	require.Equal(t, 2.0, v) // NYC: (1 + 3) / 2
}

func TestGroupingAggregateNarrowIntegers(t *testing.T) {
	df := frame.CreateDataFrame()
	require.Nil(t, df.AppendColumn(frame.Erase(frame.CreateColumnFromValues[string]("city", []string{"NYC", "NYC", "LA"}))))
	require.Nil(t, df.AppendColumn(frame.Erase(frame.CreateColumnFromValues[uint8]("v", []uint8{3, 1, 2}))))

	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)

	// Min preserves the source element type, including narrow widths
	agg, err := grouping.Aggregate([]string{"v"}, func(name string) string { return name + "_min" }, aggregators.Min)
	require.Nil(t, err)
	mins, err := agg.Column("v_min")
	require.Nil(t, err)
	require.Equal(t, frame.KindInt, mins.Kind())
	v, _, err := mins.Value(0)
	require.Nil(t, err)
	require.Equal(t, uint8(1), v)
	v, _, err = mins.Value(1)
	require.Nil(t, err)
	require.Equal(t, uint8(2), v)
}

func TestGroupByNaNKeysEachFormAGroup(t *testing.T) {
	df := frame.CreateDataFrame()
	require.Nil(t, df.AppendColumn(frame.Erase(frame.CreateColumnFromValues[float64]("k", []float64{math.NaN(), math.NaN(), 1}))))
	grouping, err := frame.GroupBy[float64](df, "k")
	require.Nil(t, err)
	require.Equal(t, 3, grouping.Len())
}

func TestGroupingUngrouped(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)

	flat, err := grouping.Ungrouped()
	require.Nil(t, err)
	// key column excluded, all rows kept in group order
	require.Equal(t, []string{"id"}, flat.ColumnNames())
	require.Equal(t, df.RowCount(), flat.RowCount())

	ids, err := flat.Column("id")
	require.Nil(t, err)
	order := make([]interface{}, 0)
	for i := 0; i < ids.Len(); i++ {
		v, _, err := ids.Value(i)
		require.Nil(t, err)
		order = append(order, v)
	}
	require.Equal(t, []interface{}{int64(1), int64(3), int64(2), int64(4)}, order)

	// group sizes always total the ungrouped row count
	total := 0
	for _, group := range grouping.Groups() {
		total += group.Rows().Len()
	}
	require.Equal(t, flat.RowCount(), total)
}

func TestGroupingRandomSplit(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)

	first, second, err := grouping.RandomSplit(0.5, 42)
	require.Nil(t, err)
	require.Equal(t, df.RowCount(), first.RowCount()+second.RowCount())

	// deterministic for a fixed seed
	again1, again2, err := grouping.RandomSplit(0.5, 42)
	require.Nil(t, err)
	require.True(t, first.Equals(again1))
	require.True(t, second.Equals(again2))

	// groups move whole: the two NYC rows always land together
	for _, out := range []*frame.DataFrame{first, second} {
		cities, err := out.Column("city")
		require.Nil(t, err)
		nyc := 0
		for i := 0; i < cities.Len(); i++ {
			v, present, err := cities.Value(i)
			require.Nil(t, err)
			if present && v == "NYC" {
				nyc++
			}
		}
		require.Contains(t, []int{0, 2}, nyc)
	}
}

func TestGroupingStaleness(t *testing.T) {
	df := groupingFrame(t)
	grouping, err := frame.GroupBy[string](df, "city")
	require.Nil(t, err)

	require.Nil(t, df.AppendRow(int64(5), "SF"))
	_, err = grouping.Counts(false, frame.Ascending)
	require.IsType(t, errors.StaleViewError{}, err)
	_, err = grouping.Ungrouped()
	require.IsType(t, errors.StaleViewError{}, err)
	_, _, err = grouping.RandomSplit(0.5, 1)
	require.IsType(t, errors.StaleViewError{}, err)
}
