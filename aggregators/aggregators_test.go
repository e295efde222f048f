package aggregators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	agg := Sum()
	require.Nil(t, agg.Accumulate(int64(2), true))
	require.Nil(t, agg.Accumulate(nil, false))
	require.Nil(t, agg.Accumulate(int64(3), true))
	v, present := agg.Result()
	require.True(t, present)
	require.Equal(t, 5.0, v)

	// an empty group sums to 0, not missing
	v, present = Sum().Result()
	require.True(t, present)
	require.Equal(t, 0.0, v)

	require.NotNil(t, Sum().Accumulate("nope", true))
}

func TestCount(t *testing.T) {
	agg := Count()
	require.Nil(t, agg.Accumulate("a", true))
	require.Nil(t, agg.Accumulate(nil, false))
	require.Nil(t, agg.Accumulate("b", true))
	v, present := agg.Result()
	require.True(t, present)
	require.Equal(t, int64(2), v)

	v, present = Count().Result()
	require.True(t, present)
	require.Equal(t, int64(0), v)
}

func TestMean(t *testing.T) {
	agg := Mean()
	require.Nil(t, agg.Accumulate(int64(2), true))
	require.Nil(t, agg.Accumulate(nil, false))
	require.Nil(t, agg.Accumulate(int64(4), true))
	v, present := agg.Result()
	require.True(t, present)
	require.Equal(t, 3.0, v)

	// an empty group has no mean
	_, present = Mean().Result()
	require.False(t, present)
}

func TestMinMaxNumeric(t *testing.T) {
	min, max := Min(), Max()
	for _, v := range []int64{3, 1, 4, 1, 5} {
		require.Nil(t, min.Accumulate(v, true))
		require.Nil(t, max.Accumulate(v, true))
	}
	v, present := min.Result()
	require.True(t, present)
	require.Equal(t, int64(1), v)
	v, present = max.Result()
	require.True(t, present)
	require.Equal(t, int64(5), v)

	_, present = Min().Result()
	require.False(t, present)
	_, present = Max().Result()
	require.False(t, present)
}

func TestMinMaxPreserveType(t *testing.T) {
	agg := Min()
	require.Nil(t, agg.Accumulate("banana", true))
	require.Nil(t, agg.Accumulate("apple", true))
	v, present := agg.Result()
	require.True(t, present)
	require.Equal(t, "apple", v)

	earlier := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)
	agg = Max()
	require.Nil(t, agg.Accumulate(earlier, true))
	require.Nil(t, agg.Accumulate(later, true))
	v, present = agg.Result()
	require.True(t, present)
	require.Equal(t, later, v)

	// mixed element types cannot be ordered
	agg = Min()
	require.Nil(t, agg.Accumulate("a", true))
	require.NotNil(t, agg.Accumulate(int64(1), true))
}
