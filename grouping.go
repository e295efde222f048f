package frame

import (
	"math/rand"
	"sort"
	"time"

	errors "github.com/go-frame/frame/errors"
)

// Group is one partition of a DataFrame's rows, keyed by an optional
// value of type K
type Group[K comparable] struct {
	key     K
	missing bool
	rows    *Slice
}

// Key returns this group's key. present is false for the missing-key
// group.
func (g *Group[K]) Key() (key K, present bool) {
	return g.key, !g.missing
}

// Rows returns the view over this group's rows, in original row order
func (g *Group[K]) Rows() *Slice {
	return g.rows
}

// RowGrouping is a partition of a DataFrame's rows keyed by K. Groups
// appear in discovery order (the order of each key's first occurrence)
// and each key value owns exactly one group. Like a Slice, a
// RowGrouping is a non-owning view and goes stale when its base frame
// is structurally mutated.
type RowGrouping[K comparable] struct {
	df      *DataFrame
	gen     uint64
	keyName string
	groups  []*Group[K]
}

// GroupBy partitions a DataFrame's rows by the identity of the named
// column's values. The column's element type must be K. Rows with a
// missing key form their own group, if any occur. Identity is Go map
// identity: a float NaN key never equals itself, so every NaN row
// forms its own group. Coalesce such keys via GroupByFunc.
func GroupBy[K comparable](df *DataFrame, colName string) (*RowGrouping[K], error) {
	ec, err := df.Column(colName)
	if err != nil {
		return nil, err
	}
	col, err := As[K](ec)
	if err != nil {
		return nil, err
	}
	return groupRows(df, colName, func(i int) (key K, present bool, grouped bool) {
		v, present, _ := col.Get(i)
		return v, present, true
	})
}

// GroupByFunc partitions a DataFrame's rows by a caller-supplied
// transform of the named column's values. Rows for which the
// transform reports no key are excluded from the grouping, matching
// relational GROUP BY exclusion of derived NULL keys.
func GroupByFunc[K comparable](df *DataFrame, colName string, keyOf func(value interface{}, present bool) (K, bool)) (*RowGrouping[K], error) {
	ec, err := df.Column(colName)
	if err != nil {
		return nil, err
	}
	return groupRows(df, colName, func(i int) (key K, present bool, grouped bool) {
		v, p := ec.col.valueAt(i)
		key, ok := keyOf(v, p)
		return key, true, ok
	})
}

func groupRows[K comparable](df *DataFrame, keyName string, keyAt func(i int) (K, bool, bool)) (*RowGrouping[K], error) {
	grouping := &RowGrouping[K]{df: df, gen: df.gen, keyName: keyName}
	byKey := make(map[K]*Group[K])
	var missingGroup *Group[K]
	for i := 0; i < df.RowCount(); i++ {
		key, present, grouped := keyAt(i)
		if !grouped {
			continue
		}
		if !present {
			if missingGroup == nil {
				missingGroup = &Group[K]{missing: true, rows: &Slice{df: df, gen: df.gen}}
				grouping.groups = append(grouping.groups, missingGroup)
			}
			missingGroup.rows.indices = append(missingGroup.rows.indices, i)
			continue
		}
		group, ok := byKey[key]
		if !ok {
			group = &Group[K]{key: key, rows: &Slice{df: df, gen: df.gen}}
			byKey[key] = group
			grouping.groups = append(grouping.groups, group)
		}
		group.rows.indices = append(group.rows.indices, i)
	}
	return grouping, nil
}

// Len returns the number of groups
func (g *RowGrouping[K]) Len() int {
	return len(g.groups)
}

// Groups returns the groups in discovery order
func (g *RowGrouping[K]) Groups() []*Group[K] {
	out := make([]*Group[K], len(g.groups))
	copy(out, g.groups)
	return out
}

// KeyName returns the name of the column this grouping was keyed on
func (g *RowGrouping[K]) KeyName() string {
	return g.keyName
}

// Aggregate reduces every group to one output row. The output frame
// carries the key column first, then one column per requested input
// column, renamed via rename (pass nil to keep input names). Each
// group's values reach the Aggregator in original row order.
func (g *RowGrouping[K]) Aggregate(colNames []string, rename func(string) string, aggregator func() Aggregator) (*DataFrame, error) {
	if err := g.valid(); err != nil {
		return nil, err
	}
	if rename == nil {
		rename = func(name string) string { return name }
	}
	keyCol := CreateColumn[K](g.keyName)
	for _, group := range g.groups {
		if group.missing {
			keyCol.AppendMissing()
		} else {
			keyCol.Append(group.key)
		}
	}
	out := CreateDataFrame()
	if err := out.AppendColumn(Erase(keyCol)); err != nil {
		return nil, err
	}
	for _, colName := range colNames {
		src, err := g.df.Column(colName)
		if err != nil {
			return nil, err
		}
		results := make([]interface{}, 0, len(g.groups))
		for _, group := range g.groups {
			agg := aggregator()
			for _, idx := range group.rows.indices {
				v, present := src.col.valueAt(idx)
				if err := agg.Accumulate(v, present); err != nil {
					return nil, err
				}
			}
			v, present := agg.Result()
			if !present {
				v = nil
			}
			results = append(results, v)
		}
		col, err := columnFromValues(rename(colName), results)
		if err != nil {
			return nil, err
		}
		if err := out.AppendColumn(col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Counts returns one row per group with the group's key and size, as
// columns (keyName, "count"). With bySize, rows are stably sorted by
// size in the given order; otherwise they keep discovery order.
func (g *RowGrouping[K]) Counts(bySize bool, order SortOrder) (*DataFrame, error) {
	if err := g.valid(); err != nil {
		return nil, err
	}
	groups := g.Groups()
	if bySize {
		sort.SliceStable(groups, func(a, b int) bool {
			if order == Descending {
				return len(groups[a].rows.indices) > len(groups[b].rows.indices)
			}
			return len(groups[a].rows.indices) < len(groups[b].rows.indices)
		})
	}
	keyCol := CreateColumn[K](g.keyName)
	countCol := CreateColumn[int64]("count")
	for _, group := range groups {
		if group.missing {
			keyCol.AppendMissing()
		} else {
			keyCol.Append(group.key)
		}
		countCol.Append(int64(len(group.rows.indices)))
	}
	out := CreateDataFrame()
	if err := out.AppendColumn(Erase(keyCol)); err != nil {
		return nil, err
	}
	if err := out.AppendColumn(Erase(countCol)); err != nil {
		return nil, err
	}
	return out, nil
}

// Ungrouped reconstructs a DataFrame as the concatenation of all
// groups' rows in group order, excluding the grouping-key column
func (g *RowGrouping[K]) Ungrouped() (*DataFrame, error) {
	if err := g.valid(); err != nil {
		return nil, err
	}
	indices := make([]int, 0, g.df.RowCount())
	for _, group := range g.groups {
		indices = append(indices, group.rows.indices...)
	}
	keyCol, err := g.df.Column(g.keyName)
	if err != nil {
		return nil, err
	}
	out := CreateDataFrame()
	for _, col := range g.df.cols {
		if col == keyCol {
			continue
		}
		out.insertColumnUnchecked(&ErasedColumn{col: col.col.gatherIndices(col.Name(), indices)}, len(out.cols))
	}
	return out, nil
}

// RandomSplit partitions the groups between two output DataFrames,
// assigning each group to the first output with the given probability.
// Whole groups move together - a group is never split across the two
// outputs. The split is deterministic for a given seed.
func (g *RowGrouping[K]) RandomSplit(proportion float64, seed int64) (*DataFrame, *DataFrame, error) {
	if err := g.valid(); err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	var first, second []int
	for _, group := range g.groups {
		if rng.Float64() < proportion {
			first = append(first, group.rows.indices...)
		} else {
			second = append(second, group.rows.indices...)
		}
	}
	firstFrame := gatherFrame(g.df, first)
	secondFrame := gatherFrame(g.df, second)
	return firstFrame, secondFrame, nil
}

func gatherFrame(df *DataFrame, indices []int) *DataFrame {
	out := CreateDataFrame()
	for _, col := range df.cols {
		out.insertColumnUnchecked(&ErasedColumn{col: col.col.gatherIndices(col.Name(), indices)}, len(out.cols))
	}
	return out
}

func (g *RowGrouping[K]) valid() error {
	if g.gen != g.df.gen {
		return errors.StaleViewError{FrameID: g.df.id}
	}
	return nil
}

// columnFromValues assembles an ErasedColumn from dynamically typed
// optional values, inferring the element type from the first present
// value. nil entries are missing. Every present value must share one
// type. All-missing input defaults to a float column.
func columnFromValues(name string, values []interface{}) (*ErasedColumn, error) {
	var sample interface{}
	for _, v := range values {
		if v != nil {
			sample = v
			break
		}
	}
	switch sample.(type) {
	case nil:
		return typedFromValues[float64](name, values)
	case bool:
		return typedFromValues[bool](name, values)
	case int:
		return typedFromValues[int](name, values)
	case int8:
		return typedFromValues[int8](name, values)
	case int16:
		return typedFromValues[int16](name, values)
	case int32:
		return typedFromValues[int32](name, values)
	case int64:
		return typedFromValues[int64](name, values)
	case uint:
		return typedFromValues[uint](name, values)
	case uint8:
		return typedFromValues[uint8](name, values)
	case uint16:
		return typedFromValues[uint16](name, values)
	case uint32:
		return typedFromValues[uint32](name, values)
	case uint64:
		return typedFromValues[uint64](name, values)
	case float32:
		return typedFromValues[float32](name, values)
	case float64:
		return typedFromValues[float64](name, values)
	case string:
		return typedFromValues[string](name, values)
	case time.Time:
		return typedFromValues[time.Time](name, values)
	case []byte:
		return typedFromValues[[]byte](name, values)
	}
	return nil, errors.TypeMismatchError{Name: name, Expected: "a supported element type", Actual: typeNameOf(sample)}
}

func typedFromValues[T any](name string, values []interface{}) (*ErasedColumn, error) {
	col := CreateColumn[T](name)
	for _, v := range values {
		if v == nil {
			col.AppendMissing()
			continue
		}
		tv, ok := v.(T)
		if !ok {
			return nil, errors.TypeMismatchError{Name: name, Expected: col.typeName(), Actual: typeNameOf(v)}
		}
		col.Append(tv)
	}
	return Erase(col), nil
}
