// Package stats computes categorical and numeric summaries over
// columns and whole DataFrames. Missing values are ignored throughout.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/go-frame/frame"
	"golang.org/x/sync/errgroup"
)

// CategoricalSummary describes the value distribution of one column
type CategoricalSummary struct {
	Count        int         // number of present values
	UniqueCount  int         // number of distinct present values
	Top          interface{} // the mode, nil when no value is present
	TopFrequency int         // number of occurrences of the mode
}

// NumericSummary describes the moments and range of one numeric
// column. When Count is 0, Mean, Min and Max are 0 and carry no
// meaning. StdDevDefined is false when Count <= ddof - the standard
// deviation is undefined there, never a crash.
type NumericSummary struct {
	Count         int
	Mean          float64
	StdDev        float64
	StdDevDefined bool
	Min           float64
	Max           float64
}

// Categorical summarizes the value distribution of a column of any
// element type. Mode ties break toward the value first encountered in
// index order.
func Categorical(col *frame.ErasedColumn) (CategoricalSummary, error) {
	type tally struct {
		value interface{}
		first int
		freq  int
	}
	tallies := make(map[string]*tally)
	order := make([]*tally, 0)
	summary := CategoricalSummary{}
	for i := 0; i < col.Len(); i++ {
		v, present, err := col.Value(i)
		if err != nil {
			return CategoricalSummary{}, err
		}
		if !present {
			continue
		}
		summary.Count++
		key := encodedKey(v)
		t, ok := tallies[key]
		if !ok {
			t = &tally{value: v, first: i}
			tallies[key] = t
			order = append(order, t)
		}
		t.freq++
	}
	summary.UniqueCount = len(order)
	for _, t := range order {
		if t.freq > summary.TopFrequency {
			summary.Top = t.value
			summary.TopFrequency = t.freq
		}
	}
	return summary, nil
}

// Numeric summarizes a numeric column, ignoring missing values. ddof
// is the delta degrees of freedom of the standard deviation: the
// variance divisor is Count - ddof.
func Numeric(col *frame.ErasedColumn, ddof int) (NumericSummary, error) {
	if col.Kind() != frame.KindInt && col.Kind() != frame.KindFloat {
		return NumericSummary{}, fmt.Errorf("column %s is %s, not numeric", col.Name(), col.Kind())
	}
	values := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		v, present, err := col.Value(i)
		if err != nil {
			return NumericSummary{}, err
		}
		if !present {
			continue
		}
		f, ok := toFloat64(v)
		if !ok {
			return NumericSummary{}, fmt.Errorf("column %s holds non-numeric value %#v", col.Name(), v)
		}
		values = append(values, f)
	}
	summary := NumericSummary{Count: len(values)}
	if len(values) == 0 {
		return summary, nil
	}
	total := 0.0
	summary.Min = values[0]
	summary.Max = values[0]
	for _, f := range values {
		total += f
		if f < summary.Min {
			summary.Min = f
		}
		if f > summary.Max {
			summary.Max = f
		}
	}
	summary.Mean = total / float64(len(values))
	if len(values) > ddof {
		sumsq := 0.0
		for _, f := range values {
			d := f - summary.Mean
			sumsq += d * d
		}
		summary.StdDev = math.Sqrt(sumsq / float64(len(values)-ddof))
		summary.StdDevDefined = true
	}
	return summary, nil
}

// ColumnSummary bundles the summaries of one column. Numeric is nil
// for non-numeric columns.
type ColumnSummary struct {
	Name        string
	Kind        frame.Kind
	Categorical CategoricalSummary
	Numeric     *NumericSummary
}

// Describe summarizes every column of a DataFrame, in column order.
// Columns are summarized concurrently, one goroutine per column; each
// result is computed in isolation, so the output is identical to the
// sequential algorithm.
func Describe(df *frame.DataFrame, ddof int) ([]ColumnSummary, error) {
	cols := df.Columns()
	summaries := make([]ColumnSummary, len(cols))
	var g errgroup.Group
	for i, col := range cols {
		i, col := i, col
		g.Go(func() error {
			summaries[i].Name = col.Name()
			summaries[i].Kind = col.Kind()
			cat, err := Categorical(col)
			if err != nil {
				return err
			}
			summaries[i].Categorical = cat
			if col.Kind() == frame.KindInt || col.Kind() == frame.KindFloat {
				num, err := Numeric(col, ddof)
				if err != nil {
					return err
				}
				summaries[i].Numeric = &num
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// encodedKey produces a map key identifying a present value. Distinct
// values of one column's element type encode distinctly.
func encodedKey(v interface{}) string {
	switch c := v.(type) {
	case string:
		return c
	case []byte:
		return string(c)
	case time.Time:
		return c.UTC().Format(time.RFC3339Nano)
	}
	if f, ok := toFloat64(v); ok {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprintf("%#v", v)
}

// toFloat64 widens any supported numeric value to float64
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
