// Package aggregators provides the built-in Aggregators consumed by
// RowGrouping.Aggregate. Each factory returns a fresh Aggregator per
// group; each Aggregator documents its own zero policy for groups
// with no present values.
package aggregators

import (
	"fmt"
)

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

func notNumeric(v interface{}) error {
	return fmt.Errorf("value %#v is not numeric", v)
}
