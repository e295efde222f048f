package aggregators

import (
	"github.com/go-frame/frame"
)

// Sum returns a new Sum Aggregator, which totals the present numeric
// values of a group. The Sum of an empty group is 0, not missing.
func Sum() frame.Aggregator {
	return new(sum)
}

type sum struct {
	total float64
}

// Accumulate folds one optional value into this Aggregator
func (a *sum) Accumulate(value interface{}, present bool) error {
	if !present {
		return nil
	}
	f, ok := toFloat64(value)
	if !ok {
		return notNumeric(value)
	}
	a.total += f
	return nil
}

// Result returns the reduced optional value
func (a *sum) Result() (interface{}, bool) {
	return a.total, true
}
