package aggregators

import (
	"github.com/go-frame/frame"
)

// Mean returns a new Mean Aggregator, which averages the present
// numeric values of a group. The Mean of an empty group is missing.
func Mean() frame.Aggregator {
	return new(mean)
}

type mean struct {
	total float64
	n     int64
}

// Accumulate folds one optional value into this Aggregator
func (a *mean) Accumulate(value interface{}, present bool) error {
	if !present {
		return nil
	}
	f, ok := toFloat64(value)
	if !ok {
		return notNumeric(value)
	}
	a.total += f
	a.n++
	return nil
}

// Result returns the reduced optional value
func (a *mean) Result() (interface{}, bool) {
	if a.n == 0 {
		return nil, false
	}
	return a.total / float64(a.n), true
}
