package aggregators

import (
	"github.com/go-frame/frame"
)

// Count returns a new Count Aggregator, which counts the present
// values of a group. The Count of an empty group is 0.
func Count() frame.Aggregator {
	return new(count)
}

type count struct {
	n int64
}

// Accumulate folds one optional value into this Aggregator
func (a *count) Accumulate(value interface{}, present bool) error {
	if present {
		a.n++
	}
	return nil
}

// Result returns the reduced optional value
func (a *count) Result() (interface{}, bool) {
	return a.n, true
}
