package aggregators

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-frame/frame"
)

// Min returns a new Min Aggregator, which keeps the smallest present
// value of a group, preserving its original type. The Min of an empty
// group is missing. Ties keep the first value encountered.
func Min() frame.Aggregator {
	return &extremum{sign: -1}
}

// Max returns a new Max Aggregator, which keeps the largest present
// value of a group, preserving its original type. The Max of an empty
// group is missing. Ties keep the first value encountered.
func Max() frame.Aggregator {
	return &extremum{sign: 1}
}

type extremum struct {
	sign int
	best interface{}
	seen bool
}

// Accumulate folds one optional value into this Aggregator
func (a *extremum) Accumulate(value interface{}, present bool) error {
	if !present {
		return nil
	}
	if !a.seen {
		a.best = value
		a.seen = true
		return nil
	}
	c, err := compare(value, a.best)
	if err != nil {
		return err
	}
	if c*a.sign > 0 {
		a.best = value
	}
	return nil
}

// Result returns the reduced optional value
func (a *extremum) Result() (interface{}, bool) {
	if !a.seen {
		return nil, false
	}
	return a.best, true
}

// compare orders two present values of one column's element type
func compare(a interface{}, b interface{}) (int, error) {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, fmt.Errorf("cannot compare %T with %T", a, b)
		}
		if av < bv {
			return -1, nil
		} else if av > bv {
			return 1, nil
		}
		return 0, nil
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, fmt.Errorf("cannot compare %T with %T", a, b)
		}
		if av.Before(bv) {
			return -1, nil
		} else if av.After(bv) {
			return 1, nil
		}
		return 0, nil
	case []byte:
		bv, ok := b.([]byte)
		if !ok {
			return 0, fmt.Errorf("cannot compare %T with %T", a, b)
		}
		return bytes.Compare(av, bv), nil
	}
	af, aok := toFloat64(a)
	bf, bok := toFloat64(b)
	if !aok || !bok {
		return 0, fmt.Errorf("cannot compare %T with %T", a, b)
	}
	if af < bf {
		return -1, nil
	} else if af > bf {
		return 1, nil
	}
	return 0, nil
}
