package frame

// Aggregator reduces the optional values of one group's column down
// to a single optional value. RowGrouping.Aggregate feeds each
// group's values to a fresh Aggregator in original row order, then
// reads the result. Built-in Aggregators live in the aggregators
// package; each documents its own zero policy for empty input.
type Aggregator interface {
	Accumulate(value interface{}, present bool) error // Accumulate folds one optional value into this Aggregator
	Result() (value interface{}, present bool)        // Result returns the reduced optional value
}
