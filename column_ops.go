package frame

// Number constrains the element types eligible for columnar arithmetic
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ordered constrains the element types eligible for scalar comparison
type Ordered interface {
	Number | ~string
}

// Map produces a new Column by applying f to every value of col. f
// receives the value and its presence flag and returns the mapped
// value with its own presence flag, so mappings may introduce or
// clear missing values.
func Map[T any, U any](col *Column[T], name string, f func(value T, present bool) (U, bool)) *Column[U] {
	mapped := &Column[U]{
		name:    name,
		values:  make([]U, len(col.values)),
		missing: make([]bool, len(col.values)),
	}
	for i, v := range col.values {
		u, present := f(v, !col.missing[i])
		mapped.values[i] = u
		mapped.missing[i] = !present
	}
	return mapped
}

// AddAssign adds v to every present value of col in place
func AddAssign[T Number](col *Column[T], v T) {
	for i := range col.values {
		if !col.missing[i] {
			col.values[i] += v
		}
	}
}

// SubAssign subtracts v from every present value of col in place
func SubAssign[T Number](col *Column[T], v T) {
	for i := range col.values {
		if !col.missing[i] {
			col.values[i] -= v
		}
	}
}

// MulAssign multiplies every present value of col by v in place
func MulAssign[T Number](col *Column[T], v T) {
	for i := range col.values {
		if !col.missing[i] {
			col.values[i] *= v
		}
	}
}

// DivAssign divides every present value of col by v in place. For
// integer element types a zero divisor is a domain error surfaced
// per-element as missing, never a panic. Floating-point columns
// follow IEEE semantics.
func DivAssign[T Number](col *Column[T], v T) {
	var zero T
	if v == zero && isIntegerValued(any(zero)) {
		for i := range col.values {
			if !col.missing[i] {
				col.values[i] = zero
				col.missing[i] = true
			}
		}
		return
	}
	for i := range col.values {
		if !col.missing[i] {
			col.values[i] /= v
		}
	}
}

func isIntegerValued(v interface{}) bool {
	switch v.(type) {
	case float32, float64:
		return false
	}
	return true
}

// Lt compares every value of col against v, producing one bool per
// position. Missing values compare false under every operator.
func Lt[T Ordered](col *Column[T], v T) []bool {
	return compareScalar(col, func(c T) bool { return c < v })
}

// Le compares every value of col against v, producing one bool per position
func Le[T Ordered](col *Column[T], v T) []bool {
	return compareScalar(col, func(c T) bool { return c <= v })
}

// Gt compares every value of col against v, producing one bool per position
func Gt[T Ordered](col *Column[T], v T) []bool {
	return compareScalar(col, func(c T) bool { return c > v })
}

// Ge compares every value of col against v, producing one bool per position
func Ge[T Ordered](col *Column[T], v T) []bool {
	return compareScalar(col, func(c T) bool { return c >= v })
}

// Eq compares every value of col against v, producing one bool per position
func Eq[T comparable](col *Column[T], v T) []bool {
	return compareScalar(col, func(c T) bool { return c == v })
}

// Ne compares every value of col against v, producing one bool per
// position. A missing value is neither equal nor unequal to anything,
// so Ne reports false for it, same as every other operator.
func Ne[T comparable](col *Column[T], v T) []bool {
	return compareScalar(col, func(c T) bool { return c != v })
}

func compareScalar[T any](col *Column[T], cmp func(T) bool) []bool {
	out := make([]bool, len(col.values))
	for i, c := range col.values {
		if !col.missing[i] {
			out[i] = cmp(c)
		}
	}
	return out
}

// Sum totals the present values of col. The sum of an empty or
// all-missing column is 0.
func Sum[T Number](col *Column[T]) T {
	var total T
	for i, v := range col.values {
		if !col.missing[i] {
			total += v
		}
	}
	return total
}

// Mean averages the present values of col. present is false when no
// value is present.
func Mean[T Number](col *Column[T]) (mean float64, present bool) {
	var total float64
	count := 0
	for i, v := range col.values {
		if !col.missing[i] {
			total += float64(v)
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}
