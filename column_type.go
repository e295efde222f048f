package frame

import (
	"bytes"
	"fmt"
	"time"
)

// Kind is a tag identifying the element type stored by a column.
// It allows callers to branch exhaustively over the supported
// primitive types before attempting a typed downcast via As.
type Kind int

const (
	// KindBool indicates a column of boolean values
	KindBool Kind = iota
	// KindInt indicates a column of integer values
	KindInt
	// KindFloat indicates a column of floating-point values
	KindFloat
	// KindString indicates a column of string values
	KindString
	// KindTime indicates a column of time.Time values
	KindTime
	// KindBytes indicates a column of raw byte-slice values
	KindBytes
	// KindOther indicates a column of a caller-defined element type
	KindOther
)

// String returns a string representation of this Kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindBytes:
		return "bytes"
	default:
		return "other"
	}
}

// kindOf derives the Kind tag for a concrete value
func kindOf(v interface{}) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case time.Time:
		return KindTime
	case []byte:
		return KindBytes
	default:
		return KindOther
	}
}

// asInt64 widens any supported integer value to int64
func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// asFloat64 widens any supported numeric value to float64
func asFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// compareValues imposes a total order on two present values of the
// same Kind. bool orders false before true, bytes and strings order
// lexicographically, and KindOther falls back to the encoded key
// representation (arbitrary but total and stable).
func compareValues(a interface{}, b interface{}) int {
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		if !ok {
			break
		}
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case string:
		bv, ok := b.(string)
		if !ok {
			break
		}
		if av < bv {
			return -1
		} else if av > bv {
			return 1
		}
		return 0
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			break
		}
		if av.Before(bv) {
			return -1
		} else if av.After(bv) {
			return 1
		}
		return 0
	case []byte:
		bv, ok := b.([]byte)
		if !ok {
			break
		}
		return bytes.Compare(av, bv)
	}
	if af, aok := asFloat64(a); aok {
		if bf, bok := asFloat64(b); bok {
			if af < bf {
				return -1
			} else if af > bf {
				return 1
			}
			return 0
		}
	}
	return bytes.Compare(encodeValue(a), encodeValue(b))
}

// encodeValue produces a canonical byte representation of a present
// value, used for hashing and equality where the static type is not
// known. Values which are equal under compareValues encode equally
// within a single column.
func encodeValue(v interface{}) []byte {
	switch c := v.(type) {
	case bool:
		if c {
			return []byte{1}
		}
		return []byte{0}
	case string:
		return []byte(c)
	case []byte:
		return c
	case time.Time:
		return []byte(c.UTC().Format(time.RFC3339Nano))
	case float32, float64:
		f, _ := asFloat64(v)
		// -0 compares equal to 0, so both must encode as 0
		if f == 0 {
			f = 0
		}
		return []byte(fmt.Sprintf("%g", f))
	}
	if i, ok := asInt64(v); ok {
		return []byte(fmt.Sprintf("%d", i))
	}
	return []byte(fmt.Sprintf("%#v", v))
}

// formatValue produces a display representation of an optional value
func formatValue(v interface{}, missing bool) string {
	if missing {
		return "<nil>"
	}
	switch c := v.(type) {
	case string:
		return fmt.Sprintf("%q", c)
	case time.Time:
		return fmt.Sprintf("%q", c.Format(time.RFC3339))
	case []byte:
		return fmt.Sprintf("%x", c)
	}
	return fmt.Sprintf("%v", v)
}
