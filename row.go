package frame

import (
	"strings"
	"time"

	errors "github.com/go-frame/frame/errors"
)

// Row is a logical view over a single row of a DataFrame, valid only
// while its index remains within the frame's row count. In practice,
// users of Row call its getter and setter methods to retrieve,
// manipulate and store data by column name.
type Row struct {
	df  *DataFrame
	idx int
}

// Index returns the row position this Row views
func (r Row) Index() int {
	return r.idx
}

// IsNil returns true iff the given column value is missing in this
// row. If an error occurs, this function will return false.
func (r Row) IsNil(colName string) bool {
	col, err := r.df.findColumn(colName)
	if err != nil || r.idx >= col.Len() {
		return false
	}
	_, present := col.col.valueAt(r.idx)
	return !present
}

// SetNil marks the given column value missing within this row
func (r Row) SetNil(colName string) error {
	col, err := r.df.findColumn(colName)
	if err != nil {
		return err
	}
	return col.SetValue(r.idx, nil)
}

// Get returns the value of any column as an interface{}, if it
// exists. A missing value is returned as nil.
func (r Row) Get(colName string) (interface{}, error) {
	col, err := r.df.findColumn(colName)
	if err != nil {
		return nil, err
	}
	v, _, err := col.Value(r.idx)
	return v, err
}

// Set overwrites the value of the named column within this row. A nil
// value marks it missing.
func (r Row) Set(colName string, value interface{}) error {
	col, err := r.df.findColumn(colName)
	if err != nil {
		return err
	}
	return col.SetValue(r.idx, value)
}

// GetBool retrieves a single bool from the column with the given name
func (r Row) GetBool(colName string) (bool, error) {
	v, err := r.presentValue(colName)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.TypeMismatchError{Name: colName, Expected: typeNameOf(v), Actual: "bool"}
	}
	return b, nil
}

// GetInt retrieves a single integer from the column with the given
// name, widened to int64
func (r Row) GetInt(colName string) (int64, error) {
	v, err := r.presentValue(colName)
	if err != nil {
		return 0, err
	}
	i, ok := asInt64(v)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: typeNameOf(v), Actual: "int64"}
	}
	return i, nil
}

// GetFloat retrieves a single numeric value from the column with the
// given name, widened to float64
func (r Row) GetFloat(colName string) (float64, error) {
	v, err := r.presentValue(colName)
	if err != nil {
		return 0, err
	}
	f, ok := asFloat64(v)
	if !ok {
		return 0, errors.TypeMismatchError{Name: colName, Expected: typeNameOf(v), Actual: "float64"}
	}
	return f, nil
}

// GetString retrieves a single string from the column with the given name
func (r Row) GetString(colName string) (string, error) {
	v, err := r.presentValue(colName)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.TypeMismatchError{Name: colName, Expected: typeNameOf(v), Actual: "string"}
	}
	return s, nil
}

// GetTime retrieves a single time.Time from the column with the given name
func (r Row) GetTime(colName string) (time.Time, error) {
	v, err := r.presentValue(colName)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, errors.TypeMismatchError{Name: colName, Expected: typeNameOf(v), Actual: "time.Time"}
	}
	return t, nil
}

// GetBytes retrieves a byte slice from the column with the given name
func (r Row) GetBytes(colName string) ([]byte, error) {
	v, err := r.presentValue(colName)
	if err != nil {
		return nil, err
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, errors.TypeMismatchError{Name: colName, Expected: typeNameOf(v), Actual: "[]byte"}
	}
	return b, nil
}

func (r Row) presentValue(colName string) (interface{}, error) {
	col, err := r.df.findColumn(colName)
	if err != nil {
		return nil, err
	}
	v, present, err := col.Value(r.idx)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, errors.MissingValueError{Name: colName}
	}
	return v, nil
}

// ToString returns a string representation of this Row
func (r Row) ToString() string {
	var res strings.Builder
	res.WriteString("{")
	for i, col := range r.df.cols {
		if i > 0 {
			res.WriteString(", ")
		}
		v, present := col.col.valueAt(r.idx)
		res.WriteString(col.Name())
		res.WriteString(": ")
		res.WriteString(formatValue(v, !present))
	}
	res.WriteString("}")
	return res.String()
}
