package dsv

import (
	"strconv"
	"time"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/datasource"
	errors "github.com/go-frame/frame/errors"
)

// scanCell parses one raw cell into a typed column value and appends
// it to col
func scanCell(conf *ParserConf, def datasource.ColumnDef, cell string, rowNum int, col *frame.ErasedColumn) error {
	// check for a missing value
	if len(cell) == 0 || cell == conf.NilValue {
		return col.AppendValue(nil)
	}
	switch def.Kind {
	case frame.KindBool:
		bval, err := strconv.ParseBool(cell)
		if err != nil {
			return errors.ParseError{Row: rowNum, Column: def.Name, Raw: cell, Reason: "not a boolean"}
		}
		return col.AppendValue(bval)
	case frame.KindInt:
		ival, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return errors.ParseError{Row: rowNum, Column: def.Name, Raw: cell, Reason: "not an integer"}
		}
		return col.AppendValue(ival)
	case frame.KindFloat:
		fval, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return errors.ParseError{Row: rowNum, Column: def.Name, Raw: cell, Reason: "not a number"}
		}
		return col.AppendValue(fval)
	case frame.KindString:
		return col.AppendValue(cell)
	case frame.KindTime:
		tval, err := time.Parse(def.Layout(), cell)
		if err != nil {
			return errors.ParseError{Row: rowNum, Column: def.Name, Raw: cell, Reason: "not a datetime with format " + def.Layout()}
		}
		return col.AppendValue(tval)
	case frame.KindBytes:
		return col.AppendValue([]byte(cell))
	}
	return errors.ParseError{Row: rowNum, Column: def.Name, Raw: cell, Reason: "unsupported column kind " + def.Kind.String()}
}
