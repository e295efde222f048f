package jsonl

import (
	"math"
	"time"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/datasource"
	errors "github.com/go-frame/frame/errors"
	"github.com/go-frame/frame/logging"
	"github.com/tidwall/gjson"
)

// scanLine locates and parses every declared column within one line
// of JSON, appending one value per column
func scanLine(line string, rowNum int, defs []datasource.ColumnDef, cols []*frame.ErasedColumn, log *logging.Logger) error {
	for i, def := range defs {
		res := gjson.Get(line, def.Name)
		if !res.Exists() || res.Type == gjson.Null {
			if err := cols[i].AppendValue(nil); err != nil {
				return err
			}
			continue
		}
		v, err := convertResult(res, def, rowNum, log)
		if err != nil {
			return err
		}
		if err := cols[i].AppendValue(v); err != nil {
			return err
		}
	}
	return nil
}

// convertResult converts a located JSON value to a column's element type
func convertResult(res gjson.Result, def datasource.ColumnDef, rowNum int, log *logging.Logger) (interface{}, error) {
	switch def.Kind {
	case frame.KindBool:
		if res.Type != gjson.True && res.Type != gjson.False {
			return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "not a boolean"}
		}
		return res.Bool(), nil
	case frame.KindInt:
		if res.Type != gjson.Number {
			return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "not a number"}
		}
		if res.Num != math.Trunc(res.Num) {
			log.Warn("jsonl: row %d, column %s: truncating %s to an integer", rowNum, def.Name, res.Raw)
		}
		return res.Int(), nil
	case frame.KindFloat:
		if res.Type != gjson.Number {
			return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "not a number"}
		}
		return res.Float(), nil
	case frame.KindString:
		if res.Type != gjson.String {
			return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "not a string"}
		}
		return res.String(), nil
	case frame.KindTime:
		if res.Type != gjson.String {
			return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "not a datetime string"}
		}
		tval, err := time.Parse(def.Layout(), res.String())
		if err != nil {
			return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "not a datetime with format " + def.Layout()}
		}
		return tval, nil
	case frame.KindBytes:
		if res.Type != gjson.String {
			return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "not a string"}
		}
		return []byte(res.String()), nil
	}
	return nil, errors.ParseError{Row: rowNum, Column: def.Name, Raw: res.Raw, Reason: "unsupported column kind " + def.Kind.String()}
}
