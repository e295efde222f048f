// Package datasource declares the schema vocabulary shared by the
// parsers under datasource/parser. A parser consumes raw bytes plus
// an ordered list of ColumnDefs and produces a fully-formed DataFrame
// satisfying all DataFrame invariants, or a structured ParseError
// identifying the offending row, column and cell.
package datasource

import (
	"fmt"
	"time"

	"github.com/go-frame/frame"
)

// ColumnDef declares the name and element type of one column to parse
type ColumnDef struct {
	Name       string
	Kind       frame.Kind
	TimeFormat string // layout for KindTime cells. Defaults to time.RFC3339.
}

// Layout returns the time layout for this column's cells
func (d ColumnDef) Layout() string {
	if d.TimeFormat == "" {
		return time.RFC3339
	}
	return d.TimeFormat
}

// EmptyColumn allocates an empty ErasedColumn matching a ColumnDef.
// Integer columns store int64, float columns float64.
func EmptyColumn(def ColumnDef) (*frame.ErasedColumn, error) {
	switch def.Kind {
	case frame.KindBool:
		return frame.Erase(frame.CreateColumn[bool](def.Name)), nil
	case frame.KindInt:
		return frame.Erase(frame.CreateColumn[int64](def.Name)), nil
	case frame.KindFloat:
		return frame.Erase(frame.CreateColumn[float64](def.Name)), nil
	case frame.KindString:
		return frame.Erase(frame.CreateColumn[string](def.Name)), nil
	case frame.KindTime:
		return frame.Erase(frame.CreateColumn[time.Time](def.Name)), nil
	case frame.KindBytes:
		return frame.Erase(frame.CreateColumn[[]byte](def.Name)), nil
	}
	return nil, fmt.Errorf("parsing does not support column kind %s", def.Kind)
}

// ApplyOverrides returns defs with per-column Kind overrides applied
func ApplyOverrides(defs []ColumnDef, overrides map[string]frame.Kind) []ColumnDef {
	if len(overrides) == 0 {
		return defs
	}
	out := make([]ColumnDef, len(defs))
	copy(out, defs)
	for i, def := range out {
		if kind, ok := overrides[def.Name]; ok {
			out[i].Kind = kind
		}
	}
	return out
}

// Keep reports whether a column name passes an allowlist. A nil or
// empty allowlist keeps everything.
func Keep(allowlist []string, name string) bool {
	if len(allowlist) == 0 {
		return true
	}
	for _, allowed := range allowlist {
		if allowed == name {
			return true
		}
	}
	return false
}
