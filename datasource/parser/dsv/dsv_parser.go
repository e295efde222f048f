// Package dsv parses delimiter-separated (CSV-style) data into
// DataFrames.
package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/datasource"
	"github.com/go-frame/frame/logging"
	lz4 "github.com/pierrec/lz4"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int                   // The number of lines to ignore from the beginning of the input. Defaults to 0.
	Delimiter   rune                  // The delimiter separating columns. Defaults to ,
	Comment     rune                  // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string                // A special string which represents missing values in the dataset. Defaults to "" (the empty string).
	Columns     []string              // An allowlist of column names to retain. Defaults to retaining every declared column.
	RowOffset   int                   // The number of data rows to skip after the header. Defaults to 0.
	RowLimit    int                   // The maximum number of data rows to parse. Defaults to no limit.
	Overrides   map[string]frame.Kind // Per-column element type overrides applied to the declared schema.
	Compressed  bool                  // Whether the input is an lz4 stream. Defaults to false.
	Log         *logging.Logger       // Optional destination for parse diagnostics.
}

// Parser produces DataFrames from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data against an ordered column declaration,
// producing a DataFrame which satisfies all DataFrame invariants. Any
// unparseable cell aborts with a ParseError naming the row, column
// and raw content.
func (p *Parser) Parse(r io.Reader, defs []datasource.ColumnDef) (*frame.DataFrame, error) {
	if p.conf.Compressed {
		r = lz4.NewReader(r)
	}
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = len(defs)
	reader.ReuseRecord = true

	defs = datasource.ApplyOverrides(defs, p.conf.Overrides)
	cols := make([]*frame.ErasedColumn, 0, len(defs))
	keep := make([]bool, len(defs))
	for i, def := range defs {
		keep[i] = datasource.Keep(p.conf.Columns, def.Name)
		if !keep[i] {
			continue
		}
		col, err := datasource.EmptyColumn(def)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	rowNum := 0
	parsed := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rowNum++
		if rowNum <= p.conf.RowOffset {
			continue
		}
		if p.conf.RowLimit > 0 && parsed >= p.conf.RowLimit {
			break
		}
		out := 0
		for i, def := range defs {
			if !keep[i] {
				continue
			}
			if err := scanCell(p.conf, def, record[i], rowNum, cols[out]); err != nil {
				return nil, err
			}
			out++
		}
		parsed++
	}
	p.conf.Log.Debug("dsv: parsed %d rows across %d columns", parsed, len(cols))
	df := frame.CreateDataFrame()
	for _, col := range cols {
		if err := df.AppendColumn(col); err != nil {
			return nil, err
		}
	}
	return df, nil
}
