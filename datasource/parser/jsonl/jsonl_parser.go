// Package jsonl parses JSON Lines data into DataFrames. This parser
// uses https://github.com/tidwall/gjson to process data, and supports
// column names formatted as gjson paths.
package jsonl

import (
	"bufio"
	"io"
	"strings"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/datasource"
	"github.com/go-frame/frame/logging"
	lz4 "github.com/pierrec/lz4"
)

// ParserConf configures a JSONL Parser, suitable for JSON Lines data
type ParserConf struct {
	HeaderLines   int                   // The number of lines to ignore from the beginning of the input. Defaults to 0.
	Comment       rune                  // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int                   // Maximum size in bytes of the buffer used to read lines.
	Columns       []string              // An allowlist of column paths to retain. Defaults to retaining every declared column.
	RowOffset     int                   // The number of data rows to skip after the header. Defaults to 0.
	RowLimit      int                   // The maximum number of data rows to parse. Defaults to no limit.
	Overrides     map[string]frame.Kind // Per-column element type overrides applied to the declared schema.
	Compressed    bool                  // Whether the input is an lz4 stream. Defaults to false.
	Log           *logging.Logger       // Optional destination for parse diagnostics.
}

// Parser produces DataFrames from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are located within
// each line of JSON using their declared name, which should be a
// gjson path. Values within the JSON which do not correspond to a
// declared column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data against an ordered column declaration,
// producing a DataFrame which satisfies all DataFrame invariants. Any
// cell which cannot be converted to its column's element type aborts
// with a ParseError naming the row, column and raw content.
func (p *Parser) Parse(r io.Reader, defs []datasource.ColumnDef) (*frame.DataFrame, error) {
	if p.conf.Compressed {
		r = lz4.NewReader(r)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)

	defs = datasource.ApplyOverrides(defs, p.conf.Overrides)
	cols := make([]*frame.ErasedColumn, 0, len(defs))
	kept := make([]datasource.ColumnDef, 0, len(defs))
	for _, def := range defs {
		if !datasource.Keep(p.conf.Columns, def.Name) {
			continue
		}
		col, err := datasource.EmptyColumn(def)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		kept = append(kept, def)
	}

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	rowNum := 0
	parsed := 0
	for scanner.Scan() {
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if p.conf.Comment != 0 && strings.HasPrefix(line, string(p.conf.Comment)) {
			continue
		}
		rowNum++
		if rowNum <= p.conf.RowOffset {
			continue
		}
		if p.conf.RowLimit > 0 && parsed >= p.conf.RowLimit {
			break
		}
		if err := scanLine(line, rowNum, kept, cols, p.conf.Log); err != nil {
			return nil, err
		}
		parsed++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	p.conf.Log.Debug("jsonl: parsed %d rows across %d columns", parsed, len(cols))
	df := frame.CreateDataFrame()
	for _, col := range cols {
		if err := df.AppendColumn(col); err != nil {
			return nil, err
		}
	}
	return df, nil
}
