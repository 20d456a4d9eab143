package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/frame"
)

// Input layouts accepted by -input.
const (
	layoutRecords = "records"
	layoutSplit   = "split"
	layoutValues  = "values"
)

type splitDocument struct {
	Columns []any   `json:"columns"`
	Index   []any   `json:"index"`
	Data    [][]any `json:"data"`
}

// readFrame decodes a table from r. Integral numbers stay int64; other
// numbers become float64.
func readFrame(r io.Reader, layout string) (*frame.DataFrame, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	switch layout {
	case layoutRecords:
		var records []map[string]any
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("decode records: %w", err)
		}
		for _, rec := range records {
			for k, v := range rec {
				rec[k] = normalize(v)
			}
		}

		return frame.FromRecords(records)
	case layoutSplit:
		var doc splitDocument
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode split document: %w", err)
		}
		normalizeRows(doc.Data)

		return frame.FromRows(doc.Data, normalizeAll(doc.Index), normalizeAll(doc.Columns))
	case layoutValues:
		var rows [][]any
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("decode values: %w", err)
		}
		normalizeRows(rows)

		return frame.FromRows(rows, nil, nil)
	default:
		return nil, fmt.Errorf("invalid value '%s' for option 'input': %w", layout, errs.ErrInvalidOption)
	}
}

func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}

		return x.String()
	case []any:
		return normalizeAll(x)
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}

		return x
	default:
		return v
	}
}

func normalizeAll(vs []any) []any {
	for i, v := range vs {
		vs[i] = normalize(v)
	}

	return vs
}

func normalizeRows(rows [][]any) {
	for _, row := range rows {
		normalizeAll(row)
	}
}
