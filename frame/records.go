package frame

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/ndarray"
)

// FromRecords builds a table from row records, as produced by decoding a
// JSON array of objects. Columns are the sorted union of record keys.
// When every present cell is numeric the values are float64 with NaN for
// missing cells; otherwise they are objects with nil for missing cells.
func FromRecords(records []map[string]any) (*DataFrame, error) {
	seen := make(map[string]struct{})
	var names []string
	for _, rec := range records {
		for k := range rec {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				names = append(names, k)
			}
		}
	}
	slices.Sort(names)

	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(names))
		for j, k := range names {
			v, ok := rec[k]
			if !ok {
				v = missing{}
			}
			row[j] = v
		}
		rows[i] = row
	}

	columns := make([]any, len(names))
	for i, n := range names {
		columns[i] = n
	}

	return FromRows(rows, nil, columns)
}

// missing marks a cell absent from its record.
type missing struct{}

// FromRows builds a table from equal-length rows. Nil index or columns
// default to range labels.
func FromRows(rows [][]any, index, columns []any) (*DataFrame, error) {
	nrows := len(rows)
	ncols := len(columns)
	if nrows > 0 && columns == nil {
		ncols = len(rows[0])
	}

	numeric := true
	for i, row := range rows {
		if len(row) != ncols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), ncols, errs.ErrShapeMismatch)
		}
		for _, cell := range row {
			if _, isMissing := cell.(missing); isMissing {
				continue
			}
			if _, ok := toFloat(cell); !ok {
				numeric = false
			}
		}
	}

	var (
		values *ndarray.Array
		err    error
	)
	if numeric {
		data := make([]float64, 0, nrows*ncols)
		for _, row := range rows {
			for _, cell := range row {
				f, ok := toFloat(cell)
				if !ok {
					f = math.NaN()
				}
				data = append(data, f)
			}
		}
		values, err = ndarray.New(data, nrows, ncols)
	} else {
		data := make([]any, 0, nrows*ncols)
		for _, row := range rows {
			for _, cell := range row {
				if _, isMissing := cell.(missing); isMissing {
					cell = nil
				}
				data = append(data, cell)
			}
		}
		values, err = ndarray.NewObject(data, nrows, ncols)
	}
	if err != nil {
		return nil, err
	}

	rowIndex, err := labelIndex(index)
	if err != nil {
		return nil, err
	}
	colIndex, err := labelIndex(columns)
	if err != nil {
		return nil, err
	}

	return NewDataFrame(values, rowIndex, colIndex)
}

func labelIndex(labels []any) (*Index, error) {
	if labels == nil {
		return nil, nil
	}

	arr, err := ndarray.NewObject(labels)
	if err != nil {
		return nil, err
	}

	return NewIndex(nil, arr)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
