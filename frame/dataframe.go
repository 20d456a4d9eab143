package frame

import (
	"fmt"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/ndarray"
)

// DataFrame is a 2-D array with labeled rows (index) and columns.
type DataFrame struct {
	index   *Index
	columns *Index
	values  *ndarray.Array
}

// NewDataFrame creates a table over a 2-D values array.
//
// Parameters:
//   - values: rows x columns array, kept as a view
//   - index: row labels, nil for 0..rows-1
//   - columns: column labels, nil for 0..cols-1
//
// Returns:
//   - *DataFrame: the table
//   - error: errs.ErrShapeMismatch when values is not 2-d
//
// Label lengths are validated when the table is encoded, not here.
func NewDataFrame(values *ndarray.Array, index, columns *Index) (*DataFrame, error) {
	if values == nil || values.NDim() != 2 {
		return nil, fmt.Errorf("dataframe values must be 2-d: %w", errs.ErrShapeMismatch)
	}
	if index == nil {
		index = RangeIndex(values.Dim(0))
	}
	if columns == nil {
		columns = RangeIndex(values.Dim(1))
	}

	return &DataFrame{index: index, columns: columns, values: values}, nil
}

// Index returns the row labels.
func (df *DataFrame) Index() *Index { return df.index }

// Columns returns the column labels.
func (df *DataFrame) Columns() *Index { return df.columns }

// Values returns the rows x columns array.
func (df *DataFrame) Values() *ndarray.Array { return df.values }

// Shape returns the number of rows and columns.
func (df *DataFrame) Shape() (rows, cols int) {
	return df.values.Dim(0), df.values.Dim(1)
}

// Row returns row i as a series indexed by the columns and named by its row label.
func (df *DataFrame) Row(i int) (*Series, error) {
	vals, err := df.values.Sub(i)
	if err != nil {
		return nil, err
	}

	var name any
	if i < df.index.Len() {
		name = df.index.At(i)
	}

	return NewSeries(name, vals, df.columns)
}

// Column returns column j as a series indexed by the rows and named by its column label.
func (df *DataFrame) Column(j int) (*Series, error) {
	vals, err := df.values.T().Sub(j)
	if err != nil {
		return nil, err
	}

	var name any
	if j < df.columns.Len() {
		name = df.columns.At(j)
	}

	return NewSeries(name, vals, df.index)
}
