package frame

import (
	"fmt"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/ndarray"
)

// Series is a named 1-D array paired with an index.
type Series struct {
	name   any
	index  *Index
	values *ndarray.Array
}

// NewSeries creates a series. A nil index defaults to a range index.
//
// The index length is not checked here; encoding reports a label length
// mismatch when the index is shorter than the values.
func NewSeries(name any, values *ndarray.Array, index *Index) (*Series, error) {
	if values == nil || values.NDim() != 1 {
		return nil, fmt.Errorf("series values must be 1-d: %w", errs.ErrShapeMismatch)
	}
	if index == nil {
		index = RangeIndex(values.Dim(0))
	}

	return &Series{name: name, index: index, values: values}, nil
}

// Name returns the series name, or nil.
func (s *Series) Name() any { return s.name }

// Index returns the row labels.
func (s *Series) Index() *Index { return s.index }

// Values returns the data array.
func (s *Series) Values() *ndarray.Array { return s.values }

// Len returns the number of values.
func (s *Series) Len() int { return s.values.Dim(0) }
