// Package frame provides labeled one- and two-dimensional containers built on
// ndarray: Index (axis labels), Series (labeled vector) and DataFrame
// (labeled table).
package frame

import (
	"fmt"
	"time"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/ndarray"
)

// Index is a named, ordered sequence of axis labels.
type Index struct {
	name   any
	values *ndarray.Array
}

// NewIndex wraps a 1-D array of labels.
func NewIndex(name any, values *ndarray.Array) (*Index, error) {
	if values == nil || values.NDim() != 1 {
		return nil, fmt.Errorf("index labels must be 1-d: %w", errs.ErrShapeMismatch)
	}

	return &Index{name: name, values: values}, nil
}

// RangeIndex returns the labels 0..n-1.
func RangeIndex(n int) *Index {
	labels := make([]int64, n)
	for i := range labels {
		labels[i] = int64(i)
	}
	arr, _ := ndarray.New(labels)

	return &Index{values: arr}
}

// StringIndex returns an index of string labels.
func StringIndex(labels ...string) *Index {
	values := make([]any, len(labels))
	for i, l := range labels {
		values[i] = l
	}
	arr, _ := ndarray.NewObject(values)

	return &Index{values: arr}
}

// DatetimeIndex returns an index of nanosecond datetime64 labels.
func DatetimeIndex(ts ...time.Time) (*Index, error) {
	arr, err := ndarray.FromTimes(ts, format.UnitNanoseconds)
	if err != nil {
		return nil, err
	}

	return &Index{values: arr}, nil
}

// Name returns the index name, or nil.
func (ix *Index) Name() any { return ix.name }

// WithName returns a copy of ix carrying name.
func (ix *Index) WithName(name any) *Index {
	c := *ix
	c.name = name

	return &c
}

// Values returns the label array.
func (ix *Index) Values() *ndarray.Array { return ix.values }

// Len returns the number of labels.
func (ix *Index) Len() int { return ix.values.Dim(0) }

// At returns label i.
func (ix *Index) At(i int) any { return ix.values.At(i) }
