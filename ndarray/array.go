// Package ndarray provides typed, strided N-dimensional arrays.
//
// An Array never copies its backing slice for views: transposition, axis
// selection and reshaping of contiguous data only rewrite the shape, strides
// and offset. Strides are counted in elements and may be negative.
package ndarray

import (
	"fmt"
	"time"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/temporal"
)

// Element is the set of Go types an Array can hold natively.
type Element interface {
	bool | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64 | complex128
}

// Array is an N-dimensional view over a typed backing slice.
type Array struct {
	dtype   DType
	unit    format.DateUnit // datetime64 and timedelta64 only
	data    any
	length  int
	offset  int
	shape   []int
	strides []int
}

// New creates an array over data. With no shape the array is 1-D.
//
// Parameters:
//   - data: backing slice, retained without copying
//   - shape: axis lengths; their product must equal len(data)
//
// Returns:
//   - *Array: row-major view over data
//   - error: errs.ErrShapeMismatch when shape does not cover data exactly
func New[T Element](data []T, shape ...int) (*Array, error) {
	return newArray(dtypeOf(data), 0, data, len(data), shape)
}

// Scalar creates a rank-0 array holding v.
func Scalar[T Element](v T) *Array {
	data := []T{v}

	return &Array{dtype: dtypeOf(data), data: data, length: 1}
}

// NewDatetime creates a datetime64 array of epoch offsets counted in unit.
// temporal.NaTValue marks missing entries.
func NewDatetime(values []int64, unit format.DateUnit, shape ...int) (*Array, error) {
	if !unit.Valid() {
		return nil, fmt.Errorf("datetime64 unit %d: %w", unit, errs.ErrInvalidOption)
	}

	return newArray(Datetime64, unit, values, len(values), shape)
}

// NewTimedelta creates a timedelta64 array of durations counted in unit.
func NewTimedelta(values []int64, unit format.DateUnit, shape ...int) (*Array, error) {
	if !unit.Valid() {
		return nil, fmt.Errorf("timedelta64 unit %d: %w", unit, errs.ErrInvalidOption)
	}

	return newArray(Timedelta64, unit, values, len(values), shape)
}

// NewObject creates an array of arbitrary values.
func NewObject(values []any, shape ...int) (*Array, error) {
	return newArray(Object, 0, values, len(values), shape)
}

// FromTimes converts ts into a 1-D datetime64 array in unit.
// Zero times become NaT.
func FromTimes(ts []time.Time, unit format.DateUnit) (*Array, error) {
	values := make([]int64, len(ts))
	for i, t := range ts {
		if t.IsZero() {
			values[i] = temporal.NaTValue
			continue
		}

		v, err := temporal.EpochIn(t, unit)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return NewDatetime(values, unit)
}

func newArray(dtype DType, unit format.DateUnit, data any, n int, shape []int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{n}
	}

	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("negative dimension %d in shape %v: %w", d, shape, errs.ErrShapeMismatch)
		}
		size *= d
	}
	if size != n {
		return nil, fmt.Errorf("cannot view %d elements as shape %v: %w", n, shape, errs.ErrShapeMismatch)
	}

	s := append([]int(nil), shape...)

	return &Array{
		dtype:   dtype,
		unit:    unit,
		data:    data,
		length:  n,
		shape:   s,
		strides: rowMajorStrides(s),
	}, nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= max(shape[i], 1)
	}

	return strides
}

func dtypeOf(data any) DType {
	switch data.(type) {
	case []bool:
		return Bool
	case []int8:
		return Int8
	case []int16:
		return Int16
	case []int32:
		return Int32
	case []int, []int64:
		return Int64
	case []uint8:
		return Uint8
	case []uint16:
		return Uint16
	case []uint32:
		return Uint32
	case []uint, []uint64:
		return Uint64
	case []float32:
		return Float32
	case []float64:
		return Float64
	case []complex128:
		return Complex128
	default:
		return Object
	}
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Unit returns the tick unit of datetime64 and timedelta64 arrays.
func (a *Array) Unit() format.DateUnit { return a.unit }

// NDim returns the number of axes.
func (a *Array) NDim() int { return len(a.shape) }

// Shape returns a copy of the axis lengths.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Strides returns a copy of the per-axis element strides.
func (a *Array) Strides() []int { return append([]int(nil), a.strides...) }

// Dim returns the length of axis i.
func (a *Array) Dim(i int) int { return a.shape[i] }

// Stride returns the element stride of axis i.
func (a *Array) Stride(i int) int { return a.strides[i] }

// Offset returns the storage position of the first element.
func (a *Array) Offset() int { return a.offset }

// Size returns the number of elements in the view.
func (a *Array) Size() int {
	size := 1
	for _, d := range a.shape {
		size *= d
	}

	return size
}

// T returns a transposed view: axes in reverse order, no data copied.
func (a *Array) T() *Array {
	t := *a
	n := len(a.shape)
	t.shape = make([]int, n)
	t.strides = make([]int, n)
	for i := range n {
		t.shape[i] = a.shape[n-1-i]
		t.strides[i] = a.strides[n-1-i]
	}

	return &t
}

// Sub returns the view at position i of axis 0, with that axis removed.
func (a *Array) Sub(i int) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("cannot index a 0d array: %w", errs.ErrShapeMismatch)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, fmt.Errorf("index %d out of bounds for axis 0 with size %d: %w", i, a.shape[0], errs.ErrShapeMismatch)
	}

	s := *a
	s.offset = a.offset + i*a.strides[0]
	s.shape = append([]int(nil), a.shape[1:]...)
	s.strides = append([]int(nil), a.strides[1:]...)

	return &s, nil
}

// Reshape returns a view with a new shape. Non-contiguous views are copied first.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	src := a
	if !a.IsContiguous() {
		src = a.Copy()
	}

	r, err := newArray(src.dtype, src.unit, src.data, src.Size(), shape)
	if err != nil {
		return nil, err
	}
	r.data = src.data
	r.length = src.length
	r.offset = src.offset

	return r, nil
}

// IsContiguous reports whether the view walks its storage in row-major order without gaps.
func (a *Array) IsContiguous() bool {
	want := rowMajorStrides(a.shape)
	for i, s := range a.strides {
		if a.shape[i] > 1 && s != want[i] {
			return false
		}
	}

	return true
}

// Positions returns the storage position of every element in row-major order.
func (a *Array) Positions() []int {
	out := make([]int, 0, a.Size())
	if a.Size() == 0 {
		return out
	}

	idx := make([]int, len(a.shape))
	pos := a.offset
	for {
		out = append(out, pos)

		axis := len(idx) - 1
		for ; axis >= 0; axis-- {
			idx[axis]++
			pos += a.strides[axis]
			if idx[axis] < a.shape[axis] {
				break
			}
			pos -= a.strides[axis] * idx[axis]
			idx[axis] = 0
		}
		if axis < 0 {
			return out
		}
	}
}

// Copy returns a contiguous row-major copy of the view.
func (a *Array) Copy() *Array {
	positions := a.Positions()
	c := &Array{
		dtype:   a.dtype,
		unit:    a.unit,
		data:    gather(a.data, positions),
		length:  len(positions),
		shape:   a.Shape(),
		strides: rowMajorStrides(a.shape),
	}

	return c
}

// Values returns every element of the view in row-major order, boxed.
func (a *Array) Values() []any {
	positions := a.Positions()
	out := make([]any, len(positions))
	for i, pos := range positions {
		out[i] = a.Item(pos)
	}

	return out
}

// At returns the element at the given multi-index. It panics on a wrong
// index count or an out-of-range index, as slice indexing does.
func (a *Array) At(idx ...int) any {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for %d-d array", len(idx), len(a.shape)))
	}

	pos := a.offset
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %d with size %d", v, i, a.shape[i]))
		}
		pos += v * a.strides[i]
	}

	return a.Item(pos)
}

func gather(data any, positions []int) any {
	switch d := data.(type) {
	case []bool:
		return gatherSlice(d, positions)
	case []int:
		return gatherSlice(d, positions)
	case []int8:
		return gatherSlice(d, positions)
	case []int16:
		return gatherSlice(d, positions)
	case []int32:
		return gatherSlice(d, positions)
	case []int64:
		return gatherSlice(d, positions)
	case []uint:
		return gatherSlice(d, positions)
	case []uint8:
		return gatherSlice(d, positions)
	case []uint16:
		return gatherSlice(d, positions)
	case []uint32:
		return gatherSlice(d, positions)
	case []uint64:
		return gatherSlice(d, positions)
	case []float32:
		return gatherSlice(d, positions)
	case []float64:
		return gatherSlice(d, positions)
	case []complex128:
		return gatherSlice(d, positions)
	case []any:
		return gatherSlice(d, positions)
	default:
		return nil
	}
}

func gatherSlice[T any](src []T, positions []int) []T {
	out := make([]T, len(positions))
	for i, pos := range positions {
		out[i] = src[pos]
	}

	return out
}
