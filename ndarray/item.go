package ndarray

import (
	"github.com/arloliu/framejson/temporal"
)

// Item returns the element stored at storage position pos, boxed.
// Datetime64 and timedelta64 elements come back as temporal values.
func (a *Array) Item(pos int) any {
	switch d := a.data.(type) {
	case []bool:
		return d[pos]
	case []int:
		return d[pos]
	case []int8:
		return d[pos]
	case []int16:
		return d[pos]
	case []int32:
		return d[pos]
	case []int64:
		switch a.dtype {
		case Datetime64:
			return temporal.Datetime64{Value: d[pos], Unit: a.unit}
		case Timedelta64:
			return temporal.Timedelta64{Value: d[pos], Unit: a.unit}
		default:
			return d[pos]
		}
	case []uint:
		return d[pos]
	case []uint8:
		return d[pos]
	case []uint16:
		return d[pos]
	case []uint32:
		return d[pos]
	case []uint64:
		return d[pos]
	case []float32:
		return d[pos]
	case []float64:
		return d[pos]
	case []complex128:
		return d[pos]
	case []any:
		return d[pos]
	default:
		return nil
	}
}

// BoolAt returns the boolean stored at pos. Numeric elements report whether they are non-zero.
func (a *Array) BoolAt(pos int) bool {
	if d, ok := a.data.([]bool); ok {
		return d[pos]
	}
	if a.dtype.Kind() == KindUint {
		return a.UintAt(pos) != 0
	}

	return a.IntAt(pos) != 0
}

// IntAt returns the signed integer stored at pos. Datetime64 and timedelta64
// arrays report their raw tick count.
func (a *Array) IntAt(pos int) int64 {
	switch d := a.data.(type) {
	case []int:
		return int64(d[pos])
	case []int8:
		return int64(d[pos])
	case []int16:
		return int64(d[pos])
	case []int32:
		return int64(d[pos])
	case []int64:
		return d[pos]
	case []uint8:
		return int64(d[pos])
	case []uint16:
		return int64(d[pos])
	case []uint32:
		return int64(d[pos])
	case []bool:
		if d[pos] {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// UintAt returns the unsigned integer stored at pos.
func (a *Array) UintAt(pos int) uint64 {
	switch d := a.data.(type) {
	case []uint:
		return uint64(d[pos])
	case []uint8:
		return uint64(d[pos])
	case []uint16:
		return uint64(d[pos])
	case []uint32:
		return uint64(d[pos])
	case []uint64:
		return d[pos]
	default:
		return uint64(a.IntAt(pos)) //nolint:gosec
	}
}

// FloatAt returns the floating point value stored at pos.
func (a *Array) FloatAt(pos int) float64 {
	switch d := a.data.(type) {
	case []float32:
		return float64(d[pos])
	case []float64:
		return d[pos]
	default:
		if a.dtype.Kind() == KindUint {
			return float64(a.UintAt(pos))
		}
		return float64(a.IntAt(pos))
	}
}
