package encoder

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/ndarray"
	"github.com/arloliu/framejson/temporal"
)

// encodeScalar writes v when it has an exact scalar type and reports whether it did.
func (s *session) encodeScalar(v any) (bool, error) {
	switch x := v.(type) {
	case string:
		return true, s.out.OnString(x)
	case []byte:
		return true, s.out.OnString(string(x))
	case int:
		return true, s.out.OnInt64(int64(x))
	case int8:
		return true, s.out.OnInt64(int64(x))
	case int16:
		return true, s.out.OnInt64(int64(x))
	case int32:
		return true, s.out.OnInt64(int64(x))
	case int64:
		return true, s.out.OnInt64(x)
	case uint:
		return true, s.encodeUint(uint64(x))
	case uint8:
		return true, s.out.OnInt64(int64(x))
	case uint16:
		return true, s.out.OnInt64(int64(x))
	case uint32:
		return true, s.out.OnInt64(int64(x))
	case uint64:
		return true, s.encodeUint(x)
	case float32:
		return true, s.encodeFloat(float64(x))
	case float64:
		return true, s.encodeFloat(x)
	case *big.Int:
		return true, s.encodeBigInt(x)
	case *big.Float:
		if x == nil {
			return true, s.out.OnNil()
		}
		f, _ := x.Float64()

		return true, s.encodeFloat(f)
	case *big.Rat:
		if x == nil {
			return true, s.out.OnNil()
		}
		f, _ := x.Float64()

		return true, s.encodeFloat(f)
	case time.Time:
		return true, s.encodeTime(x)
	case temporal.Date:
		return true, s.encodeTime(x.Time())
	case temporal.Clock:
		return true, s.out.OnString(x.String())
	case time.Duration:
		return true, s.out.OnInt64(temporal.DurationIn(int64(x), s.cfg.dateUnit))
	case temporal.Datetime64:
		return true, s.encodeDatetime64(x)
	case temporal.Timedelta64:
		return true, s.encodeTimedelta64(x)
	case temporal.NaTType:
		return true, s.out.OnNil()
	default:
		return false, nil
	}
}

// encodeKind writes named types whose underlying kind is a scalar.
func (s *session) encodeKind(rv reflect.Value) (bool, error) {
	switch rv.Kind() { //nolint: exhaustive
	case reflect.Bool:
		return true, s.out.OnBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true, s.out.OnInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true, s.encodeUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return true, s.encodeFloat(rv.Float())
	case reflect.String:
		return true, s.out.OnString(rv.String())
	default:
		return false, nil
	}
}

func (s *session) encodeUint(v uint64) error {
	if v > math.MaxInt64 {
		return fmt.Errorf("integer %d: %w", v, errs.ErrNumericOverflow)
	}

	return s.out.OnInt64(int64(v))
}

func (s *session) encodeBigInt(v *big.Int) error {
	if v == nil {
		return s.out.OnNil()
	}
	if !v.IsInt64() {
		return fmt.Errorf("integer %s: %w", v.String(), errs.ErrNumericOverflow)
	}

	return s.out.OnInt64(v.Int64())
}

// encodeFloat writes NaN and infinities as null.
func (s *session) encodeFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s.out.OnNil()
	}

	return s.out.OnFloat64(v)
}

// encodeTime writes t as an ISO-8601 string or as an epoch integer in the
// configured unit.
func (s *session) encodeTime(t time.Time) error {
	if s.cfg.isoDates {
		iso, err := temporal.ISO8601(t, s.cfg.dateUnit)
		if err != nil {
			return err
		}

		return s.out.OnString(iso)
	}

	v, err := temporal.EpochIn(t, s.cfg.dateUnit)
	if err != nil {
		return err
	}

	return s.out.OnInt64(v)
}

func (s *session) encodeDatetime64(d temporal.Datetime64) error {
	if d.IsNaT() {
		return s.out.OnNil()
	}
	if s.cfg.isoDates {
		return s.encodeTime(d.Time())
	}

	v, err := temporal.Rescale(d.Value, d.Unit, s.cfg.dateUnit)
	if err != nil {
		return err
	}

	return s.out.OnInt64(v)
}

func (s *session) encodeTimedelta64(d temporal.Timedelta64) error {
	if d.IsNaT() {
		return s.out.OnNil()
	}

	ns, err := temporal.TimedeltaNanos(d)
	if err != nil {
		return err
	}

	return s.out.OnInt64(temporal.DurationIn(ns, s.cfg.dateUnit))
}

// elementRef is one element of a numeric or temporal array, converted by
// dtype kind without boxing the element first.
type elementRef struct {
	arr *ndarray.Array
	pos int
}

func (s *session) encodeElement(e elementRef) error {
	arr := e.arr
	switch arr.DType().Kind() { //nolint: exhaustive
	case ndarray.KindFloat:
		return s.encodeFloat(arr.FloatAt(e.pos))
	case ndarray.KindDatetime:
		return s.encodeDatetime64(temporal.Datetime64{Value: arr.IntAt(e.pos), Unit: arr.Unit()})
	case ndarray.KindTimedelta:
		return s.encodeTimedelta64(temporal.Timedelta64{Value: arr.IntAt(e.pos), Unit: arr.Unit()})
	case ndarray.KindInt:
		return s.out.OnInt64(arr.IntAt(e.pos))
	case ndarray.KindUint:
		return s.encodeUint(arr.UintAt(e.pos))
	case ndarray.KindBool:
		return s.out.OnBool(arr.BoolAt(e.pos))
	case ndarray.KindObject:
		return s.encode(arr.Item(e.pos))
	default:
		if s.cfg.defaultHandler != nil {
			return s.invokeDefaultHandler(arr.Item(e.pos))
		}

		return fmt.Errorf("unhandled array dtype %s: %w", arr.DType(), errs.ErrUnsupportedType)
	}
}

// elementAt returns the child value for storage position pos of arr.
func elementAt(arr *ndarray.Array, pos int) any {
	if arr.DType() == ndarray.Object {
		return arr.Item(pos)
	}

	return elementRef{arr: arr, pos: pos}
}
