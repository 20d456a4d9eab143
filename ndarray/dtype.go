package ndarray

// DType identifies the element type of an Array.
type DType uint8

const (
	Bool DType = iota + 1
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex128
	Datetime64
	Timedelta64
	Object
)

// Kind groups dtypes by how their elements are converted to scalars.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindComplex
	KindDatetime
	KindTimedelta
	KindObject
)

func (d DType) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	case Datetime64:
		return "datetime64"
	case Timedelta64:
		return "timedelta64"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Kind returns the conversion family of d.
func (d DType) Kind() Kind {
	switch d {
	case Bool:
		return KindBool
	case Int8, Int16, Int32, Int64:
		return KindInt
	case Uint8, Uint16, Uint32, Uint64:
		return KindUint
	case Float32, Float64:
		return KindFloat
	case Complex128:
		return KindComplex
	case Datetime64:
		return KindDatetime
	case Timedelta64:
		return KindTimedelta
	case Object:
		return KindObject
	default:
		return KindInvalid
	}
}

// IsNumeric reports whether elements of d are plain numbers or booleans.
func (d DType) IsNumeric() bool {
	switch d.Kind() {
	case KindBool, KindInt, KindUint, KindFloat, KindComplex:
		return true
	default:
		return false
	}
}

// IsTemporal reports whether d is a datetime64 or timedelta64 dtype.
func (d DType) IsTemporal() bool {
	return d == Datetime64 || d == Timedelta64
}
