package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/framejson/errs"
)

type (
	Orient          uint8
	DateUnit        uint8
	CompressionType uint8
)

const (
	OrientSplit   Orient = 0x1 // OrientSplit writes {"columns":[..],"index":[..],"data":[[..]]}.
	OrientRecords Orient = 0x2 // OrientRecords writes [{column:value},...].
	OrientIndex   Orient = 0x3 // OrientIndex writes {index:{column:value}}.
	OrientColumns Orient = 0x4 // OrientColumns writes {column:{index:value}}.
	OrientValues  Orient = 0x5 // OrientValues writes [[value,...],...].

	UnitSeconds      DateUnit = 0x1 // UnitSeconds represents epoch seconds.
	UnitMilliseconds DateUnit = 0x2 // UnitMilliseconds represents epoch milliseconds.
	UnitMicroseconds DateUnit = 0x3 // UnitMicroseconds represents epoch microseconds.
	UnitNanoseconds  DateUnit = 0x4 // UnitNanoseconds represents epoch nanoseconds.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (o Orient) String() string {
	switch o {
	case OrientSplit:
		return "split"
	case OrientRecords:
		return "records"
	case OrientIndex:
		return "index"
	case OrientColumns:
		return "columns"
	case OrientValues:
		return "values"
	default:
		return "unknown"
	}
}

// Valid reports whether o is one of the five known orientations.
func (o Orient) Valid() bool {
	return o >= OrientSplit && o <= OrientValues
}

// ParseOrient converts an orientation name into an Orient.
func ParseOrient(s string) (Orient, error) {
	switch s {
	case "split":
		return OrientSplit, nil
	case "records":
		return OrientRecords, nil
	case "index":
		return OrientIndex, nil
	case "columns":
		return OrientColumns, nil
	case "values":
		return OrientValues, nil
	default:
		return 0, fmt.Errorf("invalid value '%s' for option 'orient': %w", s, errs.ErrInvalidOption)
	}
}

func (u DateUnit) String() string {
	switch u {
	case UnitSeconds:
		return "s"
	case UnitMilliseconds:
		return "ms"
	case UnitMicroseconds:
		return "us"
	case UnitNanoseconds:
		return "ns"
	default:
		return "unknown"
	}
}

// Valid reports whether u is one of the four supported units.
func (u DateUnit) Valid() bool {
	return u >= UnitSeconds && u <= UnitNanoseconds
}

// PerSecond returns how many ticks of u fit in one second.
func (u DateUnit) PerSecond() int64 {
	switch u {
	case UnitSeconds:
		return 1
	case UnitMilliseconds:
		return 1_000
	case UnitMicroseconds:
		return 1_000_000
	case UnitNanoseconds:
		return 1_000_000_000
	default:
		return 0
	}
}

// FractionDigits is the number of sub-second digits an ISO-8601 rendering carries in unit u.
func (u DateUnit) FractionDigits() int {
	switch u {
	case UnitMilliseconds:
		return 3
	case UnitMicroseconds:
		return 6
	case UnitNanoseconds:
		return 9
	default:
		return 0
	}
}

// ParseDateUnit converts a unit name ("s", "ms", "us", "ns") into a DateUnit.
func ParseDateUnit(s string) (DateUnit, error) {
	switch s {
	case "s":
		return UnitSeconds, nil
	case "ms":
		return UnitMilliseconds, nil
	case "us":
		return UnitMicroseconds, nil
	case "ns":
		return UnitNanoseconds, nil
	default:
		return 0, fmt.Errorf("invalid value '%s' for option 'date_unit': %w", s, errs.ErrInvalidOption)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression converts a case-insensitive compression name into a CompressionType.
// The empty string maps to CompressionNone.
func ParseCompression(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("invalid value '%s' for option 'compression': %w", s, errs.ErrInvalidOption)
	}
}
