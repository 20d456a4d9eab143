// Package temporal holds the scalar time types understood by the encoder and
// the unit arithmetic used to render them as epoch integers or ISO-8601 text.
package temporal

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
)

// NaTValue is the int64 payload that marks a missing datetime or timedelta.
const NaTValue int64 = math.MinInt64

// NaTType is the type of the not-a-time sentinel.
type NaTType struct{}

// NaT is the not-a-time sentinel. It encodes as JSON null.
var NaT = NaTType{}

func (NaTType) String() string { return "NaT" }

// Datetime64 is an epoch offset counted in Unit ticks.
type Datetime64 struct {
	Value int64
	Unit  format.DateUnit
}

// IsNaT reports whether d is the missing-value marker.
func (d Datetime64) IsNaT() bool { return d.Value == NaTValue }

// Time converts d to a UTC time.Time.
func (d Datetime64) Time() time.Time {
	return FromEpoch(d.Value, d.Unit)
}

// Timedelta64 is a duration counted in Unit ticks.
type Timedelta64 struct {
	Value int64
	Unit  format.DateUnit
}

// IsNaT reports whether d is the missing-value marker.
func (d Timedelta64) IsNaT() bool { return d.Value == NaTValue }

// Date is a calendar day without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Clock is a time of day.
type Clock struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// String renders c as HH:MM:SS, with a .ffffff suffix when Microsecond is set.
func (c Clock) String() string {
	if c.Microsecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", c.Hour, c.Minute, c.Second, c.Microsecond)
	}

	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// FromEpoch converts v ticks of unit since the Unix epoch into a UTC time.
func FromEpoch(v int64, unit format.DateUnit) time.Time {
	per := unit.PerSecond()
	if per == 0 {
		per = 1
	}
	sec := floorDiv(v, per)
	rem := v - sec*per

	return time.Unix(sec, rem*(1_000_000_000/per)).UTC()
}

// EpochIn converts t into ticks of unit since the Unix epoch, flooring
// sub-unit precision. Values outside int64 report errs.ErrNumericOverflow.
func EpochIn(t time.Time, unit format.DateUnit) (int64, error) {
	per := unit.PerSecond()
	if per == 0 {
		return 0, fmt.Errorf("unknown date unit %d: %w", unit, errs.ErrInvalidOption)
	}

	sec := t.Unix()
	sub := int64(t.Nanosecond()) / (1_000_000_000 / per)

	if sec > (math.MaxInt64-sub)/per || sec < math.MinInt64/per {
		return 0, fmt.Errorf("%s in unit %s: %w", t.Format(time.RFC3339Nano), unit, errs.ErrNumericOverflow)
	}

	return sec*per + sub, nil
}

// ISO8601 renders t in UTC with exactly unit.FractionDigits() sub-second digits
// and a trailing Z, e.g. 2013-01-01T05:00:00.000Z for milliseconds.
func ISO8601(t time.Time, unit format.DateUnit) (string, error) {
	if !unit.Valid() {
		return "", fmt.Errorf("unknown date unit %d: %w", unit, errs.ErrDatetimeConversion)
	}
	t = t.UTC()
	if t.Year() < 0 || t.Year() > 9999 {
		return "", fmt.Errorf("year %d: %w", t.Year(), errs.ErrDatetimeConversion)
	}

	buf := make([]byte, 0, 32)
	buf = t.AppendFormat(buf, "2006-01-02T15:04:05")
	if digits := unit.FractionDigits(); digits > 0 {
		frac := int64(t.Nanosecond()) / pow10(9-digits)
		buf = append(buf, '.')
		s := strconv.FormatInt(frac, 10)
		for i := len(s); i < digits; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, s...)
	}
	buf = append(buf, 'Z')

	return string(buf), nil
}

// Rescale converts v from one unit to another. Coarsening floors, refining
// multiplies and reports errs.ErrNumericOverflow when the result leaves int64.
func Rescale(v int64, from, to format.DateUnit) (int64, error) {
	fp, tp := from.PerSecond(), to.PerSecond()
	if fp == 0 || tp == 0 {
		return 0, fmt.Errorf("rescale %s to %s: %w", from, to, errs.ErrInvalidOption)
	}

	switch {
	case fp == tp:
		return v, nil
	case fp > tp:
		return floorDiv(v, fp/tp), nil
	default:
		factor := tp / fp
		if v > math.MaxInt64/factor || v < math.MinInt64/factor {
			return 0, fmt.Errorf("%d%s in unit %s: %w", v, from, to, errs.ErrNumericOverflow)
		}

		return v * factor, nil
	}
}

// DurationIn converts a nanosecond count into unit ticks, truncating toward zero.
func DurationIn(ns int64, unit format.DateUnit) int64 {
	switch unit {
	case format.UnitMicroseconds:
		return ns / 1_000
	case format.UnitMilliseconds:
		return ns / 1_000_000
	case format.UnitSeconds:
		return ns / 1_000_000_000
	default:
		return ns
	}
}

// TimedeltaNanos converts a Timedelta64 into nanoseconds.
func TimedeltaNanos(d Timedelta64) (int64, error) {
	return Rescale(d.Value, d.Unit, format.UnitNanoseconds)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}

	return p
}
