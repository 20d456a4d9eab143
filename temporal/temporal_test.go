package temporal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
)

func TestEpochIn(t *testing.T) {
	ts := time.Date(2013, 1, 1, 5, 0, 0, 123456789, time.UTC)

	tests := []struct {
		unit format.DateUnit
		want int64
	}{
		{format.UnitSeconds, 1357016400},
		{format.UnitMilliseconds, 1357016400123},
		{format.UnitMicroseconds, 1357016400123456},
		{format.UnitNanoseconds, 1357016400123456789},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got, err := EpochIn(ts, tt.unit)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEpochIn_FloorsBeforeEpoch(t *testing.T) {
	ts := time.Unix(-1, 500_000_000)

	ms, err := EpochIn(ts, format.UnitMilliseconds)
	require.NoError(t, err)
	require.Equal(t, int64(-500), ms)

	s, err := EpochIn(ts, format.UnitSeconds)
	require.NoError(t, err)
	require.Equal(t, int64(-1), s)
}

func TestEpochIn_Overflow(t *testing.T) {
	_, err := EpochIn(time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC), format.UnitNanoseconds)
	require.ErrorIs(t, err, errs.ErrNumericOverflow)

	_, err = EpochIn(time.Now(), format.DateUnit(9))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestISO8601(t *testing.T) {
	ts := time.Date(2013, 1, 1, 5, 0, 0, 7_000_000, time.FixedZone("EST", -5*3600))

	tests := []struct {
		unit format.DateUnit
		want string
	}{
		{format.UnitSeconds, "2013-01-01T10:00:00Z"},
		{format.UnitMilliseconds, "2013-01-01T10:00:00.007Z"},
		{format.UnitMicroseconds, "2013-01-01T10:00:00.007000Z"},
		{format.UnitNanoseconds, "2013-01-01T10:00:00.007000000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got, err := ISO8601(ts, tt.unit)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ISO8601(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC), format.UnitSeconds)
	require.ErrorIs(t, err, errs.ErrDatetimeConversion)
}

func TestRescale(t *testing.T) {
	got, err := Rescale(-1500, format.UnitMilliseconds, format.UnitSeconds)
	require.NoError(t, err)
	require.Equal(t, int64(-2), got)

	got, err = Rescale(3, format.UnitSeconds, format.UnitMicroseconds)
	require.NoError(t, err)
	require.Equal(t, int64(3_000_000), got)

	got, err = Rescale(42, format.UnitNanoseconds, format.UnitNanoseconds)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)

	_, err = Rescale(math.MaxInt64/10, format.UnitSeconds, format.UnitNanoseconds)
	require.ErrorIs(t, err, errs.ErrNumericOverflow)
}

func TestFromEpoch(t *testing.T) {
	require.Equal(t, time.Unix(-1, 500_000_000).UTC(), FromEpoch(-500, format.UnitMilliseconds))
	require.Equal(t, time.Unix(1357016400, 0).UTC(), Datetime64{Value: 1357016400, Unit: format.UnitSeconds}.Time())
}

func TestDurationIn(t *testing.T) {
	ns := int64(-1_999_999_999)
	require.Equal(t, int64(-1), DurationIn(ns, format.UnitSeconds))
	require.Equal(t, int64(-1999), DurationIn(ns, format.UnitMilliseconds))
	require.Equal(t, ns, DurationIn(ns, format.UnitNanoseconds))

	got, err := TimedeltaNanos(Timedelta64{Value: 2, Unit: format.UnitMilliseconds})
	require.NoError(t, err)
	require.Equal(t, int64(2_000_000), got)
}

func TestNaTAndCivilTypes(t *testing.T) {
	require.True(t, Datetime64{Value: NaTValue}.IsNaT())
	require.False(t, Timedelta64{Value: 0}.IsNaT())
	require.Equal(t, "NaT", NaT.String())

	require.Equal(t, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), Date{2020, time.February, 29}.Time())
	require.Equal(t, "09:05:03", Clock{Hour: 9, Minute: 5, Second: 3}.String())
	require.Equal(t, "23:59:59.000010", Clock{Hour: 23, Minute: 59, Second: 59, Microsecond: 10}.String())
}
