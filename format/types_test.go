package format

import (
	"errors"
	"testing"

	"github.com/arloliu/framejson/errs"
	"github.com/stretchr/testify/require"
)

func TestParseOrient(t *testing.T) {
	for _, o := range []Orient{OrientSplit, OrientRecords, OrientIndex, OrientColumns, OrientValues} {
		got, err := ParseOrient(o.String())
		require.NoError(t, err)
		require.Equal(t, o, got)
		require.True(t, got.Valid())
	}

	_, err := ParseOrient("table")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidOption))
	require.Contains(t, err.Error(), "'table'")
	require.False(t, Orient(0).Valid())
}

func TestParseDateUnit(t *testing.T) {
	tests := []struct {
		in        string
		want      DateUnit
		perSecond int64
		digits    int
	}{
		{"s", UnitSeconds, 1, 0},
		{"ms", UnitMilliseconds, 1_000, 3},
		{"us", UnitMicroseconds, 1_000_000, 6},
		{"ns", UnitNanoseconds, 1_000_000_000, 9},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateUnit(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.in, got.String())
			require.Equal(t, tt.perSecond, got.PerSecond())
			require.Equal(t, tt.digits, got.FractionDigits())
		})
	}

	_, err := ParseDateUnit("D")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestParseCompression(t *testing.T) {
	got, err := ParseCompression("")
	require.NoError(t, err)
	require.Equal(t, CompressionNone, got)

	got, err = ParseCompression("ZSTD")
	require.NoError(t, err)
	require.Equal(t, CompressionZstd, got)
	require.Equal(t, "Zstd", got.String())

	_, err = ParseCompression("brotli")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}
