package encoder

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/frame"
	"github.com/arloliu/framejson/ndarray"
	"github.com/arloliu/framejson/temporal"
)

func mustArray[T ndarray.Element](t *testing.T, data []T, shape ...int) *ndarray.Array {
	t.Helper()

	arr, err := ndarray.New(data, shape...)
	require.NoError(t, err)

	return arr
}

func sampleFrame(t *testing.T, index, columns *frame.Index) *frame.DataFrame {
	t.Helper()

	df, err := frame.NewDataFrame(mustArray(t, []int64{1, 2, 3, 4}, 2, 2), index, columns)
	require.NoError(t, err)

	return df
}

func sampleSeries(t *testing.T, name any, index *frame.Index) *frame.Series {
	t.Helper()

	sr, err := frame.NewSeries(name, mustArray(t, []int64{10, 20}), index)
	require.NoError(t, err)

	return sr
}

func TestEncode_Arrays(t *testing.T) {
	nanSlice := []float32{0.5, float32(math.NaN())}

	base := mustArray(t, []int64{0, 1, 2, 3, 4, 5}, 2, 3)
	row, err := base.Sub(1)
	require.NoError(t, err)

	datetimes, err := ndarray.NewDatetime([]int64{0, 1_000_000_000, temporal.NaTValue}, format.UnitNanoseconds)
	require.NoError(t, err)
	deltas, err := ndarray.NewTimedelta([]int64{1, 2}, format.UnitSeconds)
	require.NoError(t, err)
	objects, err := ndarray.NewObject([]any{"a", []any{1}, nil})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   *ndarray.Array
		want string
	}{
		{"1-d", mustArray(t, []int64{1, 2, 3}), `[1,2,3]`},
		{"2-d", base, `[[0,1,2],[3,4,5]]`},
		{"3-d", mustArray(t, []int64{1, 2, 3, 4}, 2, 1, 2), `[[[1,2]],[[3,4]]]`},
		{"transposed view", base.T(), `[[0,3],[1,4],[2,5]]`},
		{"row view", row, `[3,4,5]`},
		{"empty inner axis", mustArray(t, []int64{}, 2, 0), `[[],[]]`},
		{"empty outer axis", mustArray(t, []int64{}, 0, 3), `[]`},
		{"float with nan", mustArray(t, nanSlice), `[0.5,null]`},
		{"bool", mustArray(t, []bool{true, false}), `[true,false]`},
		{"uint8", mustArray(t, []uint8{255}), `[255]`},
		{"datetime", datetimes, `[0,1000,null]`},
		{"timedelta", deltas, `[1000,2000]`},
		{"object", objects, `["a",[1],null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, encodeString(t, tt.in))
		})
	}
}

func TestEncode_ArrayErrors(t *testing.T) {
	_, err := Encode(ndarray.Scalar(3.5))
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
	require.Contains(t, err.Error(), "3.5 (0d array) is not JSON serializable")

	_, err = Encode(mustArray(t, []uint64{math.MaxUint64}))
	require.ErrorIs(t, err, errs.ErrNumericOverflow)

	complexArr := mustArray(t, []complex128{complex(1, 2)})
	_, err = Encode(complexArr)
	require.ErrorIs(t, err, errs.ErrUnsupportedType)

	handler := func(v any) (any, error) {
		c := v.(complex128)
		return []float64{real(c), imag(c)}, nil
	}
	require.Equal(t, `[[1.0,2.0]]`, encodeString(t, complexArr, WithDefaultHandler(handler)))
}

func TestEncode_DataFrameOrients(t *testing.T) {
	df := sampleFrame(t, frame.StringIndex("x", "y"), frame.StringIndex("a", "b"))

	tests := []struct {
		orient format.Orient
		want   string
	}{
		{format.OrientSplit, `{"columns":["a","b"],"index":["x","y"],"data":[[1,2],[3,4]]}`},
		{format.OrientRecords, `[{"a":1,"b":2},{"a":3,"b":4}]`},
		{format.OrientIndex, `{"x":{"a":1,"b":2},"y":{"a":3,"b":4}}`},
		{format.OrientColumns, `{"a":{"x":1,"y":3},"b":{"x":2,"y":4}}`},
		{format.OrientValues, `[[1,2],[3,4]]`},
	}

	for _, tt := range tests {
		t.Run(tt.orient.String(), func(t *testing.T) {
			require.Equal(t, tt.want, encodeString(t, df, WithOrient(tt.orient)))
		})
	}

	require.Equal(t, `{"a":{"x":1,"y":3},"b":{"x":2,"y":4}}`, encodeString(t, df), "columns is the default orient")
}

func TestEncode_DataFrameLabels(t *testing.T) {
	t.Run("range labels", func(t *testing.T) {
		df := sampleFrame(t, nil, nil)
		require.Equal(t, `{"0":{"0":1,"1":2},"1":{"0":3,"1":4}}`, encodeString(t, df, WithOrient(format.OrientIndex)))
	})

	t.Run("datetime labels", func(t *testing.T) {
		index, err := frame.DatetimeIndex(time.Unix(0, 0).UTC(), time.Unix(1, 0).UTC())
		require.NoError(t, err)
		df, err := frame.NewDataFrame(mustArray(t, []float64{1.5, 2.5}, 2, 1), index, frame.StringIndex("v"))
		require.NoError(t, err)

		require.Equal(t, `{"0":{"v":1.5},"1000":{"v":2.5}}`, encodeString(t, df, WithOrient(format.OrientIndex)))
		require.Equal(t,
			`{"1970-01-01T00:00:00.000Z":{"v":1.5},"1970-01-01T00:00:01.000Z":{"v":2.5}}`,
			encodeString(t, df, WithOrient(format.OrientIndex), WithISODates(true)))
	})

	t.Run("non-string label is quoted", func(t *testing.T) {
		labels, err := ndarray.NewObject([]any{[]any{1, "a"}})
		require.NoError(t, err)
		columns, err := frame.NewIndex(nil, labels)
		require.NoError(t, err)
		df, err := frame.NewDataFrame(mustArray(t, []int64{5}, 1, 1), nil, columns)
		require.NoError(t, err)

		require.Equal(t, `[{"[1,\"a\"]":5}]`, encodeString(t, df, WithOrient(format.OrientRecords)))
	})

	t.Run("label with slash keeps escaping", func(t *testing.T) {
		df := sampleFrame(t, frame.StringIndex("x", "y"), frame.StringIndex("a/1", "b"))
		require.Equal(t, `[{"a\/1":1,"b":2},{"a\/1":3,"b":4}]`, encodeString(t, df, WithOrient(format.OrientRecords)))
	})

	t.Run("non-contiguous values", func(t *testing.T) {
		values := mustArray(t, []int64{0, 1, 2, 3, 4, 5}, 3, 2).T()
		df, err := frame.NewDataFrame(values, frame.StringIndex("x", "y"), frame.StringIndex("a", "b", "c"))
		require.NoError(t, err)

		require.Equal(t, `[[0,2,4],[1,3,5]]`, encodeString(t, df, WithOrient(format.OrientValues)))
		require.Equal(t, `{"a":{"x":0,"y":1},"b":{"x":2,"y":3},"c":{"x":4,"y":5}}`, encodeString(t, df))
	})
}

func TestEncode_LabelLengthMismatch(t *testing.T) {
	df := sampleFrame(t, frame.StringIndex("x"), frame.StringIndex("a", "b"))

	for _, orient := range []format.Orient{format.OrientIndex, format.OrientColumns} {
		out, err := Encode(df, WithOrient(orient))
		require.ErrorIs(t, err, errs.ErrLabelLengthMismatch, orient.String())
		require.Nil(t, out)
	}

	// Row labels are not written under records and values.
	require.Equal(t, `[{"a":1,"b":2},{"a":3,"b":4}]`, encodeString(t, df, WithOrient(format.OrientRecords)))
	require.Equal(t, `[[1,2],[3,4]]`, encodeString(t, df, WithOrient(format.OrientValues)))

	t.Run("nothing is emitted for the failing node", func(t *testing.T) {
		rec := &recorder{}
		err := Walk([]any{df}, rec, WithOrient(format.OrientIndex))
		require.ErrorIs(t, err, errs.ErrLabelLengthMismatch)
		require.Equal(t, []string{"["}, rec.events)
	})

	t.Run("series", func(t *testing.T) {
		sr := sampleSeries(t, nil, frame.StringIndex("a"))
		_, err := Encode(sr, WithOrient(format.OrientColumns))
		require.ErrorIs(t, err, errs.ErrLabelLengthMismatch)
		require.Equal(t, `[10,20]`, encodeString(t, sr, WithOrient(format.OrientValues)))
	})
}

func TestEncode_NonUniqueLabels(t *testing.T) {
	dupIndex := sampleFrame(t, frame.StringIndex("x", "x"), frame.StringIndex("a", "b"))
	for _, orient := range []format.Orient{format.OrientIndex, format.OrientColumns} {
		_, err := Encode(dupIndex, WithOrient(orient))
		require.ErrorIs(t, err, errs.ErrNonUniqueLabels, orient.String())
	}
	require.Equal(t, `[{"a":1,"b":2},{"a":3,"b":4}]`, encodeString(t, dupIndex, WithOrient(format.OrientRecords)))

	dupColumns := sampleFrame(t, frame.StringIndex("x", "y"), frame.StringIndex("a", "a"))
	for _, orient := range []format.Orient{format.OrientIndex, format.OrientColumns, format.OrientRecords} {
		_, err := Encode(dupColumns, WithOrient(orient))
		require.ErrorIs(t, err, errs.ErrNonUniqueLabels, orient.String())
	}
	require.Equal(t, `[[1,2],[3,4]]`, encodeString(t, dupColumns, WithOrient(format.OrientValues)))

	sr := sampleSeries(t, nil, frame.StringIndex("a", "a"))
	_, err := Encode(sr, WithOrient(format.OrientIndex))
	require.ErrorIs(t, err, errs.ErrNonUniqueLabels)
	require.Equal(t, `{"a":10,"a":20}`, encodeString(t, sr, WithOrient(format.OrientColumns)))
}

func TestEncode_Series(t *testing.T) {
	sr := sampleSeries(t, "s", frame.StringIndex("a", "b"))

	tests := []struct {
		orient format.Orient
		want   string
	}{
		{format.OrientSplit, `{"name":"s","index":["a","b"],"data":[10,20]}`},
		{format.OrientRecords, `[10,20]`},
		{format.OrientIndex, `{"a":10,"b":20}`},
		{format.OrientColumns, `{"a":10,"b":20}`},
		{format.OrientValues, `[10,20]`},
	}

	for _, tt := range tests {
		t.Run(tt.orient.String(), func(t *testing.T) {
			require.Equal(t, tt.want, encodeString(t, sr, WithOrient(tt.orient)))
		})
	}

	unnamed := sampleSeries(t, nil, nil)
	require.Equal(t, `{"name":null,"index":[0,1],"data":[10,20]}`, encodeString(t, unnamed, WithOrient(format.OrientSplit)))
}

func TestEncode_Index(t *testing.T) {
	ix := frame.StringIndex("a", "b").WithName("letters")

	require.Equal(t, `{"name":"letters","data":["a","b"]}`, encodeString(t, ix, WithOrient(format.OrientSplit)))
	for _, orient := range []format.Orient{format.OrientRecords, format.OrientIndex, format.OrientColumns, format.OrientValues} {
		require.Equal(t, `["a","b"]`, encodeString(t, ix, WithOrient(orient)), orient.String())
	}
}

func TestEncode_OrientScope(t *testing.T) {
	df := sampleFrame(t, frame.StringIndex("x", "y"), frame.StringIndex("a", "b"))

	t.Run("restored after a split table", func(t *testing.T) {
		out := encodeString(t, []any{df, frame.StringIndex("a", "b")}, WithOrient(format.OrientSplit))
		require.Equal(t,
			`[{"columns":["a","b"],"index":["x","y"],"data":[[1,2],[3,4]]},{"name":null,"data":["a","b"]}]`,
			out)
	})

	t.Run("restored after a labeled table", func(t *testing.T) {
		sr := sampleSeries(t, nil, frame.StringIndex("p", "q"))
		out := encodeString(t, map[string]any{"df": df, "sr": sr}, WithOrient(format.OrientIndex))
		require.Equal(t, `{"df":{"x":{"a":1,"b":2},"y":{"a":3,"b":4}},"sr":{"p":10,"q":20}}`, out)
	})

	t.Run("nested series inside a cell is written as values", func(t *testing.T) {
		sr := sampleSeries(t, "inner", frame.StringIndex("p", "q"))
		cells, err := ndarray.NewObject([]any{sr, 1}, 1, 2)
		require.NoError(t, err)
		outer, err := frame.NewDataFrame(cells, frame.StringIndex("x"), frame.StringIndex("a", "b"))
		require.NoError(t, err)

		require.Equal(t, `{"x":{"a":[10,20],"b":1}}`, encodeString(t, outer, WithOrient(format.OrientIndex)))
		require.Equal(t, `{"a":{"x":[10,20]},"b":{"x":1}}`, encodeString(t, outer, WithOrient(format.OrientColumns)))
	})
}

func TestEncode_FromRecords(t *testing.T) {
	mixed, err := frame.FromRecords([]map[string]any{{"a": 1, "b": "x"}, {"a": 2}})
	require.NoError(t, err)
	require.Equal(t, `[{"a":1,"b":"x"},{"a":2,"b":null}]`, encodeString(t, mixed, WithOrient(format.OrientRecords)))

	numeric, err := frame.FromRecords([]map[string]any{{"a": 1}, {"b": 2.5}})
	require.NoError(t, err)
	require.Equal(t, `[{"a":1.0,"b":null},{"a":null,"b":2.5}]`, encodeString(t, numeric, WithOrient(format.OrientRecords)))
	require.Equal(t, `{"0":{"a":1.0,"b":null},"1":{"a":null,"b":2.5}}`, encodeString(t, numeric, WithOrient(format.OrientIndex)))
}
