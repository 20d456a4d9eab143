package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/internal/pool"
)

func newTestWriter(opts ...Option) *jsonWriter {
	cfg, err := newSettings(opts)
	if err != nil {
		panic(err)
	}

	return newJSONWriter(pool.NewByteBuffer(64), cfg)
}

// esc returns the six-byte JSON unicode escape for the given hex digits.
func esc(hex string) string {
	return `\` + "u" + hex
}

func quoted(s string) string {
	return `"` + s + `"`
}

func TestAppendFloat(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		want      string
	}{
		{1.0, 10, "1.0"},
		{1.5, 10, "1.5"},
		{0.1, 10, "0.1"},
		{-2.25, 10, "-2.25"},
		{3.14159, 3, "3.142"},
		{1.6, 0, "2.0"},
		{123456789.123, 2, "123456789.12"},
		{0, 10, "0.0"},
		{1e16, 10, "1e+16"},
		{-3e20, 3, "-3e+20"},
		{1.5e20, 10, "1.5e+20"},
		{1e-16, 10, "1e-16"},
		{-1e-16, 10, "-1e-16"},
		{1e16, 0, "1e+16"},
		{123456789012345.678, 10, "123456789012345.67"},
		{1e-11, 10, "0.0"},
	}

	for _, tt := range tests {
		got := string(appendFloat(nil, tt.in, tt.precision))
		require.Equal(t, tt.want, got, "value %v precision %d", tt.in, tt.precision)
	}
}

func TestJSONWriter_Strings(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		in   string
		want string
	}{
		{"plain", nil, "abc", `"abc"`},
		{"short escapes", nil, "\"\\\n\r\t\b\f", `"\"\\\n\r\t\b\f"`},
		{"control", nil, "\x01", `"\u0001"`},
		{"slash escaped by default", nil, "a/b", `"a\/b"`},
		{"slash kept", []Option{WithEscapeForwardSlashes(false)}, "a/b", `"a/b"`},
		{"non-ascii escaped", nil, "caf\u00e9", quoted("caf" + esc("00e9"))},
		{"astral pair", nil, "\U0001F600", quoted(esc("d83d") + esc("de00"))},
		{"non-ascii raw", []Option{WithEnsureASCII(false)}, "\u00e9\U0001F600", "\"\u00e9\U0001F600\""},
		{"html kept", nil, "<a&b>", `"<a&b>"`},
		{"html escaped", []Option{WithEncodeHTMLChars(true)}, "<a&b>", quoted(esc("003c") + "a" + esc("0026") + "b" + esc("003e"))},
		{"invalid utf-8", nil, "a\xffb", quoted("a" + esc("fffd") + "b")},
		{"invalid utf-8 raw mode", []Option{WithEnsureASCII(false)}, "\xff", quoted(esc("fffd"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWriter(tt.opts...)
			require.NoError(t, w.OnString(tt.in))
			require.Equal(t, tt.want, string(w.buf.Bytes()))
		})
	}
}

func TestJSONWriter_Separators(t *testing.T) {
	w := newTestWriter()

	require.NoError(t, w.OnObjectStart(2))
	require.NoError(t, w.OnKey("a"))
	require.NoError(t, w.OnArrayStart(2))
	require.NoError(t, w.OnInt64(1))
	require.NoError(t, w.OnFloat64(2.5))
	require.NoError(t, w.OnArrayFinished())
	require.NoError(t, w.OnLabel(Label{Fragment: []byte(`"b":`), Key: "b"}))
	require.NoError(t, w.OnNil())
	require.NoError(t, w.OnObjectFinished())

	require.Equal(t, `{"a":[1,2.5],"b":null}`, string(w.buf.Bytes()))
}

func TestJSONWriter_MaxSize(t *testing.T) {
	w := newTestWriter(WithMaxOutputSize(4))

	require.NoError(t, w.OnArrayStart(-1))
	require.NoError(t, w.OnInt64(12))
	err := w.OnInt64(345)
	require.ErrorIs(t, err, errs.ErrBufferOverflow)
}

func TestTakeLabel(t *testing.T) {
	w := newTestWriter()

	require.NoError(t, w.OnString("x/y"))
	label, err := w.takeLabel()
	require.NoError(t, err)
	require.Equal(t, `"x\/y":`, string(label.Fragment))
	require.Equal(t, "x/y", label.Key)

	w.reset()
	require.NoError(t, w.OnInt64(42))
	label, err = w.takeLabel()
	require.NoError(t, err)
	require.Equal(t, `"42":`, string(label.Fragment))
	require.Equal(t, "42", label.Key)

	w.reset()
	require.NoError(t, w.OnArrayStart(2))
	require.NoError(t, w.OnInt64(1))
	require.NoError(t, w.OnString("a"))
	require.NoError(t, w.OnArrayFinished())
	label, err = w.takeLabel()
	require.NoError(t, err)
	require.Equal(t, `"[1,\"a\"]":`, string(label.Fragment))
	require.Equal(t, `[1,"a"]`, label.Key)
}
