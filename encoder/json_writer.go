package encoder

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/internal/pool"
)

const hexDigits = "0123456789abcdef"

// jsonWriter is the text core: it owns comma placement, string escaping and
// float formatting, and appends to a pooled buffer.
type jsonWriter struct {
	buf         *pool.ByteBuffer
	sep         bool
	ensureASCII bool
	escapeHTML  bool
	escapeSlash bool
	precision   int
	maxSize     int
}

func newJSONWriter(buf *pool.ByteBuffer, s *settings) *jsonWriter {
	return &jsonWriter{
		buf:         buf,
		ensureASCII: s.ensureASCII,
		escapeHTML:  s.encodeHTMLChars,
		escapeSlash: s.escapeSlashes,
		precision:   s.doublePrecision,
		maxSize:     s.maxOutputSize,
	}
}

func (w *jsonWriter) reset() {
	w.buf.Reset()
	w.sep = false
}

func (w *jsonWriter) check() error {
	if w.maxSize > 0 && w.buf.Len() > w.maxSize {
		return fmt.Errorf("document reached %d bytes, limit is %d: %w", w.buf.Len(), w.maxSize, errs.ErrBufferOverflow)
	}

	return nil
}

func (w *jsonWriter) comma() {
	if w.sep {
		w.buf.B = append(w.buf.B, ',')
	}
}

func (w *jsonWriter) open(c byte) error {
	w.comma()
	w.buf.B = append(w.buf.B, c)
	w.sep = false

	return w.check()
}

func (w *jsonWriter) close(c byte) error {
	w.buf.B = append(w.buf.B, c)
	w.sep = true

	return w.check()
}

func (w *jsonWriter) OnObjectStart(int) error { return w.open('{') }
func (w *jsonWriter) OnObjectFinished() error { return w.close('}') }
func (w *jsonWriter) OnArrayStart(int) error { return w.open('[') }
func (w *jsonWriter) OnArrayFinished() error { return w.close(']') }

func (w *jsonWriter) OnKey(key string) error {
	w.comma()
	if err := w.appendString(key); err != nil {
		return err
	}
	w.buf.B = append(w.buf.B, ':')
	w.sep = false

	return w.check()
}

func (w *jsonWriter) OnLabel(label Label) error {
	w.comma()
	w.buf.B = append(w.buf.B, label.Fragment...)
	w.sep = false

	return w.check()
}

func (w *jsonWriter) value(b []byte) error {
	w.comma()
	w.buf.B = append(w.buf.B, b...)
	w.sep = true

	return w.check()
}

func (w *jsonWriter) OnNil() error { return w.value([]byte("null")) }

func (w *jsonWriter) OnBool(b bool) error {
	if b {
		return w.value([]byte("true"))
	}

	return w.value([]byte("false"))
}

func (w *jsonWriter) OnInt64(v int64) error {
	w.comma()
	w.buf.B = strconv.AppendInt(w.buf.B, v, 10)
	w.sep = true

	return w.check()
}

func (w *jsonWriter) OnFloat64(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return w.OnNil()
	}

	w.comma()
	w.buf.B = appendFloat(w.buf.B, v, w.precision)
	w.sep = true

	return w.check()
}

func (w *jsonWriter) OnString(s string) error {
	w.comma()
	if err := w.appendString(s); err != nil {
		return err
	}
	w.sep = true

	return w.check()
}

// appendFloat writes v rounded to precision decimals with trailing zeros
// trimmed, keeping one digit after the point. Magnitudes of 1e16 and above,
// or below 1e-15, use exponent notation with a trimmed mantissa. Output never
// carries more than maxSignificantDigits significant digits.
func appendFloat(b []byte, v float64, precision int) []byte {
	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-15) {
		start := len(b)
		b = strconv.AppendFloat(b, v, 'e', min(precision, maxSignificantDigits-1), 64)

		return trimMantissa(b, start)
	}

	if abs >= 1 {
		intDigits := int(math.Floor(math.Log10(abs))) + 1
		precision = min(precision, max(maxSignificantDigits-intDigits, 0))
	}

	start := len(b)
	b = strconv.AppendFloat(b, v, 'f', precision, 64)
	if precision == 0 {
		return append(b, '.', '0')
	}

	end := len(b)
	for end > start && b[end-1] == '0' {
		end--
	}
	b = b[:end]
	if b[end-1] == '.' {
		b = append(b, '0')
	}

	return b
}

const maxSignificantDigits = 17

// trimMantissa drops trailing zeros and a bare point from the mantissa of an
// exponent-form number starting at b[start:].
func trimMantissa(b []byte, start int) []byte {
	e := bytes.IndexByte(b[start:], 'e')
	if e < 0 {
		return b
	}
	e += start
	if bytes.IndexByte(b[start:e], '.') < 0 {
		return b
	}

	end := e
	for b[end-1] == '0' {
		end--
	}
	if b[end-1] == '.' {
		end--
	}

	return append(b[:end], b[e:]...)
}

func (w *jsonWriter) needsEscape(c byte) bool {
	switch {
	case c < 0x20, c == '"', c == '\\':
		return true
	case c == '/':
		return w.escapeSlash
	case c == '<', c == '>', c == '&':
		return w.escapeHTML
	default:
		return false
	}
}

// appendString writes s as a quoted JSON string. Invalid UTF-8 bytes are
// replaced with U+FFFD.
func (w *jsonWriter) appendString(s string) error {
	if len(s) > (math.MaxInt-2)/6 {
		return fmt.Errorf("string of %d bytes: %w", len(s), errs.ErrAllocation)
	}
	w.buf.Grow(len(s) + 2)

	b := append(w.buf.B, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if !w.needsEscape(c) {
				i++
				continue
			}

			b = append(b, s[start:i]...)
			switch c {
			case '"':
				b = append(b, '\\', '"')
			case '\\':
				b = append(b, '\\', '\\')
			case '/':
				b = append(b, '\\', '/')
			case '\b':
				b = append(b, '\\', 'b')
			case '\f':
				b = append(b, '\\', 'f')
			case '\n':
				b = append(b, '\\', 'n')
			case '\r':
				b = append(b, '\\', 'r')
			case '\t':
				b = append(b, '\\', 't')
			default:
				b = appendUnicodeEscape(b, rune(c))
			}
			i++
			start = i

			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b = append(b, s[start:i]...)
			b = appendUnicodeEscape(b, utf8.RuneError)
			i++
			start = i

			continue
		}

		if w.ensureASCII {
			b = append(b, s[start:i]...)
			if r > 0xFFFF {
				r1, r2 := utf16.EncodeRune(r)
				b = appendUnicodeEscape(b, r1)
				b = appendUnicodeEscape(b, r2)
			} else {
				b = appendUnicodeEscape(b, r)
			}
			i += size
			start = i

			continue
		}
		i += size
	}
	b = append(b, s[start:]...)
	w.buf.B = append(b, '"')

	return nil
}

func appendUnicodeEscape(b []byte, r rune) []byte {
	return append(b, '\\', 'u',
		hexDigits[(r>>12)&0xF],
		hexDigits[(r>>8)&0xF],
		hexDigits[(r>>4)&0xF],
		hexDigits[r&0xF],
	)
}
