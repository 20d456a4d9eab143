// Package encoder converts in-memory values, including labeled tables and
// strided N-d arrays, into a JSON event stream.
//
// Each value is classified once per tree node. Scalars are written directly;
// containers get a traversal strategy (begin, next, end, getValue, getName)
// that the session drives, recursing into child values. Tables and series
// change shape with the configured orientation.
//
// The stream is written by a Visitor. Encode and EncodeTo use the built-in
// JSON text writer; EncodeVisitor feeds any go-structform visitor.
package encoder

import (
	"io"

	structform "github.com/elastic/go-structform"

	"github.com/arloliu/framejson/internal/pool"
)

// Encode returns the JSON document for v.
//
// Parameters:
//   - v: value to encode
//   - opts: encode options, applied in order
//
// Returns:
//   - []byte: the document, owned by the caller
//   - error: wraps one of the errs sentinels; no partial document is returned
func Encode(v any, opts ...Option) ([]byte, error) {
	cfg, err := newSettings(opts)
	if err != nil {
		return nil, err
	}

	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if err := newSession(cfg, newJSONWriter(buf, cfg)).encode(v); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// EncodeTo writes the JSON document for v to w. Nothing is written when
// encoding fails.
func EncodeTo(w io.Writer, v any, opts ...Option) error {
	cfg, err := newSettings(opts)
	if err != nil {
		return err
	}

	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if err := newSession(cfg, newJSONWriter(buf, cfg)).encode(v); err != nil {
		return err
	}

	_, err = buf.WriteTo(w)

	return err
}

// Walk sends the event stream for v to vis. Axis labels reach vis through
// OnLabel, already rendered as JSON key fragments.
func Walk(v any, vis Visitor, opts ...Option) error {
	cfg, err := newSettings(opts)
	if err != nil {
		return err
	}

	return newSession(cfg, vis).encode(v)
}

// EncodeVisitor sends the event stream for v to a go-structform visitor,
// such as json.NewVisitor or cborl.NewVisitor.
func EncodeVisitor(v any, vs structform.Visitor, opts ...Option) error {
	return Walk(v, structformVisitor{v: vs}, opts...)
}
