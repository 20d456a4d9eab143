// Package framejson serializes in-memory values, including labeled tables,
// series and strided N-d arrays, to JSON.
//
// Scalars, slices, maps and structs encode the way their JSON shape
// suggests. Tables (frame.DataFrame), series (frame.Series), indexes
// (frame.Index) and arrays (ndarray.Array) are walked in place, without
// building intermediate rows, and shaped by the configured orientation.
//
// # Orientations
//
// For a table with index ["x","y"], columns ["a","b"] and values [[1,2],[3,4]]:
//
//	split:   {"columns":["a","b"],"index":["x","y"],"data":[[1,2],[3,4]]}
//	records: [{"a":1,"b":2},{"a":3,"b":4}]
//	index:   {"x":{"a":1,"b":2},"y":{"a":3,"b":4}}
//	columns: {"a":{"x":1,"y":3},"b":{"x":2,"y":4}}
//	values:  [[1,2],[3,4]]
//
// columns is the default.
//
// # Basic Usage
//
//	values, _ := ndarray.New([]int64{1, 2, 3, 4}, 2, 2)
//	df, _ := frame.NewDataFrame(values, frame.StringIndex("x", "y"), frame.StringIndex("a", "b"))
//
//	doc, err := framejson.Encode(df, framejson.WithOrient(framejson.OrientRecords))
//	if err != nil {
//	    return err
//	}
//
// Datetimes are written as epoch integers in the date unit (milliseconds by
// default) or, with WithISODates, as ISO-8601 strings. NaN, infinities and
// not-a-time values are written as null.
//
// # Package Structure
//
// This package wraps the encoder package for the common cases and adds
// compressed output. Use encoder directly to drive a custom Visitor or a
// go-structform visitor.
package framejson

import (
	"fmt"
	"io"

	"github.com/arloliu/framejson/compress"
	"github.com/arloliu/framejson/encoder"
	"github.com/arloliu/framejson/format"
)

// Option configures an encode call. See the With* functions.
type Option = encoder.Option

// Orientations, re-exported from format.
const (
	OrientSplit   = format.OrientSplit
	OrientRecords = format.OrientRecords
	OrientIndex   = format.OrientIndex
	OrientColumns = format.OrientColumns
	OrientValues  = format.OrientValues
)

// Date units, re-exported from format.
const (
	UnitSeconds      = format.UnitSeconds
	UnitMilliseconds = format.UnitMilliseconds
	UnitMicroseconds = format.UnitMicroseconds
	UnitNanoseconds  = format.UnitNanoseconds
)

// Encode options, re-exported from encoder.
var (
	WithEnsureASCII          = encoder.WithEnsureASCII
	WithDoublePrecision      = encoder.WithDoublePrecision
	WithEncodeHTMLChars      = encoder.WithEncodeHTMLChars
	WithEscapeForwardSlashes = encoder.WithEscapeForwardSlashes
	WithOrient               = encoder.WithOrient
	WithDateUnit             = encoder.WithDateUnit
	WithISODates             = encoder.WithISODates
	WithDefaultHandler       = encoder.WithDefaultHandler
	WithMaxDepth             = encoder.WithMaxDepth
	WithMaxOutputSize        = encoder.WithMaxOutputSize
	WithLogger               = encoder.WithLogger
)

// Encode returns the JSON document for v.
//
// Parameters:
//   - v: value to encode
//   - opts: encode options
//
// Returns:
//   - []byte: the document
//   - error: wraps one of the errs sentinels
//
// Example:
//
//	doc, err := framejson.Encode(series, framejson.WithOrient(framejson.OrientSplit))
func Encode(v any, opts ...Option) ([]byte, error) {
	return encoder.Encode(v, opts...)
}

// EncodeString is Encode returning a string.
func EncodeString(v any, opts ...Option) (string, error) {
	doc, err := encoder.Encode(v, opts...)
	if err != nil {
		return "", err
	}

	return string(doc), nil
}

// EncodeTo writes the JSON document for v to w. Nothing is written when
// encoding fails.
func EncodeTo(w io.Writer, v any, opts ...Option) error {
	return encoder.EncodeTo(w, v, opts...)
}

// EncodeCompressed returns the JSON document for v compressed as one block
// with the given codec. Decompress it with compress.GetCodec(compressionType).
//
// Parameters:
//   - v: value to encode
//   - compressionType: format.CompressionNone, Zstd, S2 or LZ4
//   - opts: encode options
//
// Returns:
//   - []byte: the compressed document
//   - error: encode failure, or errs.ErrInvalidOption for an unknown codec
func EncodeCompressed(v any, compressionType format.CompressionType, opts ...Option) ([]byte, error) {
	codec, err := compress.CreateCodec(compressionType, "document")
	if err != nil {
		return nil, err
	}

	doc, err := encoder.Encode(v, opts...)
	if err != nil {
		return nil, err
	}

	packed, err := codec.Compress(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to compress document: %w", err)
	}

	return packed, nil
}

// EncodeCompressedTo writes the JSON document for v to w as a compressed
// stream, readable with compress.NewReader. w is not closed, and nothing is
// written to it when encoding fails.
func EncodeCompressedTo(w io.Writer, v any, compressionType format.CompressionType, opts ...Option) error {
	doc, err := encoder.Encode(v, opts...)
	if err != nil {
		return err
	}

	cw, err := compress.NewWriter(w, compressionType)
	if err != nil {
		return err
	}

	if _, err := cw.Write(doc); err != nil {
		_ = cw.Close()
		return fmt.Errorf("failed to compress document: %w", err)
	}

	return cw.Close()
}
