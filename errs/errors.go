// Package errs defines the sentinel errors reported by framejson.
//
// Every failure surfaced by an encode call wraps exactly one of these values,
// so callers can classify it with errors.Is.
package errs

import "errors"

var (
	// ErrUnsupportedType is reported when no traversal strategy matched a value
	// and no fallback could serialize it (for example a rank-0 array).
	ErrUnsupportedType = errors.New("value is not JSON serializable")

	// ErrLabelLengthMismatch is reported when an axis has fewer labels than elements.
	ErrLabelLengthMismatch = errors.New("label array sizes do not match corresponding data shape")

	// ErrNumericOverflow is reported when an integer or temporal value does not fit in int64.
	ErrNumericOverflow = errors.New("numeric value out of int64 range")

	// ErrAllocation is reported when a buffer reservation cannot be satisfied.
	ErrAllocation = errors.New("could not reserve memory block")

	// ErrDefaultHandler is reported when the default handler fails.
	ErrDefaultHandler = errors.New("failed to execute default handler")

	// ErrRecursionLimit is reported when nesting exceeds the configured maximum depth.
	ErrRecursionLimit = errors.New("maximum recursion level reached")

	// ErrBufferOverflow is reported when the output grows past the configured capacity.
	ErrBufferOverflow = errors.New("output exceeds encoder capacity")

	// ErrInvalidOption is reported for out-of-range or unknown configuration values.
	ErrInvalidOption = errors.New("invalid encoder option")

	// ErrNonUniqueLabels is reported when an orientation needs unique axis labels and they repeat.
	ErrNonUniqueLabels = errors.New("axis labels must be unique")

	// ErrShapeMismatch is reported when array data does not match the requested shape.
	ErrShapeMismatch = errors.New("data length does not match shape")

	// ErrDatetimeConversion is reported when a temporal value cannot be rendered.
	ErrDatetimeConversion = errors.New("could not convert datetime value to string")
)
