package encoder

// Visitor receives the event stream produced by the traversal engine.
//
// Container lengths passed to OnObjectStart and OnArrayStart are -1 when the
// element count is not known up front (sets, sequences, channels).
type Visitor interface {
	OnObjectStart(n int) error
	OnObjectFinished() error
	OnArrayStart(n int) error
	OnArrayFinished() error

	// OnKey writes a literal object key.
	OnKey(key string) error
	// OnLabel writes a pre-encoded axis label as an object key.
	OnLabel(label Label) error

	OnNil() error
	OnBool(b bool) error
	OnInt64(v int64) error
	OnFloat64(v float64) error
	OnString(s string) error
}

// Label is an axis label rendered once and spliced as an object key.
type Label struct {
	// Fragment is the JSON key including its trailing colon, e.g. "x":.
	Fragment []byte
	// Key is the unquoted key text.
	Key string
}
