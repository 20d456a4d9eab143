package encoder

import "iter"

// Item is one key/value pair of a Mapping.
type Item struct {
	Key   any
	Value any
}

// Mapping is an ordered key/value container. Keys that are not strings are
// written using their textual form.
type Mapping interface {
	Items() []Item
}

// Set is an unordered collection consumed once, front to back.
type Set interface {
	Values() iter.Seq[any]
}

// Dicter converts a value into a mapping before encoding. A failed
// conversion, or a result that is not a map or Mapping, encodes as null.
type Dicter interface {
	ToDict() (any, error)
}
