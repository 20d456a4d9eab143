package encoder

import (
	"reflect"

	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/ndarray"
)

type nodeShape uint8

const (
	shapeArray nodeShape = iota
	shapeObject
)

// strategy is the operation set that walks one container node.
//
// begin runs before the node's opening marker and may fail without output.
// next advances to the following child and reports whether one exists.
// getName is only called for object nodes. end always runs once begin was
// attempted, including on error paths.
type strategy interface {
	begin(s *session, tc *typeContext) error
	next(s *session, tc *typeContext) (bool, error)
	end(s *session, tc *typeContext)
	getValue(s *session, tc *typeContext) any
	getName(s *session, tc *typeContext) (key, error)
}

// key is an object key: a pre-encoded label or literal text.
type key struct {
	label *Label
	text  string
}

// typeContext is the per-node traversal state.
type typeContext struct {
	ops   strategy
	shape nodeShape
	value any
	rv    reflect.Value

	cursor int
	limit  int
	item   any
	name   key

	// owned lives exactly as long as the node, e.g. a ToDict result.
	owned any

	entries []entry
	fields  []field
	pull    func() (any, bool)
	stop    func()

	arr          *ndarray.Array
	st           *stridedState
	itemMode     bool
	transpose    bool
	rowLabels    []Label
	columnLabels []Label
	savedOrient  format.Orient
}

// entry is a resolved key/value pair of a map-like node.
type entry struct {
	key   string
	value any
}

// itemOps supplies the common getValue, getName and end operations for
// strategies whose next stores the current child in the context.
type itemOps struct{}

func (itemOps) getValue(_ *session, tc *typeContext) any { return tc.item }

func (itemOps) getName(_ *session, tc *typeContext) (key, error) { return tc.name, nil }

func (itemOps) end(_ *session, tc *typeContext) {
	tc.item = nil
	tc.owned = nil
}
