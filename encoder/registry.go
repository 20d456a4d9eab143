package encoder

import (
	"reflect"
	"sync"

	"github.com/arloliu/framejson/frame"
	"github.com/arloliu/framejson/ndarray"
)

type tableKind uint8

const (
	notTable tableKind = iota
	tableIndex
	tableSeries
	tableArray
	tableFrame
)

// tableKinds identifies the labeled and array container types by exact type.
// It is built on first use and never torn down.
var tableKinds = sync.OnceValue(func() map[reflect.Type]tableKind {
	return map[reflect.Type]tableKind{
		reflect.TypeFor[*frame.Index]():     tableIndex,
		reflect.TypeFor[*frame.Series]():    tableSeries,
		reflect.TypeFor[*ndarray.Array]():   tableArray,
		reflect.TypeFor[*frame.DataFrame](): tableFrame,
	}
})

func lookupTable(t reflect.Type) tableKind {
	return tableKinds()[t]
}
