package encoder

import (
	"fmt"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/ndarray"
)

// stridedState walks an N-d array without copying it. One state is shared by
// the root array node and every nested dimension node below it.
//
// curdim counts the dimensions descended so far; stridedim is the array axis
// being walked and moves by inc (+1, or -1 for a transposed walk). index
// holds the cursor of every axis. dataptr is a storage position in the
// backing slice.
type stridedState struct {
	arr       *ndarray.Array
	dataptr   int
	curdim    int
	ndim      int
	stridedim int
	inc       int
	dim       int
	stride    int
	index     []int

	rowLabels    []Label
	columnLabels []Label
}

func newStridedState(arr *ndarray.Array, transpose bool, rowLabels, columnLabels []Label) *stridedState {
	st := &stridedState{
		arr:          arr,
		dataptr:      arr.Offset(),
		ndim:         arr.NDim() - 1,
		index:        make([]int, arr.NDim()),
		rowLabels:    rowLabels,
		columnLabels: columnLabels,
	}

	if transpose {
		st.stridedim = st.ndim
		st.inc = -1
	} else {
		st.stridedim = 0
		st.inc = 1
	}
	st.dim = arr.Dim(st.stridedim)
	st.stride = arr.Stride(st.stridedim)

	return st
}

// descend moves one dimension deeper and reports false once the node has to
// emit elements instead.
func (st *stridedState) descend() bool {
	if st.curdim >= st.ndim || st.index[st.stridedim] >= st.dim {
		return false
	}

	st.index[st.stridedim]++
	st.curdim++
	st.stridedim += st.inc
	st.dim = st.arr.Dim(st.stridedim)
	st.stride = st.arr.Stride(st.stridedim)
	st.index[st.stridedim] = 0

	return true
}

// nextItem fetches the element under the cursor of the innermost axis.
func (st *stridedState) nextItem() (any, bool) {
	if st.index[st.stridedim] >= st.dim {
		return nil, false
	}

	item := elementAt(st.arr, st.dataptr)
	st.dataptr += st.stride
	st.index[st.stridedim]++

	return item, true
}

// ascend undoes the last descend and moves the data pointer to the next
// sibling of the finished dimension.
func (st *stridedState) ascend() {
	st.curdim--
	st.dataptr -= st.stride * st.index[st.stridedim]
	st.stridedim -= st.inc
	st.dim = st.arr.Dim(st.stridedim)
	st.stride = st.arr.Stride(st.stridedim)
	st.dataptr += st.stride
}

// dimensionRef is the child of a strided node that still has dimensions
// left; it re-enters the shared state instead of starting a new walk.
type dimensionRef struct {
	st *stridedState
}

// arrayOps walks a root array. Table strategies embed it after preparing labels.
type arrayOps struct{}

func (arrayOps) begin(_ *session, tc *typeContext) error {
	tc.st = newStridedState(tc.arr, tc.transpose, tc.rowLabels, tc.columnLabels)
	tc.limit = tc.st.dim

	return nil
}

func (arrayOps) next(_ *session, tc *typeContext) (bool, error) {
	return stridedNext(tc)
}

func (arrayOps) end(_ *session, tc *typeContext) {
	tc.st = nil
	tc.item = nil
	tc.rowLabels = nil
	tc.columnLabels = nil
}

func (arrayOps) getValue(_ *session, tc *typeContext) any { return tc.item }

func (arrayOps) getName(_ *session, tc *typeContext) (key, error) {
	return stridedName(tc)
}

// passthruOps walks one nested dimension of a shared strided state.
type passthruOps struct{}

func (passthruOps) begin(_ *session, tc *typeContext) error {
	tc.limit = tc.st.dim

	return nil
}

func (passthruOps) next(_ *session, tc *typeContext) (bool, error) {
	return stridedNext(tc)
}

func (passthruOps) end(_ *session, tc *typeContext) {
	tc.st.ascend()
	tc.item = nil
}

func (passthruOps) getValue(_ *session, tc *typeContext) any { return tc.item }

func (passthruOps) getName(_ *session, tc *typeContext) (key, error) {
	return stridedName(tc)
}

func stridedNext(tc *typeContext) (bool, error) {
	st := tc.st
	if !tc.itemMode {
		if st.descend() {
			tc.item = dimensionRef{st: st}
			return true, nil
		}
		tc.itemMode = true
	}

	item, ok := st.nextItem()
	tc.item = item

	return ok, nil
}

// stridedName returns the label for the position just consumed: column
// labels while emitting elements, row labels while descending.
func stridedName(tc *typeContext) (key, error) {
	st := tc.st

	var (
		labels []Label
		idx    int
	)
	if tc.itemMode {
		labels = st.columnLabels
		idx = st.index[st.stridedim] - 1
	} else {
		labels = st.rowLabels
		idx = st.index[st.stridedim-st.inc] - 1
	}

	if idx < 0 || idx >= len(labels) {
		return key{}, fmt.Errorf("no label for position %d: %w", idx, errs.ErrLabelLengthMismatch)
	}

	return key{label: &labels[idx]}, nil
}
