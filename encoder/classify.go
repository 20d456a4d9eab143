package encoder

import (
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/zap"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/frame"
	"github.com/arloliu/framejson/ndarray"
)

// classify writes v directly when it is a scalar and returns nil, or returns
// the context of the container strategy that walks it. The first matching
// rule wins:
//
//  1. nil and bool
//  2. array elements and nested dimensions handed down by a strided walk
//  3. exact scalar types: numbers, text, decimals, temporal values
//  4. indexes, series, arrays and tables
//  5. Mapping, Set, sequences, Go maps, slices, arrays and channels
//  6. Dicter
//  7. named scalar kinds and pointers, which are dereferenced
//  8. the default handler
//  9. the reflective struct fallback
//
// The default handler always receives v as passed, before any pointer
// dereference.
func (s *session) classify(v any) (*typeContext, error) {
	return s.classifyValue(v, v)
}

// classifyValue classifies v, where orig is the value before pointers
// were followed.
func (s *session) classifyValue(orig, v any) (*typeContext, error) {
	switch x := v.(type) {
	case nil:
		return nil, s.out.OnNil()
	case bool:
		return nil, s.out.OnBool(x)
	case dimensionRef:
		tc := &typeContext{ops: passthruOps{}, value: v, st: x.st}
		if x.st.columnLabels != nil {
			tc.shape = shapeObject
		}

		return tc, nil
	case elementRef:
		return nil, s.encodeElement(x)
	}

	if ok, err := s.encodeScalar(v); ok {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return nil, s.out.OnNil()
	}

	switch lookupTable(rv.Type()) {
	case tableIndex:
		return s.classifyIndex(v.(*frame.Index)), nil
	case tableSeries:
		return s.classifySeries(v.(*frame.Series)), nil
	case tableArray:
		return s.classifyArray(v.(*ndarray.Array))
	case tableFrame:
		return s.classifyFrame(v.(*frame.DataFrame)), nil
	case notTable:
	}

	switch v.(type) {
	case Mapping:
		return &typeContext{ops: entryOps{}, shape: shapeObject, value: v}, nil
	case Set, iter.Seq[any], func(func(any) bool):
		return &typeContext{ops: iterOps{}, value: v}, nil
	}

	switch rv.Kind() { //nolint: exhaustive
	case reflect.Map:
		return &typeContext{ops: entryOps{}, shape: shapeObject, value: v}, nil
	case reflect.Slice, reflect.Array:
		return &typeContext{ops: listOps{}, value: v, rv: rv}, nil
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			return &typeContext{ops: iterOps{}, value: v, rv: rv}, nil
		}
	}

	if d, ok := v.(Dicter); ok {
		return s.classifyDict(v, d)
	}

	if ok, err := s.encodeKind(rv); ok {
		return nil, err
	}
	if rv.Kind() == reflect.Pointer {
		return s.classifyValue(orig, rv.Elem().Interface())
	}

	if s.cfg.defaultHandler != nil {
		return nil, s.invokeDefaultHandler(orig)
	}

	if rv.Kind() == reflect.Struct {
		return &typeContext{ops: dirOps{}, shape: shapeObject, value: v, rv: rv}, nil
	}

	return nil, fmt.Errorf("%T: %w", v, errs.ErrUnsupportedType)
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() { //nolint: exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func (s *session) classifyIndex(ix *frame.Index) *typeContext {
	if s.orient == format.OrientSplit {
		return &typeContext{ops: splitOps{}, shape: shapeObject, value: ix, entries: indexSplitEntries(ix)}
	}

	return &typeContext{ops: arrayOps{}, value: ix, arr: ix.Values()}
}

func (s *session) classifySeries(sr *frame.Series) *typeContext {
	switch s.orient { //nolint: exhaustive
	case format.OrientSplit:
		return &typeContext{ops: splitOps{}, shape: shapeObject, value: sr, entries: seriesSplitEntries(sr)}
	case format.OrientIndex, format.OrientColumns:
		return &typeContext{ops: seriesOps{}, shape: shapeObject, value: sr, arr: sr.Values()}
	default:
		return &typeContext{ops: seriesOps{}, value: sr, arr: sr.Values()}
	}
}

func (s *session) classifyArray(arr *ndarray.Array) (*typeContext, error) {
	if arr.NDim() == 0 {
		return nil, fmt.Errorf("%v (0d array) is not JSON serializable: %w", arr.At(), errs.ErrUnsupportedType)
	}

	return &typeContext{ops: arrayOps{}, value: arr, arr: arr}, nil
}

func (s *session) classifyFrame(df *frame.DataFrame) *typeContext {
	switch s.orient { //nolint: exhaustive
	case format.OrientSplit:
		return &typeContext{ops: splitOps{}, shape: shapeObject, value: df, entries: frameSplitEntries(df)}
	case format.OrientIndex, format.OrientColumns:
		return &typeContext{ops: frameOps{}, shape: shapeObject, value: df, arr: df.Values()}
	default:
		return &typeContext{ops: frameOps{}, value: df, arr: df.Values()}
	}
}

// classifyDict converts v with ToDict. Failures and results that are not
// mappings are written as null.
func (s *session) classifyDict(v any, d Dicter) (*typeContext, error) {
	res, err := d.ToDict()
	if err != nil {
		s.log.Debug("ToDict failed, writing null", zap.String("type", fmt.Sprintf("%T", v)), zap.Error(err))
		return nil, s.out.OnNil()
	}

	if _, ok := res.(Mapping); !ok {
		rv := reflect.ValueOf(res)
		if rv.Kind() != reflect.Map || rv.IsNil() {
			s.log.Debug("ToDict returned a non-mapping, writing null",
				zap.String("type", fmt.Sprintf("%T", v)),
				zap.String("result", fmt.Sprintf("%T", res)))

			return nil, s.out.OnNil()
		}
	}

	return &typeContext{ops: entryOps{}, shape: shapeObject, value: v, owned: res}, nil
}
