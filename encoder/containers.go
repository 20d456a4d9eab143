package encoder

import (
	"cmp"
	"encoding"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// listOps walks slices and arrays by position.
type listOps struct {
	itemOps
}

func (listOps) begin(_ *session, tc *typeContext) error {
	tc.limit = tc.rv.Len()

	return nil
}

func (listOps) next(_ *session, tc *typeContext) (bool, error) {
	if tc.cursor >= tc.limit {
		return false, nil
	}

	if list, ok := tc.value.([]any); ok {
		tc.item = list[tc.cursor]
	} else {
		tc.item = tc.rv.Index(tc.cursor).Interface()
	}
	tc.cursor++

	return true, nil
}

// entryOps walks resolved key/value pairs: Go maps (sorted by key text),
// Mapping values (in their own order) and ToDict results.
type entryOps struct {
	itemOps
}

func (entryOps) begin(_ *session, tc *typeContext) error {
	src := tc.value
	if tc.owned != nil {
		src = tc.owned
	}

	if m, ok := src.(Mapping); ok {
		items := m.Items()
		tc.entries = make([]entry, len(items))
		for i, it := range items {
			tc.entries[i] = entry{key: keyText(it.Key), value: it.Value}
		}
	} else {
		rv := reflect.ValueOf(src)
		tc.entries = make([]entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			tc.entries = append(tc.entries, entry{key: keyText(it.Key().Interface()), value: it.Value().Interface()})
		}
		slices.SortFunc(tc.entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
	}
	tc.limit = len(tc.entries)

	return nil
}

func (entryOps) next(_ *session, tc *typeContext) (bool, error) {
	if tc.cursor >= len(tc.entries) {
		return false, nil
	}

	e := tc.entries[tc.cursor]
	tc.item = e.value
	tc.name = key{text: e.key}
	tc.cursor++

	return true, nil
}

func (entryOps) end(_ *session, tc *typeContext) {
	tc.entries = nil
	tc.item = nil
	tc.owned = nil
}

// keyText converts a map key to the text used as its JSON key.
func keyText(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case encoding.TextMarshaler:
		if b, err := x.MarshalText(); err == nil {
			return string(b)
		}
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(k)
	if rv.Kind() == reflect.String {
		return rv.String()
	}

	return fmt.Sprint(k)
}

// iterOps consumes a set, sequence or channel once, front to back.
type iterOps struct {
	itemOps
}

func (iterOps) begin(_ *session, tc *typeContext) error {
	var seq iter.Seq[any]
	switch x := tc.value.(type) {
	case Set:
		seq = x.Values()
	case iter.Seq[any]:
		seq = x
	case func(func(any) bool):
		seq = x
	default:
		seq = channelSeq(tc.rv)
	}

	tc.pull, tc.stop = iter.Pull(seq)
	tc.limit = -1

	return nil
}

func (iterOps) next(_ *session, tc *typeContext) (bool, error) {
	item, ok := tc.pull()
	tc.item = item

	return ok, nil
}

func (iterOps) end(_ *session, tc *typeContext) {
	if tc.stop != nil {
		tc.stop()
	}
	tc.pull, tc.stop = nil, nil
	tc.item = nil
}

// channelSeq receives from ch until it is closed.
func channelSeq(ch reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for {
			v, ok := ch.Recv()
			if !ok || !yield(v.Interface()) {
				return
			}
		}
	}
}

// field is one candidate member of a struct walked by dirOps.
type field struct {
	name  string
	index []int
}

// dirOps is the reflective fallback: it lists exported, non-func struct
// fields. Fields whose access fails, such as those promoted through a nil
// embedded pointer, are skipped.
type dirOps struct {
	itemOps
}

func (dirOps) begin(_ *session, tc *typeContext) error {
	tc.fields = structFields(tc.rv.Type())
	tc.limit = -1

	return nil
}

func (dirOps) next(s *session, tc *typeContext) (bool, error) {
	for tc.cursor < len(tc.fields) {
		f := tc.fields[tc.cursor]
		tc.cursor++

		v, err := tc.rv.FieldByIndexErr(f.index)
		if err != nil || !v.CanInterface() {
			s.log.Debug("skipping inaccessible field",
				zap.String("type", tc.rv.Type().String()),
				zap.String("field", f.name))

			continue
		}

		tc.item = v.Interface()
		tc.name = key{text: f.name}

		return true, nil
	}

	return false, nil
}

func (dirOps) end(_ *session, tc *typeContext) {
	tc.fields = nil
	tc.item = nil
}

func structFields(t reflect.Type) []field {
	var fields []field
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Type.Kind() == reflect.Func {
			continue
		}
		if sf.Anonymous && isStructLike(sf.Type) {
			continue
		}

		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, field{name: name, index: sf.Index})
	}

	return fields
}

func isStructLike(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}
