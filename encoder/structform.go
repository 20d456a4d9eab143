package encoder

import (
	structform "github.com/elastic/go-structform"
)

// structformVisitor forwards the event stream to a go-structform visitor,
// so the same traversal can produce JSON, CBOR or UBJSON.
type structformVisitor struct {
	v structform.Visitor
}

func (a structformVisitor) OnObjectStart(n int) error {
	return a.v.OnObjectStart(n, structform.AnyType)
}

func (a structformVisitor) OnObjectFinished() error { return a.v.OnObjectFinished() }

func (a structformVisitor) OnArrayStart(n int) error {
	return a.v.OnArrayStart(n, structform.AnyType)
}

func (a structformVisitor) OnArrayFinished() error { return a.v.OnArrayFinished() }
func (a structformVisitor) OnKey(key string) error { return a.v.OnKey(key) }
func (a structformVisitor) OnLabel(label Label) error { return a.v.OnKey(label.Key) }
func (a structformVisitor) OnNil() error { return a.v.OnNil() }
func (a structformVisitor) OnBool(b bool) error { return a.v.OnBool(b) }
func (a structformVisitor) OnInt64(v int64) error { return a.v.OnInt64(v) }
func (a structformVisitor) OnString(s string) error { return a.v.OnString(s) }
func (a structformVisitor) OnFloat64(v float64) error { return a.v.OnFloat64(v) }
