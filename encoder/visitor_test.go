package encoder

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	sfjson "github.com/elastic/go-structform/json"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/framejson/format"
	"github.com/arloliu/framejson/frame"
)

// recorder captures the event stream as short tokens.
type recorder struct {
	events []string
}

func (r *recorder) add(ev string) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) OnObjectStart(n int) error { return r.add("{" + strconv.Itoa(n)) }
func (r *recorder) OnObjectFinished() error { return r.add("}") }
func (r *recorder) OnArrayStart(int) error { return r.add("[") }
func (r *recorder) OnArrayFinished() error { return r.add("]") }
func (r *recorder) OnKey(k string) error { return r.add("key:" + k) }
func (r *recorder) OnLabel(l Label) error { return r.add("label:" + string(l.Fragment)) }
func (r *recorder) OnNil() error { return r.add("nil") }
func (r *recorder) OnBool(b bool) error { return r.add(strconv.FormatBool(b)) }
func (r *recorder) OnInt64(v int64) error { return r.add(strconv.FormatInt(v, 10)) }
func (r *recorder) OnFloat64(v float64) error { return r.add(fmt.Sprint(v)) }
func (r *recorder) OnString(s string) error { return r.add(strconv.Quote(s)) }

func TestWalk_Events(t *testing.T) {
	df := sampleFrame(t, frame.StringIndex("x", "y"), frame.StringIndex("a", "b"))

	rec := &recorder{}
	require.NoError(t, Walk(df, rec, WithOrient(format.OrientIndex)))
	require.Equal(t, []string{
		"{2",
		`label:"x":`, "{2", `label:"a":`, "1", `label:"b":`, "2", "}",
		`label:"y":`, "{2", `label:"a":`, "3", `label:"b":`, "4", "}",
		"}",
	}, rec.events)

	rec = &recorder{}
	require.NoError(t, Walk(map[string]any{"k": nil}, rec))
	require.Equal(t, []string{"{1", "key:k", "nil", "}"}, rec.events)

	rec = &recorder{}
	require.NoError(t, Walk(point{X: 1}, rec))
	require.Equal(t, []string{"{-1", "key:x", "1", "key:Y", "0", "}"}, rec.events)
}

func TestEncodeVisitor_StructformJSON(t *testing.T) {
	df := sampleFrame(t, frame.StringIndex("x", "y"), frame.StringIndex("a", "b"))

	var buf bytes.Buffer
	vs := sfjson.NewVisitor(&buf)
	require.NoError(t, EncodeVisitor(df, vs, WithOrient(format.OrientIndex)))

	var got map[string]map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, map[string]map[string]int{
		"x": {"a": 1, "b": 2},
		"y": {"a": 3, "b": 4},
	}, got)
}
