package encoder

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/frame"
	"github.com/arloliu/framejson/internal/labelset"
	"github.com/arloliu/framejson/internal/pool"
	"github.com/arloliu/framejson/ndarray"
)

// encodeLabels renders the first n entries of a 1-d label array as object
// key fragments. Each label goes through the regular encode path into a
// scratch buffer; output that is not already a JSON string is quoted.
func (s *session) encodeLabels(labels *ndarray.Array, n int) ([]Label, error) {
	if labels.NDim() != 1 || labels.Size() < n {
		return nil, fmt.Errorf("%d labels for an axis of length %d: %w", labels.Size(), n, errs.ErrLabelLengthMismatch)
	}

	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	w := newJSONWriter(buf, s.cfg)
	w.maxSize = 0

	saved := s.out
	s.out = w
	defer func() { s.out = saved }()

	out := make([]Label, n)
	pos := labels.Offset()
	for i := range n {
		w.reset()
		if err := s.encode(elementAt(labels, pos)); err != nil {
			return nil, err
		}

		label, err := w.takeLabel()
		if err != nil {
			return nil, err
		}
		out[i] = label
		pos += labels.Stride(0)
	}

	return out, nil
}

// encodeAxis renders the labels of ix for an axis of length n. With unique
// set, a repeated label fails with errs.ErrNonUniqueLabels.
func (s *session) encodeAxis(ix *frame.Index, n int, axis string, unique bool) ([]Label, error) {
	labels, err := s.encodeLabels(ix.Values(), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", axis, err)
	}

	if unique {
		frags := make([][]byte, len(labels))
		for i := range labels {
			frags[i] = labels[i].Fragment
		}
		if i, dup := labelset.FirstDuplicate(frags); dup {
			return nil, fmt.Errorf("%s label %s repeats for orient '%s': %w", axis, labels[i].Key, s.orient, errs.ErrNonUniqueLabels)
		}
	}

	return labels, nil
}

// takeLabel turns the buffered rendering of one label into a key fragment.
func (w *jsonWriter) takeLabel() (Label, error) {
	rendered := w.buf.Bytes()
	if len(rendered) > 0 && rendered[0] == '"' {
		var text string
		if err := json.Unmarshal(rendered, &text); err != nil {
			return Label{}, fmt.Errorf("label %s is not a single JSON string: %w", rendered, errs.ErrUnsupportedType)
		}

		frag := make([]byte, len(rendered)+1)
		copy(frag, rendered)
		frag[len(rendered)] = ':'

		return Label{Fragment: frag, Key: text}, nil
	}

	text := string(rendered)
	w.reset()
	if err := w.appendString(text); err != nil {
		return Label{}, err
	}
	quoted := w.buf.Bytes()

	frag := make([]byte, len(quoted)+1)
	copy(frag, quoted)
	frag[len(quoted)] = ':'

	return Label{Fragment: frag, Key: text}, nil
}
