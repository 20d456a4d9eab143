package encoder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/framejson/errs"
	"github.com/arloliu/framejson/format"
)

// session is the state of one encode call. It is never shared between
// goroutines.
type session struct {
	cfg    *settings
	out    Visitor
	orient format.Orient
	depth  int
	log    *zap.Logger
}

func newSession(cfg *settings, out Visitor) *session {
	return &session{
		cfg:    cfg,
		out:    out,
		orient: cfg.orient,
		log:    cfg.logger,
	}
}

// encode runs the classify and traverse pipeline for one value.
func (s *session) encode(v any) error {
	s.depth++
	defer func() { s.depth-- }()

	if s.depth > s.cfg.maxDepth {
		return fmt.Errorf("nesting depth %d: %w", s.depth, errs.ErrRecursionLimit)
	}

	tc, err := s.classify(v)
	if err != nil || tc == nil {
		return err
	}

	return s.traverse(tc)
}

// traverse walks a container node. end runs whether or not the walk failed.
func (s *session) traverse(tc *typeContext) error {
	err := s.walk(tc)
	tc.ops.end(s, tc)

	return err
}

func (s *session) walk(tc *typeContext) error {
	if err := tc.ops.begin(s, tc); err != nil {
		return err
	}

	object := tc.shape == shapeObject
	if object {
		if err := s.out.OnObjectStart(tc.limit); err != nil {
			return err
		}
	} else if err := s.out.OnArrayStart(tc.limit); err != nil {
		return err
	}

	for {
		more, err := tc.ops.next(s, tc)
		if err != nil {
			return err
		}
		if !more {
			break
		}

		if object {
			if err := s.writeKey(tc); err != nil {
				return err
			}
		}

		if err := s.encode(tc.ops.getValue(s, tc)); err != nil {
			return err
		}
	}

	if object {
		return s.out.OnObjectFinished()
	}

	return s.out.OnArrayFinished()
}

func (s *session) writeKey(tc *typeContext) error {
	k, err := tc.ops.getName(s, tc)
	if err != nil {
		return err
	}
	if k.label != nil {
		return s.out.OnLabel(*k.label)
	}

	return s.out.OnKey(k.text)
}

// invokeDefaultHandler encodes the handler's substitute in place of v.
func (s *session) invokeDefaultHandler(v any) error {
	s.log.Debug("invoking default handler", zap.String("type", fmt.Sprintf("%T", v)))

	sub, err := s.cfg.defaultHandler(v)
	if err != nil {
		return fmt.Errorf("%T: %w: %w", v, errs.ErrDefaultHandler, err)
	}

	return s.encode(sub)
}
