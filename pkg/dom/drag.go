package dom

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/frontkit/pkg/logger"
	"github.com/dmitrymomot/frontkit/pkg/statemachine"
)

// DragOptions holds the optional drag callbacks.
type DragOptions struct {
	Start func(e Event) // on press
	Drag  func(e Event) // on every move during a session
	End   func(e Event) // on release
}

// DragPhase is the state of a drag session.
type DragPhase string

const (
	DragIdle     DragPhase = "idle"
	DragDragging DragPhase = "dragging"
)

type dragSignal string

const (
	signalPress   dragSignal = "press"
	signalRelease dragSignal = "release"
)

// DragSession is the drag gesture bound to one element.
type DragSession struct {
	el   Element
	doc  Document
	opts DragOptions
	log  *slog.Logger
	fsm  *statemachine.Machine[DragPhase, dragSignal]

	down EventListener
	move EventListener
	up   EventListener
}

// DragOption configures a drag session.
type DragOption func(*DragSession)

// WithDragLogger logs session transitions at debug level.
func WithDragLogger(l *slog.Logger) DragOption {
	return func(s *DragSession) {
		if l != nil {
			s.log = l
		}
	}
}

// TriggerDragEvent binds a drag session to el and returns it. It returns nil
// without side effects when el is not an element node or has no owner
// document.
func TriggerDragEvent(el Element, opts DragOptions, options ...DragOption) *DragSession {
	if !isElement(el) {
		return nil
	}
	doc := el.OwnerDocument()
	if doc == nil {
		return nil
	}

	s := &DragSession{
		el:   el,
		doc:  doc,
		opts: opts,
		log:  logger.Discard(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.log = s.log.With(logger.Component("dom.drag"))

	s.move = ListenerFunc(s.onMove)
	s.up = ListenerFunc(s.onRelease)
	s.down = ListenerFunc(s.onPress)

	s.fsm = statemachine.New(DragIdle,
		statemachine.WithLogger[DragPhase, dragSignal](s.log),
		statemachine.WithTransition(DragIdle, DragDragging, signalPress,
			statemachine.WithAction[DragPhase, dragSignal](s.begin),
		),
		statemachine.WithTransition(DragDragging, DragIdle, signalRelease,
			statemachine.WithAction[DragPhase, dragSignal](s.finish),
		),
	)

	AddEventListener(el, EventMouseDown, s.down)
	return s
}

// Phase returns the current phase of the session.
func (s *DragSession) Phase() DragPhase {
	return s.fsm.Current()
}

// Dragging reports whether a press has started a session that has not been
// released yet.
func (s *DragSession) Dragging() bool {
	return s.fsm.Is(DragDragging)
}

func (s *DragSession) onPress(e Event) {
	if err := s.fsm.Fire(context.Background(), signalPress, e); err != nil {
		s.log.Debug("press ignored", logger.Event(e.Type()), logger.Error(err))
		return
	}
	if s.opts.Start != nil {
		s.opts.Start(e)
	}
}

func (s *DragSession) onMove(e Event) {
	if s.opts.Drag != nil {
		s.opts.Drag(e)
	}
}

func (s *DragSession) onRelease(e Event) {
	if err := s.fsm.Fire(context.Background(), signalRelease, e); err != nil {
		s.log.Debug("release ignored", logger.Event(e.Type()), logger.Error(err))
		return
	}
	if s.opts.End != nil {
		s.opts.End(e)
	}
}

func suppress(Event) bool { return false }

func (s *DragSession) begin(context.Context, DragPhase, DragPhase, dragSignal, any) error {
	s.doc.SetOnSelectStart(suppress)
	s.doc.SetOnDragStart(suppress)
	AddEventListener(s.doc, EventMouseMove, s.move)
	AddEventListener(s.doc, EventMouseUp, s.up)
	return nil
}

func (s *DragSession) finish(context.Context, DragPhase, DragPhase, dragSignal, any) error {
	RemoveEventListener(s.doc, EventMouseMove, s.move)
	RemoveEventListener(s.doc, EventMouseUp, s.up)
	s.doc.SetOnSelectStart(nil)
	s.doc.SetOnDragStart(nil)
	return nil
}
