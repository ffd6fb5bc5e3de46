package dom_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frontkit/pkg/dom"
)

type dragCounter struct {
	start, drag, end int
	last             dom.Event
}

func (c *dragCounter) options() dom.DragOptions {
	return dom.DragOptions{
		Start: func(e dom.Event) { c.start++; c.last = e },
		Drag:  func(e dom.Event) { c.drag++; c.last = e },
		End:   func(e dom.Event) { c.end++; c.last = e },
	}
}

func press() dom.Event   { return dom.MouseEvent{Name: dom.EventMouseDown} }
func release() dom.Event { return dom.MouseEvent{Name: dom.EventMouseUp} }

func moveTo(x, y float64) dom.Event {
	return dom.MouseEvent{Name: dom.EventMouseMove, X: x, Y: y}
}

func TestTriggerDragEvent(t *testing.T) {
	t.Parallel()

	t.Run("press move move release", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		el := doc.CreateElement("div")
		c := &dragCounter{}

		s := dom.TriggerDragEvent(el, c.options())
		require.NotNil(t, s)
		assert.Equal(t, dom.DragIdle, s.Phase())

		el.Dispatch(press())
		assert.Equal(t, 1, c.start)
		assert.True(t, s.Dragging())

		doc.Dispatch(moveTo(1, 1))
		doc.Dispatch(moveTo(2, 2))
		assert.Equal(t, 2, c.drag)
		assert.Equal(t, moveTo(2, 2), c.last)

		doc.Dispatch(release())
		assert.Equal(t, 1, c.end)
		assert.Equal(t, dom.DragIdle, s.Phase())

		doc.Dispatch(moveTo(3, 3))
		doc.Dispatch(release())
		assert.Equal(t, 1, c.start)
		assert.Equal(t, 2, c.drag)
		assert.Equal(t, 1, c.end)
	})

	t.Run("moves before press are not delivered", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		el := doc.CreateElement("div")
		c := &dragCounter{}
		dom.TriggerDragEvent(el, c.options())

		doc.Dispatch(moveTo(1, 1))
		doc.Dispatch(release())
		assert.Zero(t, c.drag)
		assert.Zero(t, c.end)
	})

	t.Run("press while dragging is ignored", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		el := doc.CreateElement("div")
		c := &dragCounter{}
		dom.TriggerDragEvent(el, c.options())

		el.Dispatch(press())
		el.Dispatch(press())
		assert.Equal(t, 1, c.start)
		assert.Equal(t, 1, doc.ListenerCount(dom.EventMouseMove))
		assert.Equal(t, 1, doc.ListenerCount(dom.EventMouseUp))
	})

	t.Run("listeners live on the document only during a session", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		el := doc.CreateElement("div")
		dom.TriggerDragEvent(el, dom.DragOptions{})

		assert.Equal(t, 1, el.ListenerCount(dom.EventMouseDown))
		assert.Zero(t, doc.ListenerCount(dom.EventMouseMove))

		el.Dispatch(press())
		assert.Equal(t, 1, doc.ListenerCount(dom.EventMouseMove))
		assert.Equal(t, 1, doc.ListenerCount(dom.EventMouseUp))
		assert.Zero(t, el.ListenerCount(dom.EventMouseMove))

		doc.Dispatch(release())
		assert.Zero(t, doc.ListenerCount(dom.EventMouseMove))
		assert.Zero(t, doc.ListenerCount(dom.EventMouseUp))
		assert.Equal(t, 1, el.ListenerCount(dom.EventMouseDown))
	})

	t.Run("native selection is suppressed during a session", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		el := doc.CreateElement("div")
		dom.TriggerDragEvent(el, dom.DragOptions{})
		ev := dom.MouseEvent{Name: "selectstart"}

		assert.True(t, doc.SelectStart(ev))
		el.Dispatch(press())
		assert.False(t, doc.SelectStart(ev))
		assert.False(t, doc.DragStart(ev))
		doc.Dispatch(release())
		assert.True(t, doc.SelectStart(ev))
		assert.True(t, doc.DragStart(ev))
	})

	t.Run("missing callbacks are no-ops", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		el := doc.CreateElement("div")
		s := dom.TriggerDragEvent(el, dom.DragOptions{})

		assert.NotPanics(t, func() {
			el.Dispatch(press())
			doc.Dispatch(moveTo(1, 1))
			doc.Dispatch(release())
		})
		assert.False(t, s.Dragging())
	})

	t.Run("sessions are independent per element", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		a, b := doc.CreateElement("div"), doc.CreateElement("div")
		ca, cb := &dragCounter{}, &dragCounter{}
		sa := dom.TriggerDragEvent(a, ca.options())
		sb := dom.TriggerDragEvent(b, cb.options())

		a.Dispatch(press())
		assert.True(t, sa.Dragging())
		assert.False(t, sb.Dragging())

		b.Dispatch(press())
		assert.Equal(t, 1, cb.start)

		doc.Dispatch(moveTo(5, 5))
		assert.Equal(t, 1, ca.drag)
		assert.Equal(t, 1, cb.drag)
	})

	t.Run("start callback can end the session", func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		el := doc.CreateElement("div")
		ends := 0
		s := dom.TriggerDragEvent(el, dom.DragOptions{
			Start: func(dom.Event) { doc.Dispatch(release()) },
			End:   func(dom.Event) { ends++ },
		})

		el.Dispatch(press())
		assert.Equal(t, 1, ends)
		assert.False(t, s.Dragging())
	})

	t.Run("invalid element", func(t *testing.T) {
		t.Parallel()
		el := dom.NewDocument().CreateElement("div")
		assert.Nil(t, dom.TriggerDragEvent(nil, dom.DragOptions{}))
		assert.Nil(t, dom.TriggerDragEvent(textNode{el}, dom.DragOptions{}))
		assert.Zero(t, el.ListenerCount(dom.EventMouseDown))
	})
}

func TestDragSessionLogging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	dom.TriggerDragEvent(el, dom.DragOptions{}, dom.WithDragLogger(log))

	el.Dispatch(press())
	el.Dispatch(press())

	out := buf.String()
	assert.Contains(t, out, "component=dom.drag")
	assert.Contains(t, out, "state transition")
	assert.Contains(t, out, "press ignored")
}
