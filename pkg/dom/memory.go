package dom

import (
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/frontkit/pkg/arrayutil"
)

type registration struct {
	listener EventListener
	capture  bool
}

// target is an in-memory EventTarget.
type target struct {
	mu        sync.Mutex
	listeners map[string][]registration
}

func (t *target) AddEventListener(event string, l EventListener, capture bool) {
	if l == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.listeners == nil {
		t.listeners = make(map[string][]registration)
	}
	reg := registration{listener: l, capture: capture}
	if slices.Contains(t.listeners[event], reg) {
		return
	}
	t.listeners[event] = append(t.listeners[event], reg)
}

func (t *target) RemoveEventListener(event string, l EventListener, capture bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.listeners[event]) == 0 {
		return
	}
	reg := registration{listener: l, capture: capture}
	t.listeners[event] = slices.DeleteFunc(t.listeners[event], func(r registration) bool {
		return r == reg
	})
}

// ListenerCount returns the number of registrations for event.
func (t *target) ListenerCount(event string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[event])
}

// Dispatch delivers e to the listeners registered for e.Type() at the time of
// the call, in registration order. A listener removed by an earlier one during
// the same dispatch is skipped. Listeners run without any lock held.
func (t *target) Dispatch(e Event) {
	if e == nil {
		return
	}
	t.mu.Lock()
	snapshot := slices.Clone(t.listeners[e.Type()])
	t.mu.Unlock()

	for _, reg := range snapshot {
		if !t.registered(e.Type(), reg) {
			continue
		}
		reg.listener.HandleEvent(e)
	}
}

func (t *target) registered(event string, reg registration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Contains(t.listeners[event], reg)
}

// MemoryDocument is an in-memory Document.
type MemoryDocument struct {
	target

	hmu           sync.Mutex
	onSelectStart func(Event) bool
	onDragStart   func(Event) bool
}

// NewDocument returns an empty in-memory document.
func NewDocument() *MemoryDocument {
	return &MemoryDocument{}
}

func (d *MemoryDocument) NodeType() int { return DocumentNode }

func (d *MemoryDocument) SetOnSelectStart(h func(Event) bool) {
	d.hmu.Lock()
	defer d.hmu.Unlock()
	d.onSelectStart = h
}

func (d *MemoryDocument) SetOnDragStart(h func(Event) bool) {
	d.hmu.Lock()
	defer d.hmu.Unlock()
	d.onDragStart = h
}

// SelectStart runs the select-start handler and reports whether text
// selection may begin.
func (d *MemoryDocument) SelectStart(e Event) bool {
	d.hmu.Lock()
	h := d.onSelectStart
	d.hmu.Unlock()
	return h == nil || h(e)
}

// DragStart runs the drag-start handler and reports whether a native drag may
// begin.
func (d *MemoryDocument) DragStart(e Event) bool {
	d.hmu.Lock()
	h := d.onDragStart
	d.hmu.Unlock()
	return h == nil || h(e)
}

// CreateElement returns a new element owned by d.
func (d *MemoryDocument) CreateElement(tag string) *MemoryElement {
	return &MemoryElement{tag: strings.ToUpper(tag), doc: d}
}

// MemoryElement is an in-memory element node.
type MemoryElement struct {
	target

	mu        sync.Mutex
	tag       string
	className string
	rect      Rect
	doc       *MemoryDocument
}

func (e *MemoryElement) NodeType() int   { return ElementNode }
func (e *MemoryElement) TagName() string { return e.tag }

func (e *MemoryElement) ClassName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.className
}

func (e *MemoryElement) SetClassName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.className = name
}

func (e *MemoryElement) ClassList() ClassList {
	return classList{el: e}
}

func (e *MemoryElement) GetBoundingClientRect() Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rect
}

// SetBoundingClientRect sets the geometry reported by GetBoundingClientRect.
func (e *MemoryElement) SetBoundingClientRect(r Rect) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rect = r
}

func (e *MemoryElement) OwnerDocument() Document {
	if e.doc == nil {
		return nil
	}
	return e.doc
}

type classList struct {
	el *MemoryElement
}

func (c classList) Contains(token string) bool {
	if token == "" {
		return false
	}
	return slices.Contains(strings.Fields(c.el.ClassName()), token)
}

func (c classList) Toggle(token string, force ...bool) bool {
	if token == "" || strings.ContainsAny(token, " \t\n\r\f") {
		return false
	}

	tokens := arrayutil.Deduplicate(strings.Fields(c.el.ClassName()))
	present := slices.Contains(tokens, token)

	want := !present
	if len(force) > 0 {
		want = force[0]
	}
	if want == present {
		return present
	}

	if want {
		tokens = append(tokens, token)
	} else {
		tokens = slices.DeleteFunc(tokens, func(t string) bool { return t == token })
	}
	c.el.SetClassName(strings.Join(tokens, " "))
	return want
}
