package dom

// Node types reported by NodeType.
const (
	ElementNode  = 1
	TextNode     = 3
	DocumentNode = 9
)

// Event names used by drag sessions.
const (
	EventMouseDown = "mousedown"
	EventMouseMove = "mousemove"
	EventMouseUp   = "mouseup"
)

// Event is anything dispatched to listeners.
type Event interface {
	Type() string
}

// Pointer is an event carrying viewport coordinates.
type Pointer interface {
	ClientX() float64
	ClientY() float64
}

// MouseEvent is a pointer event with viewport coordinates.
type MouseEvent struct {
	Name string
	X, Y float64
}

func (e MouseEvent) Type() string      { return e.Name }
func (e MouseEvent) ClientX() float64 { return e.X }
func (e MouseEvent) ClientY() float64 { return e.Y }

// EventListener receives events. Listeners are compared by identity, so
// implementations should be pointers.
type EventListener interface {
	HandleEvent(e Event)
}

type listenerFunc struct {
	fn func(Event)
}

func (l *listenerFunc) HandleEvent(e Event) { l.fn(e) }

// ListenerFunc wraps fn into a listener with a stable identity. Keep the
// returned value to remove the listener later. A nil fn yields nil.
func ListenerFunc(fn func(Event)) EventListener {
	if fn == nil {
		return nil
	}
	return &listenerFunc{fn: fn}
}

// EventTarget accepts listener registrations.
type EventTarget interface {
	AddEventListener(event string, l EventListener, capture bool)
	RemoveEventListener(event string, l EventListener, capture bool)
}

// Rect is an element's geometry in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// ClassList is the token view of an element's class attribute.
type ClassList interface {
	Contains(token string) bool
	// Toggle removes token if present and adds it otherwise. With force, the
	// token is added when force is true and removed when false. It reports
	// whether token is present afterwards.
	Toggle(token string, force ...bool) bool
}

// Element is an element node.
type Element interface {
	EventTarget
	NodeType() int
	TagName() string
	ClassName() string
	SetClassName(name string)
	ClassList() ClassList
	GetBoundingClientRect() Rect
	OwnerDocument() Document
}

// Document is the root event target. The select-start and drag-start slots
// hold handlers that return false to cancel the native behaviour; nil restores
// the default.
type Document interface {
	EventTarget
	SetOnSelectStart(h func(Event) bool)
	SetOnDragStart(h func(Event) bool)
}
