// Package dom provides guarded helpers over an abstract DOM: event listener
// registration, a drag-gesture session, class list mutation, bounding
// rectangle lookup and pointer angle computation.
//
// The helpers work against small interfaces (EventTarget, Element, Document)
// so they can drive a real browser binding as well as the in-memory tree in
// this package, which is what headless rendering and tests use.
//
// # Error Handling
//
// Nothing here returns an error or panics on bad input. Every helper validates
// its element and arguments first and silently does nothing when they are
// missing or when the element is not an element node. Lookups report absence
// through a boolean result.
//
// # Drag Sessions
//
// TriggerDragEvent binds a press listener to an element. A press starts a
// session: text selection and native drag-start are suppressed on the owner
// document, move and release listeners are installed on the document (so the
// gesture survives the pointer leaving the element) and the Start callback
// runs. Moves invoke Drag. A release tears the document listeners down,
// restores native behaviour and invokes End. A press while a session is
// active is ignored. Every callback is optional.
//
//	doc := dom.NewDocument()
//	knob := doc.CreateElement("div")
//	dom.TriggerDragEvent(knob, dom.DragOptions{
//	    Drag: func(e dom.Event) {
//	        if p, ok := e.(dom.Pointer); ok {
//	            rotate(dom.CalcAngle(knob, p))
//	        }
//	    },
//	})
//
// # Known Limitations
//
// RemoveEventListener always removes the non-capturing registration. A
// listener added with capture enabled cannot be removed through it; call the
// target's RemoveEventListener method directly.
package dom
