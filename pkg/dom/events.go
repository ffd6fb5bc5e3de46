package dom

// AddEventListener registers l on t for event. It does nothing when t or l is
// nil or event is empty. Capture defaults to false.
func AddEventListener(t EventTarget, event string, l EventListener, capture ...bool) {
	if t == nil || event == "" || l == nil {
		return
	}
	useCapture := len(capture) > 0 && capture[0]
	t.AddEventListener(event, l, useCapture)
}

// RemoveEventListener unregisters the non-capturing registration of l on t.
// It cannot remove a listener that was added with capture enabled.
func RemoveEventListener(t EventTarget, event string, l EventListener) {
	if t == nil || event == "" || l == nil {
		return
	}
	t.RemoveEventListener(event, l, false)
}
