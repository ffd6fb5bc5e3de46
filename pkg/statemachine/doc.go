// Package statemachine provides a small, generic finite-state machine with
// guarded transitions and side-effect actions.
//
// States and events are any comparable types, typically string-based:
//
//	type phase string
//	type signal string
//
//	const (
//	    idle     phase = "idle"
//	    dragging phase = "dragging"
//
//	    press   signal = "press"
//	    release signal = "release"
//	)
//
//	m := statemachine.MustNew(idle,
//	    statemachine.WithTransition(idle, dragging, press),
//	    statemachine.WithTransition(dragging, idle, release),
//	)
//
//	_ = m.Fire(ctx, press, nil)
//	m.Current() // dragging
//
// # Guards and Actions
//
// Multiple transitions may share a source state and event; the first one whose
// guards all pass wins. Actions run in order after the guards and before the
// state changes. An action error aborts the transition and leaves the state
// untouched.
//
// # Error Handling
//
// Fire reports a missing transition with *ErrNoTransitionAvailable and a
// transition vetoed by guards with *ErrTransitionRejected. Use
// IsNoTransitionAvailableError and IsTransitionRejectedError to tell them apart.
//
// # Concurrency
//
// Machine guards its state with a RWMutex. Guards and actions run while the
// write lock is held and must not call back into the same machine.
package statemachine
