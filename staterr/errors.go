package staterr

import "fmt"

// DepthExceeded is panicked when building an exit or entry path traverses
// more than MaxDepth states without reaching a root. It indicates the
// application's state tree has a cycle or is nested deeper than the engine
// supports.
type DepthExceeded struct {
	MaxDepth int
}

// Error implements the error interface.
func (e *DepthExceeded) Error() string {
	return fmt.Sprintf("stator: state nesting exceeds max depth of %d", e.MaxDepth)
}

// TransitionDuringMetaEvent is panicked when a state handler responds with
// Transition while processing an Entry or Exit meta-event. Only Handled or
// Parent are valid responses to those events.
type TransitionDuringMetaEvent struct {
	Phase string // "entry" or "exit"
}

// Error implements the error interface.
func (e *TransitionDuringMetaEvent) Error() string {
	return fmt.Sprintf("stator: state handler returned Transition while processing %s", e.Phase)
}

// NotAttached is panicked by operations that require a self-referencing
// actor id (post-to-self, recall) before the actor has been attached to a
// Commutator.
type NotAttached struct{}

// Error implements the error interface.
func (e *NotAttached) Error() string {
	return "stator: actor must be attached to a commutator before posting to itself"
}

// NoSender is panicked by a Publisher that is asked to send an envelope
// before a Sender has been wired to it.
type NoSender struct{}

// Error implements the error interface.
func (e *NoSender) Error() string {
	return "stator: publisher has no sender set"
}
