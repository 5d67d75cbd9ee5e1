package hsm

import (
	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/staterr"
)

// SelfPoster is the capability Defer's recall operations need: a Publisher
// that also knows its own actor id, so a recalled message can be posted
// back to self. actor.Actor satisfies this automatically.
type SelfPoster[T comparable, M message.Message[T]] interface {
	ID() uint64
	Post(m M, actorID uint64)
}

// Defer appends ev to component's deferral queue for later replay via one
// of the Recall* functions.
func Defer[A any, T comparable, M message.Message[T]](component *Component[A, T, M], ev M) {
	component.deferred = append(component.deferred, ev)
}

// RecallFront pops the oldest deferred event, if any, and posts it back to
// self. It panics with staterr.NotAttached if self has not been assigned an
// id yet (actor id 0 with no Commutator attachment).
func RecallFront[A any, T comparable, M message.Message[T]](self SelfPoster[T, M], component *Component[A, T, M]) {
	if len(component.deferred) == 0 {
		return
	}
	ev := component.deferred[0]
	component.deferred = component.deferred[1:]
	postToSelf(self, ev)
}

// RecallBack pops the newest deferred event, if any, and posts it back to
// self.
func RecallBack[A any, T comparable, M message.Message[T]](self SelfPoster[T, M], component *Component[A, T, M]) {
	n := len(component.deferred)
	if n == 0 {
		return
	}
	ev := component.deferred[n-1]
	component.deferred = component.deferred[:n-1]
	postToSelf(self, ev)
}

// RecallAll drains the entire deferral queue, posting every event back to
// self in FIFO order.
func RecallAll[A any, T comparable, M message.Message[T]](self SelfPoster[T, M], component *Component[A, T, M]) {
	pending := component.deferred
	component.deferred = nil
	for _, ev := range pending {
		postToSelf(self, ev)
	}
}

// ClearDeferred empties the deferral queue without replaying anything.
func ClearDeferred[A any, T comparable, M message.Message[T]](component *Component[A, T, M]) {
	component.deferred = nil
}

func postToSelf[T comparable, M message.Message[T]](self SelfPoster[T, M], ev M) {
	id := self.ID()
	if id == 0 {
		panic(&staterr.NotAttached{})
	}
	self.Post(ev, id)
}
