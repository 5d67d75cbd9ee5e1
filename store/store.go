package store

import (
	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/publisher"
)

// Store holds a value of type V and, like Timer, is a Publisher rather than
// an Actor: it can inject envelopes but is never itself dispatched to.
type Store[T comparable, M message.Message[T], V any] struct {
	publisher.Base[T, M]

	value    V
	OnMutate func(*Store[T, M, V])
}

// New builds a Store holding the given initial value.
func New[T comparable, M message.Message[T], V any](initial V) *Store[T, M, V] {
	return &Store[T, M, V]{value: initial}
}

// Value returns the currently held value.
func (s *Store[T, M, V]) Value() V { return s.value }

// Mutate assigns v and then runs OnMutate, whose typical body publishes a
// change notification carrying the new value.
func (s *Store[T, M, V]) Mutate(v V) {
	s.value = v
	if s.OnMutate != nil {
		s.OnMutate(s)
	}
}
