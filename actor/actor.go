package actor

import (
	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/publisher"
)

// ID is the process-unique identity a Commutator assigns to an actor at
// attach time. The contract is only that ids are unique among currently
// attached actors; this module mints them from a monotonic counter.
type ID = uint64

// Actor is consumed by a Commutator: it is registered, fed envelopes
// according to its subscriptions and to single-target posts, and eventually
// detached. Embedding an hsm.Component and driving it from Handle/Init is one
// concrete way to implement an Actor; an Actor need not use hsm at all.
type Actor[T comparable, M message.Message[T]] interface {
	publisher.Publisher[T, M]

	// ID returns this actor's assigned id, or 0 before it has been attached.
	ID() ID

	// SetID is called exactly once by Commutator.Attach.
	SetID(ID)

	// Handle processes one envelope.
	Handle(env message.Envelope[T, M])

	// OnAttach is called once, right after SetID and SetSender, when the
	// actor is attached to a Commutator.
	OnAttach(sender publisher.Sender[T, M])

	// OnDetach is called once, when the actor is removed from a Commutator.
	OnDetach()

	// Init is called once the Commutator starts running (or immediately, if
	// AttachAndInit was used).
	Init()

	// Deinit is called by Commutator.Detach after the actor has been removed
	// from the registry and the subscription index, just before OnDetach.
	// Most actors leave this as a no-op.
	Deinit()

	// DefaultSubscriptions lists the message types this actor should be
	// subscribed to when it is attached.
	DefaultSubscriptions() []T
}

// Base provides a default, no-op implementation of Actor's optional
// lifecycle hooks and identity/publishing bookkeeping. Concrete actors embed
// Base and implement at least Handle themselves.
type Base[T comparable, M message.Message[T]] struct {
	publisher.Base[T, M]
	id ID
}

// ID implements Actor.
func (b *Base[T, M]) ID() ID { return b.id }

// SetID implements Actor, also stamping this actor's Publisher Origin.
func (b *Base[T, M]) SetID(id ID) {
	b.id = id
	b.SetActorOrigin(id)
}

// OnAttach implements Actor as a no-op.
func (b *Base[T, M]) OnAttach(publisher.Sender[T, M]) {}

// OnDetach implements Actor as a no-op.
func (b *Base[T, M]) OnDetach() {}

// Init implements Actor as a no-op.
func (b *Base[T, M]) Init() {}

// Deinit implements Actor as a no-op.
func (b *Base[T, M]) Deinit() {}

// DefaultSubscriptions implements Actor, returning no subscriptions.
func (b *Base[T, M]) DefaultSubscriptions() []T { return nil }
