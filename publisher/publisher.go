package publisher

import (
	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/staterr"
)

// Publisher is implemented by anything that can inject envelopes into a
// Commutator's inbound queue: attached actors, Timers, Stores, and plain
// external code holding a raw Sender.
type Publisher[T comparable, M message.Message[T]] interface {
	// Origin returns the Origin this Publisher stamps on envelopes it sends.
	Origin() message.Origin

	// SetSender wires this Publisher to a Commutator's envelope queue. It
	// must be called before Publish, Post, or Send.
	SetSender(Sender[T, M])

	// Publish enqueues an envelope addressed to every subscriber of m's type.
	Publish(m M)

	// Post enqueues an envelope addressed to a single actor id.
	Post(m M, actorID uint64)

	// Send enqueues a fully-formed envelope as-is.
	Send(env message.Envelope[T, M])
}

// Base is an embeddable implementation of Publisher. Concrete actors and
// auxiliary senders (Timer, Store) embed Base to get Publish/Post/Send for
// free.
type Base[T comparable, M message.Message[T]] struct {
	sender  Sender[T, M]
	actorID uint64
	isActor bool
}

// SetSender implements Publisher.
func (b *Base[T, M]) SetSender(s Sender[T, M]) { b.sender = s }

// SetActorOrigin stamps this Base's Origin as belonging to the given actor
// id, instead of Anonymous. Actors call this (indirectly, via actor.Base)
// when they are attached.
func (b *Base[T, M]) SetActorOrigin(id uint64) {
	b.actorID = id
	b.isActor = true
}

// Origin implements Publisher.
func (b *Base[T, M]) Origin() message.Origin {
	if b.isActor {
		return message.FromActor(b.actorID)
	}
	return message.Anonymous()
}

// Publish implements Publisher.
func (b *Base[T, M]) Publish(m M) {
	b.Send(message.Envelope[T, M]{Origin: b.Origin(), Destination: message.All(), Message: m})
}

// Post implements Publisher.
func (b *Base[T, M]) Post(m M, actorID uint64) {
	b.Send(message.Envelope[T, M]{Origin: b.Origin(), Destination: message.Single(actorID), Message: m})
}

// Send implements Publisher.
func (b *Base[T, M]) Send(env message.Envelope[T, M]) {
	if !b.sender.Valid() {
		panic(&staterr.NoSender{})
	}
	b.sender.In() <- env
}

// Deputy is a lightweight Publisher stamped with another actor's id, so
// background work (goroutines spawned by a Timer's callback, for instance)
// can keep publishing "in the name of" the actor that spawned it even after
// that actor's own call stack has returned.
type Deputy[T comparable, M message.Message[T]] struct {
	sender  Sender[T, M]
	actorID uint64
}

// NewDeputy builds a Deputy bound to the given sender and actor id.
func NewDeputy[T comparable, M message.Message[T]](sender Sender[T, M], actorID uint64) Deputy[T, M] {
	return Deputy[T, M]{sender: sender, actorID: actorID}
}

// ActorID returns the id this Deputy publishes on behalf of.
func (d Deputy[T, M]) ActorID() uint64 { return d.actorID }

// Origin implements Publisher.
func (d Deputy[T, M]) Origin() message.Origin { return message.FromActor(d.actorID) }

// SetSender implements Publisher by rewiring the underlying sender; Deputy
// values are normally constructed already-wired via NewDeputy.
func (d *Deputy[T, M]) SetSender(s Sender[T, M]) { d.sender = s }

// Publish implements Publisher.
func (d Deputy[T, M]) Publish(m M) {
	d.Send(message.Envelope[T, M]{Origin: d.Origin(), Destination: message.All(), Message: m})
}

// Post implements Publisher.
func (d Deputy[T, M]) Post(m M, actorID uint64) {
	d.Send(message.Envelope[T, M]{Origin: d.Origin(), Destination: message.Single(actorID), Message: m})
}

// Send implements Publisher.
func (d Deputy[T, M]) Send(env message.Envelope[T, M]) {
	if !d.sender.Valid() {
		panic(&staterr.NoSender{})
	}
	d.sender.In() <- env
}
