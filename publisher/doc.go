// Package publisher gives anything — an attached actor, a Timer, a Store, or
// plain external code — a uniform way to inject envelopes into a
// Commutator's inbound queue.
//
// Scope:
//   - Sender[T, M]: a cheaply-copyable handle onto the Commutator's
//     unbounded envelope queue.
//   - Publisher[T, M]: Publish/Post/Send plus an Origin.
//   - Base[T, M]: an embeddable implementation of Publisher for actors and
//     auxiliary senders alike.
//   - Deputy[T, M]: a Publisher stamped with another actor's id, handed to
//     background work (e.g. inside a Timer callback) so it can publish on
//     that actor's behalf after the actor itself has moved on.
//
// Non-Goals:
//   - Backpressure or bounded queues. The underlying queue never blocks a
//     producer.
package publisher
