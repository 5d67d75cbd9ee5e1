// Package actor defines the Actor contract: an object with an identity, a
// set of default subscriptions, lifecycle hooks, and the ability to handle
// envelopes and publish its own. A Commutator owns a registry of Actors;
// embedding an hsm.Component is one concrete way to implement Handle/Init.
//
// Scope:
//   - Actor[T, M] interface.
//   - Base[T, M]: embeddable no-op implementation of the optional lifecycle
//     hooks, plus identity bookkeeping.
//
// Non-Goals:
//   - Cloning attached actors. Once an actor is attached, it is not expected
//     to be cloned or duplicated under a new identity.
package actor
