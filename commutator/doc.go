// Package commutator implements the single-task event loop that owns an
// actor registry, an inverted subscription index, and the inbound envelope
// queue. It is the only component permitted to mutate the registry or the
// subscription index; every other component communicates with it by
// message.
//
// Scope:
//   - Commutator[T, M]: registry + subscription index + dispatch loop.
//   - Attach/AttachAndInit/Detach lifecycle.
//   - Publish/Post enqueue operations, Sender for raw envelopes, Drain for
//     non-blocking pop.
//   - Interceptor: a hook run before normal dispatch, able to pass,
//     swallow, or stop the loop.
//
// Non-Goals:
//   - Multi-task or work-stealing dispatch. Every actor method the loop
//     calls runs on the single goroutine that called Run.
//   - Persistence or replay of the envelope queue across restarts.
package commutator
