// Package timer implements Timer, an auxiliary Publisher that fires a
// callback after a delay or on a repeating interval from its own goroutine.
// A Timer is a "sender": it injects envelopes into a Commutator but is never
// itself dispatched to, so it needs no id, registry entry, or subscriptions.
package timer
