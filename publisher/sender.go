package publisher

import (
	infinity "github.com/Code-Hex/go-infinity-channel"

	"github.com/mdeloof/stator/message"
)

// Sender is a cheaply-copyable handle onto an unbounded, multi-producer,
// single-consumer envelope queue: any number of goroutines may hold and
// send through a copy of the same Sender, and sending never blocks the
// caller.
type Sender[T comparable, M message.Message[T]] struct {
	ch *infinity.Channel[message.Envelope[T, M]]
}

// NewSender allocates a fresh, empty envelope queue.
func NewSender[T comparable, M message.Message[T]]() Sender[T, M] {
	return Sender[T, M]{ch: infinity.NewChannel[message.Envelope[T, M]]()}
}

// Valid reports whether this Sender has been wired to a live queue.
func (s Sender[T, M]) Valid() bool { return s.ch != nil }

// In returns the write end of the queue.
func (s Sender[T, M]) In() chan<- message.Envelope[T, M] { return s.ch.In() }

// Out returns the read end of the queue. Only the Commutator that owns this
// Sender should read from it.
func (s Sender[T, M]) Out() <-chan message.Envelope[T, M] { return s.ch.Out() }

// Close shuts the queue down. Any blocked or future sends on In() after
// Close will panic, matching the "sending on a dropped channel is a hard
// error" rule from the error taxonomy.
func (s Sender[T, M]) Close() { s.ch.Close() }
