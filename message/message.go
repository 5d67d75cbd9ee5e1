package message

// Message is implemented by an application's event union. Type must be
// total and deterministic: it strips payload and returns a small, hashable
// tag (T) identifying the variant alone, so that two messages built from the
// same variant with different payloads compare equal under T.
type Message[T comparable] interface {
	Type() T
}

// OriginKind distinguishes an anonymous producer from one acting on behalf
// of a specific attached actor.
type OriginKind uint8

const (
	// OriginAnonymous marks an envelope produced outside of any actor
	// (external code, or a non-actor Publisher such as a Timer or Store).
	OriginAnonymous OriginKind = iota
	// OriginActor marks an envelope produced by (or on behalf of) an
	// attached actor.
	OriginActor
)

// Origin identifies who produced an envelope.
type Origin struct {
	kind OriginKind
	id   uint64
}

// Anonymous builds an Origin for a producer with no actor identity.
func Anonymous() Origin { return Origin{kind: OriginAnonymous} }

// FromActor builds an Origin stamped with the given actor id.
func FromActor(id uint64) Origin { return Origin{kind: OriginActor, id: id} }

// Kind reports whether this Origin is anonymous or actor-stamped.
func (o Origin) Kind() OriginKind { return o.kind }

// ActorID returns the stamped actor id and true, or (0, false) if Origin is
// anonymous.
func (o Origin) ActorID() (uint64, bool) {
	return o.id, o.kind == OriginActor
}

// DestinationKind distinguishes broadcast from single-actor delivery.
type DestinationKind uint8

const (
	// DestinationAll routes to every actor subscribed to the message's type.
	DestinationAll DestinationKind = iota
	// DestinationSingle routes to exactly one actor id, dropped silently if
	// that id is not currently attached.
	DestinationSingle
)

// Destination identifies where an envelope should be routed.
type Destination struct {
	kind DestinationKind
	id   uint64
}

// All builds a broadcast Destination.
func All() Destination { return Destination{kind: DestinationAll} }

// Single builds a Destination targeting exactly one actor id.
func Single(id uint64) Destination { return Destination{kind: DestinationSingle, id: id} }

// Kind reports whether this Destination is broadcast or single-target.
func (d Destination) Kind() DestinationKind { return d.kind }

// ActorID returns the target actor id and true, or (0, false) for All.
func (d Destination) ActorID() (uint64, bool) {
	return d.id, d.kind == DestinationSingle
}

// Envelope wraps a message together with its routing metadata. Envelopes are
// not retained by the Commutator after delivery.
type Envelope[T comparable, M Message[T]] struct {
	Origin      Origin
	Destination Destination
	Message     M
}
