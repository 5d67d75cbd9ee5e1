package commutator

import (
	"context"

	"github.com/mdeloof/stator/actor"
	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/publisher"
)

// Commutator owns the registry, the inverted subscription index, and the
// inbound envelope queue. It is the only component that mutates either map;
// every method here runs on whatever goroutine calls it, but the contract
// the rest of the module relies on is that only the goroutine calling Run
// (or driving Attach/Detach/Publish/Post by hand, in tests) ever does so.
// Because of that single-task discipline, no mutex guards these maps.
type Commutator[T comparable, M message.Message[T]] struct {
	sender        publisher.Sender[T, M]
	registry      map[uint64]actor.Actor[T, M]
	subscriptions map[T]map[uint64]struct{}
	inited        map[uint64]bool
	nextID        uint64
	interceptor   Interceptor[T, M]
	ranOnce       bool
}

// Option configures a Commutator at construction time.
type Option[T comparable, M message.Message[T]] func(*Commutator[T, M])

// WithInterceptor installs fn as the Commutator's interceptor, equivalent to
// calling SetInterceptor immediately after New.
func WithInterceptor[T comparable, M message.Message[T]](fn Interceptor[T, M]) Option[T, M] {
	return func(c *Commutator[T, M]) { c.interceptor = fn }
}

// New constructs a Commutator with an empty registry and a fresh unbounded
// envelope queue.
func New[T comparable, M message.Message[T]](opts ...Option[T, M]) *Commutator[T, M] {
	c := &Commutator[T, M]{
		sender:        publisher.NewSender[T, M](),
		registry:      make(map[uint64]actor.Actor[T, M]),
		subscriptions: make(map[T]map[uint64]struct{}),
		inited:        make(map[uint64]bool),
		nextID:        1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sender returns the queue new Publishers (actors, Timers, Stores, or raw
// external producers) should wire themselves to in order to feed this
// Commutator.
func (c *Commutator[T, M]) Sender() publisher.Sender[T, M] { return c.sender }

// Attach assigns a, wires its sender, runs OnAttach, indexes its default
// subscriptions, and inserts it into the registry. It does not call Init.
func (c *Commutator[T, M]) Attach(a actor.Actor[T, M]) uint64 {
	id := c.nextID
	c.nextID++

	a.SetID(id)
	a.SetSender(c.sender)
	a.OnAttach(c.sender)

	for _, t := range a.DefaultSubscriptions() {
		set, ok := c.subscriptions[t]
		if !ok {
			set = make(map[uint64]struct{})
			c.subscriptions[t] = set
		}
		set[id] = struct{}{}
	}

	c.registry[id] = a
	return id
}

// AttachAndInit is Attach followed immediately by a.Init(). Run's own
// startup pass (which initializes any actor attached via plain Attach
// before the loop started) will not call Init on this actor a second time.
func (c *Commutator[T, M]) AttachAndInit(a actor.Actor[T, M]) uint64 {
	id := c.Attach(a)
	a.Init()
	c.inited[id] = true
	return id
}

// Detach removes id from every subscription set and from the registry,
// calling Deinit then OnDetach on the way out. It reports false if id was
// not attached.
func (c *Commutator[T, M]) Detach(id uint64) (actor.Actor[T, M], bool) {
	a, ok := c.registry[id]
	if !ok {
		return nil, false
	}

	for _, set := range c.subscriptions {
		delete(set, id)
	}
	delete(c.registry, id)
	delete(c.inited, id)

	a.Deinit()
	a.OnDetach()
	return a, true
}

// GetHandler returns the actor attached under id, if any.
func (c *Commutator[T, M]) GetHandler(id uint64) (actor.Actor[T, M], bool) {
	a, ok := c.registry[id]
	return a, ok
}

// Handlers returns every currently attached actor, in no particular order.
func (c *Commutator[T, M]) Handlers() []actor.Actor[T, M] {
	out := make([]actor.Actor[T, M], 0, len(c.registry))
	for _, a := range c.registry {
		out = append(out, a)
	}
	return out
}

// Publish enqueues m addressed to every subscriber of its type, stamped as
// coming from outside any actor.
func (c *Commutator[T, M]) Publish(m M) {
	c.send(message.Envelope[T, M]{Origin: message.Anonymous(), Destination: message.All(), Message: m})
}

// Post enqueues m addressed to a single actor id, stamped as coming from
// outside any actor.
func (c *Commutator[T, M]) Post(m M, id uint64) {
	c.send(message.Envelope[T, M]{Origin: message.Anonymous(), Destination: message.Single(id), Message: m})
}

func (c *Commutator[T, M]) send(env message.Envelope[T, M]) {
	c.sender.In() <- env
}

// Drain pops every envelope currently queued without blocking, leaving the
// queue empty. It is meant for tests and for synchronous setups that never
// call Run.
func (c *Commutator[T, M]) Drain() []message.Envelope[T, M] {
	var out []message.Envelope[T, M]
	for {
		select {
		case env := <-c.sender.Out():
			out = append(out, env)
		default:
			return out
		}
	}
}

// SetInterceptor installs fn, replacing any previously installed
// interceptor. A nil fn disables interception.
func (c *Commutator[T, M]) SetInterceptor(fn Interceptor[T, M]) {
	c.interceptor = fn
}

// Run drives the dispatch loop until ctx is cancelled, the queue closes, or
// the interceptor returns Break.
// It calls Init on every actor already attached, exactly once, before
// entering the loop.
func (c *Commutator[T, M]) Run(ctx context.Context) {
	if !c.ranOnce {
		for id, a := range c.registry {
			if !c.inited[id] {
				a.Init()
				c.inited[id] = true
			}
		}
		c.ranOnce = true
	}

	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-c.sender.Out():
			if !ok {
				return
			}
			if !c.step(env) {
				return
			}
		}
	}
}

// step runs one envelope through the interceptor (if any) and then normal
// dispatch. It reports false if the loop should stop.
func (c *Commutator[T, M]) step(env message.Envelope[T, M]) bool {
	if c.interceptor != nil {
		result := c.interceptor(c, env.Message)
		switch result.kind {
		case interceptSwallow:
			return true
		case interceptBreak:
			return false
		case interceptPass:
			env.Message = result.m
		}
	}
	c.dispatch(env)
	return true
}

func (c *Commutator[T, M]) dispatch(env message.Envelope[T, M]) {
	if id, ok := env.Destination.ActorID(); ok {
		if a, ok := c.registry[id]; ok {
			a.Handle(env)
		}
		return
	}

	t := env.Message.Type()
	for id := range c.subscriptions[t] {
		if a, ok := c.registry[id]; ok {
			a.Handle(env)
		}
	}
}
