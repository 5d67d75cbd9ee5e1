package commutator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdeloof/stator/actor"
	"github.com/mdeloof/stator/commutator"
	"github.com/mdeloof/stator/message"
)

type sig int

const (
	sigPing sig = iota
	sigPong
)

type msg struct {
	kind sig
	n    int
}

func (m msg) Type() sig { return m.kind }

// recorder is a minimal Actor that subscribes to the types given to
// newRecorder and appends every envelope it is handed.
type recorder struct {
	actor.Base[sig, msg]
	subs     []sig
	received []message.Envelope[sig, msg]
}

func newRecorder(subs ...sig) *recorder { return &recorder{subs: subs} }

func (r *recorder) DefaultSubscriptions() []sig { return r.subs }
func (r *recorder) Handle(env message.Envelope[sig, msg]) {
	r.received = append(r.received, env)
}

func TestAttachIndexesDefaultSubscriptions(t *testing.T) {
	c := commutator.New[sig, msg]()
	r := newRecorder(sigPing, sigPong)
	id := c.Attach(r)

	c.Publish(msg{kind: sigPing})
	c.Publish(msg{kind: sigPong})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	c.Run(ctx)

	_, ok := c.GetHandler(id)
	require.True(t, ok)
	require.Len(t, r.received, 2)
	assert.Equal(t, sigPing, r.received[0].Message.Type())
	assert.Equal(t, sigPong, r.received[1].Message.Type())
}

func TestDetachPurgesSubscriptionsAndRegistry(t *testing.T) {
	c := commutator.New[sig, msg]()
	r := newRecorder(sigPing)
	id := c.Attach(r)

	_, ok := c.Detach(id)
	require.True(t, ok)

	_, stillThere := c.GetHandler(id)
	assert.False(t, stillThere)

	c.Publish(msg{kind: sigPing})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	c.Run(ctx)

	assert.Empty(t, r.received)
}

func TestDetachUnknownIDReportsFalse(t *testing.T) {
	c := commutator.New[sig, msg]()
	_, ok := c.Detach(999)
	assert.False(t, ok)
}

func TestFIFODeliveryOrder(t *testing.T) {
	c := commutator.New[sig, msg]()
	r := newRecorder(sigPing)
	c.Attach(r)

	for i := 0; i < 5; i++ {
		c.Publish(msg{kind: sigPing, n: i})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	c.Run(ctx)

	require.Len(t, r.received, 5)
	for i, env := range r.received {
		assert.Equal(t, i, env.Message.n)
	}
}

func TestSingleDestinationDropsSilentlyWhenNotAttached(t *testing.T) {
	c := commutator.New[sig, msg]()
	c.Post(msg{kind: sigPing}, 42)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NotPanics(t, func() { c.Run(ctx) })
}

func TestInterceptorCanSwallowAndBreak(t *testing.T) {
	var sawSwallowed, sawBreak bool
	c := commutator.New[sig, msg](commutator.WithInterceptor(func(cc *commutator.Commutator[sig, msg], m msg) commutator.InterceptResult[sig, msg] {
		switch m.kind {
		case sigPong:
			sawSwallowed = true
			return commutator.Interception[sig, msg]()
		default:
			sawBreak = true
			return commutator.Break[sig, msg]()
		}
	}))
	r := newRecorder(sigPing, sigPong)
	c.Attach(r)

	c.Publish(msg{kind: sigPong})
	c.Publish(msg{kind: sigPing})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	c.Run(ctx)

	assert.True(t, sawSwallowed)
	assert.True(t, sawBreak)
	assert.Empty(t, r.received)
}
