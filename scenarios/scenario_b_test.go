package scenarios_test

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

type bSig int

const (
	bSigCall bSig = iota
	bSigRespond
	bSigDetach
)

type bMsg struct {
	kind bSig
	id   uint64
}

func (m bMsg) Type() bSig { return m.kind }

// bListener broadcasts Call(self.id) on init; on receiving a Call it posts
// Respond(self.id) back to the caller; once it has collected three Responds
// it asks to be detached.
type bListener struct {
	actor.Base[bSig, bMsg]
	respondCount int
}

func (l *bListener) DefaultSubscriptions() []bSig { return []bSig{bSigCall} }

func (l *bListener) Init() {
	l.Publish(bMsg{kind: bSigCall, id: l.ID()})
}

func (l *bListener) Handle(env message.Envelope[bSig, bMsg]) {
	switch env.Message.kind {
	case bSigCall:
		if srcID, ok := env.Origin.ActorID(); ok {
			l.Post(bMsg{kind: bSigRespond, id: l.ID()}, srcID)
		}
	case bSigRespond:
		l.respondCount++
		if l.respondCount == 3 {
			l.Publish(bMsg{kind: bSigDetach, id: l.ID()})
		}
	}
}

func bInterceptor(c *commutator.Commutator[bSig, bMsg], m bMsg) commutator.InterceptResult[bSig, bMsg] {
	if m.kind != bSigDetach {
		return commutator.Pass[bSig, bMsg](m)
	}
	c.Detach(m.id)
	if len(c.Handlers()) == 0 {
		return commutator.Break[bSig, bMsg]()
	}
	return commutator.Interception[bSig, bMsg]()
}

func TestMutualSubscribeDetachesAllOnQuorum(t *testing.T) {
	c := commutator.New[bSig, bMsg](commutator.WithInterceptor(bInterceptor))

	listeners := make([]*bListener, 3)
	for i := range listeners {
		listeners[i] = &bListener{}
		c.AttachAndInit(listeners[i])
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	c.Run(ctx)

	require.NoError(t, ctx.Err())
	assert.Empty(t, c.Handlers())
	assert.Empty(t, c.Drain())
}
