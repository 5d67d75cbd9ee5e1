package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/publisher"
	"github.com/mdeloof/stator/store"
)

type sig int

const sigPositionUpdate sig = 0

type position struct{ x, y int }

type msg struct{ pos position }

func (m msg) Type() sig { return sigPositionUpdate }

func TestMutateUpdatesValue(t *testing.T) {
	s := store.New[sig, msg](position{})
	s.Mutate(position{x: 11, y: -54})
	assert.Equal(t, position{x: 11, y: -54}, s.Value())
}

func TestMutateRunsOnMutateCallback(t *testing.T) {
	sender := publisher.NewSender[sig, msg]()
	s := store.New[sig, msg](position{})
	s.SetSender(sender)
	s.OnMutate = func(self *store.Store[sig, msg, position]) {
		self.Publish(msg{pos: self.Value()})
	}

	s.Mutate(position{x: 11, y: -54})

	env := <-sender.Out()
	require.Equal(t, message.All(), env.Destination)
	assert.Equal(t, position{x: 11, y: -54}, env.Message.pos)
}

func TestMutateWithoutOnMutateIsSafe(t *testing.T) {
	s := store.New[sig, msg](position{})
	assert.NotPanics(t, func() { s.Mutate(position{x: 1, y: 2}) })
}
