package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdeloof/stator/publisher"
	"github.com/mdeloof/stator/timer"
)

type sig int

const sigElapsed sig = 0

type msg struct{ n int }

func (m msg) Type() sig { return sigElapsed }

func TestStartFiresOnce(t *testing.T) {
	sender := publisher.NewSender[sig, msg]()
	fired := make(chan struct{}, 4)

	tm := timer.New[sig, msg](10 * time.Millisecond)
	tm.SetSender(sender)
	tm.OnElapsed = func(self *timer.Timer[sig, msg]) {
		self.Publish(msg{})
		fired <- struct{}{}
	}

	tm.Start()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	select {
	case <-fired:
		t.Fatal("Start must fire only once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStartIntervalFiresRepeatedly(t *testing.T) {
	sender := publisher.NewSender[sig, msg]()
	fired := make(chan struct{}, 8)

	tm := timer.New[sig, msg](5 * time.Millisecond)
	tm.SetSender(sender)
	tm.OnElapsed = func(self *timer.Timer[sig, msg]) {
		fired <- struct{}{}
	}

	tm.StartInterval()
	defer tm.Cancel()

	for i := 0; i < 3; i++ {
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatalf("expected at least 3 fires, got %d", i)
		}
	}
}

func TestCancelStopsFurtherFires(t *testing.T) {
	sender := publisher.NewSender[sig, msg]()
	fired := make(chan struct{}, 16)

	tm := timer.New[sig, msg](5 * time.Millisecond)
	tm.SetSender(sender)
	tm.OnElapsed = func(self *timer.Timer[sig, msg]) {
		fired <- struct{}{}
	}

	tm.StartInterval()
	time.Sleep(20 * time.Millisecond)
	tm.Cancel()
	drainedAt := len(fired)
	for len(fired) > 0 {
		<-fired
	}

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, fired)
	require.GreaterOrEqual(t, drainedAt, 1)
}

func TestRestartingCancelsPriorRun(t *testing.T) {
	sender := publisher.NewSender[sig, msg]()
	fired := make(chan int, 8)

	tm := timer.New[sig, msg](200 * time.Millisecond)
	tm.SetSender(sender)
	tm.OnElapsed = func(self *timer.Timer[sig, msg]) {
		fired <- 1
	}

	tm.Start()
	tm.Duration = 5 * time.Millisecond
	tm.Start()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("restarted timer never fired")
	}

	select {
	case <-fired:
		t.Fatal("original long-period run should have been cancelled")
	case <-time.After(300 * time.Millisecond):
	}
}
