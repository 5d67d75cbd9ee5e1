package timer

import (
	"context"
	"sync"
	"time"

	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/publisher"
)

// Timer is a Publisher that fires OnElapsed from its own goroutine, either
// once (Start) or repeatedly (StartInterval). The typical OnElapsed body
// calls t.Post or t.Publish to hand a message back to the Commutator; unlike
// every other producer in this module, that call happens off the
// commutator's single task, which is exactly what the unbounded channel is
// for.
type Timer[T comparable, M message.Message[T]] struct {
	publisher.Base[T, M]

	Duration  time.Duration
	OnElapsed func(*Timer[T, M])

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New builds a Timer with the given period and no OnElapsed callback.
func New[T comparable, M message.Message[T]](duration time.Duration) *Timer[T, M] {
	return &Timer[T, M]{Duration: duration}
}

// Start cancels any run already in progress and schedules OnElapsed to fire
// once after Duration.
func (t *Timer[T, M]) Start() {
	ctx := t.restart()
	go func() {
		timer := time.NewTimer(t.Duration)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			t.fire()
		}
	}()
}

// StartInterval cancels any run already in progress and schedules OnElapsed
// to fire every Duration until Cancel is called.
func (t *Timer[T, M]) StartInterval() {
	ctx := t.restart()
	go func() {
		ticker := time.NewTicker(t.Duration)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.fire()
			}
		}
	}()
}

// Cancel aborts a running Start or StartInterval task, if any. It is safe to
// call even if no task is running.
func (t *Timer[T, M]) Cancel() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (t *Timer[T, M]) restart() context.Context {
	t.Cancel()
	ctx, cancel := context.WithCancel(context.Background())
	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()
	return ctx
}

func (t *Timer[T, M]) fire() {
	if t.OnElapsed != nil {
		t.OnElapsed(t)
	}
}
