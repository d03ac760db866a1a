package conversation

import (
	"context"
	"sync"
	"time"

	"task-submission-bot/internal/model"
)

type broker struct {
	mu      sync.Mutex
	waiters map[model.Scope]*waiter
	now     func() time.Time
}

var _ Broker = (*broker)(nil)

// New creates an in-process broker.
func New() *broker {
	return &broker{waiters: make(map[model.Scope]*waiter), now: time.Now}
}

func (b *broker) Begin(scope model.Scope) (Waiter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.waiters[scope]; ok {
		return nil, ErrAlreadyPending
	}
	w := &waiter{b: b, scope: scope, ch: make(chan model.Event, 1)}
	b.waiters[scope] = w
	return w, nil
}

func (b *broker) Deliver(evt model.Event) bool {
	b.mu.Lock()
	if evt.ReceivedAt.IsZero() {
		evt.ReceivedAt = b.now()
	}
	w, ok := b.waiters[evt.Scope()]
	if ok && (!w.armed || evt.ReceivedAt.Before(w.since)) {
		ok = false
	}
	if ok {
		delete(b.waiters, evt.Scope())
	}
	b.mu.Unlock()

	if !ok {
		return false
	}
	// Buffered with capacity 1 and only sent once, after removal from the map.
	w.ch <- evt
	return true
}

func (b *broker) Pending(scope model.Scope) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.waiters[scope]
	return ok
}

func (b *broker) release(w *waiter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cur, ok := b.waiters[w.scope]; ok && cur == w {
		delete(b.waiters, w.scope)
	}
}

type waiter struct {
	b     *broker
	scope model.Scope
	ch    chan model.Event

	// guarded by b.mu
	armed bool
	since time.Time
}

func (w *waiter) Arm() {
	w.b.mu.Lock()
	defer w.b.mu.Unlock()
	w.armed = true
	w.since = w.b.now()
}

func (w *waiter) Wait(ctx context.Context, timeout time.Duration) (model.Event, error) {
	defer w.Close()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case evt := <-w.ch:
		return evt, nil
	case <-timer.C:
	case <-ctx.Done():
	}

	// A reply may have landed between the timer firing and the release.
	select {
	case evt := <-w.ch:
		return evt, nil
	default:
	}
	if err := ctx.Err(); err != nil {
		return model.Event{}, err
	}
	return model.Event{}, ErrTimeout
}

func (w *waiter) Close() {
	w.b.release(w)
}
