package conversation

import (
	"context"
	"time"

	"task-submission-bot/internal/model"
)

// Broker correlates a prompt with the next message from the same author in
// the same channel.
type Broker interface {
	// Begin reserves scope for one reply. It must be called before the prompt
	// is sent so an early reply cannot slip past the broker.
	Begin(scope model.Scope) (Waiter, error)

	// Deliver hands evt to the armed waiter reserved for its scope. Events
	// received before the waiter was armed are left alone. It reports whether
	// the event was consumed.
	Deliver(evt model.Event) bool

	// Pending reports whether scope currently has a reservation, armed or not.
	Pending(scope model.Scope) bool
}

// Waiter is one reservation returned by Begin.
type Waiter interface {
	// Arm starts accepting replies received from now on. Call it right
	// before the prompt is sent.
	Arm()

	// Wait blocks until a reply arrives, ctx is done, or timeout elapses.
	Wait(ctx context.Context, timeout time.Duration) (model.Event, error)

	// Close releases the reservation. Safe to call more than once.
	Close()
}
