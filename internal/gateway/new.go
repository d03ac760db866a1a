package gateway

import (
	"sync"
	"time"

	"task-submission-bot/internal/conversation"
	"task-submission-bot/internal/router"
	"task-submission-bot/pkg/log"
)

// DefaultCommandTimeout bounds one command invocation.
const DefaultCommandTimeout = 5 * time.Minute

// Gateway turns inbound chat messages into events and hands them to the
// conversation broker or the command dispatcher.
type Gateway struct {
	l          log.Logger
	broker     conversation.Broker
	dispatcher router.Dispatcher
	timeout    time.Duration

	wg sync.WaitGroup
}

// New creates a Gateway. A non-positive timeout falls back to DefaultCommandTimeout.
func New(l log.Logger, broker conversation.Broker, dispatcher router.Dispatcher, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &Gateway{
		l:          l,
		broker:     broker,
		dispatcher: dispatcher,
		timeout:    timeout,
	}
}
