package router

import (
	"context"
	"sync"

	"task-submission-bot/internal/model"
	"task-submission-bot/pkg/log"
)

// Dispatcher routes one event to at most one command.
type Dispatcher interface {
	// Dispatch runs the first matching command. It reports whether a command matched.
	Dispatch(ctx context.Context, evt model.Event) bool

	// Commands lists the registered commands in registration order.
	Commands() []CommandInfo
}

// Registry is a declarative command table.
type Registry struct {
	l       log.Logger
	replier Replier
	limiter *rateLimiter
	admins  map[string]struct{}

	mu       sync.RWMutex
	commands []Command
}

var _ Dispatcher = (*Registry)(nil)

// New creates an empty Registry.
func New(l log.Logger, replier Replier, opts Options) *Registry {
	perMin := opts.RateLimitPerMin
	if perMin <= 0 {
		perMin = DefaultRateLimitPerMin
	}

	admins := make(map[string]struct{}, len(opts.AdminIDs))
	for _, id := range opts.AdminIDs {
		admins[id] = struct{}{}
	}

	return &Registry{
		l:       l,
		replier: replier,
		limiter: newRateLimiter(perMin),
		admins:  admins,
	}
}

// Register appends commands. Earlier registrations win on overlap.
func (r *Registry) Register(cmds ...Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmds...)
}

func (r *Registry) Commands() []CommandInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CommandInfo, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, CommandInfo{Name: c.Name, Usage: c.Usage, Access: c.Access.String()})
	}
	return out
}

// IsAdmin reports whether userID is a configured administrator.
func (r *Registry) IsAdmin(userID string) bool {
	_, ok := r.admins[userID]
	return ok
}
