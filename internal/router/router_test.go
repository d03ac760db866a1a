package router_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockReplier struct {
	mu      sync.Mutex
	replies []string
}

func (m *mockReplier) Reply(ctx context.Context, channelID, messageID, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, text)
	return "reply-id", nil
}

func (m *mockReplier) last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.replies) == 0 {
		return ""
	}
	return m.replies[len(m.replies)-1]
}

type recorder struct {
	calls []router.Input
}

func (r *recorder) handle(ctx context.Context, in router.Input) error {
	r.calls = append(r.calls, in)
	return nil
}

func newRegistry(opts router.Options) (*router.Registry, *mockReplier) {
	rep := &mockReplier{}
	return router.New(&mockLogger{}, rep, opts), rep
}

func evt(author, text string) model.Event {
	return model.Event{AuthorID: author, ChannelID: "c1", MessageID: "m1", Text: text}
}

func TestDispatchMatching(t *testing.T) {
	tests := []struct {
		name    string
		match   router.Match
		pattern string
		text    string
		want    bool
		args    []string
		rest    string
	}{
		{"word bare", router.MatchWord, "!task", "!task", true, nil, ""},
		{"word with args", router.MatchWord, "!count", "!count 3", true, []string{"3"}, "3"},
		{"word rejects longer word", router.MatchWord, "!task", "!tasks", false, nil, ""},
		{"word case sensitive", router.MatchWord, "!task", "!TASK", false, nil, ""},
		{"exact", router.MatchExact, "!points", "!points", true, nil, ""},
		{"exact rejects args", router.MatchExact, "!points", "!points now", false, nil, ""},
		{"prefix", router.MatchPrefix, "!all", "!allhello", true, []string{"hello"}, "hello"},
		{"prefix keeps rest", router.MatchPrefix, "!all", "!all  hi  there ", true, []string{"hi", "there"}, "hi  there"},
		{"no match", router.MatchWord, "!submit", "hello", false, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newRegistry(router.Options{RateLimitPerMin: 600})
			rec := &recorder{}
			reg.Register(router.Command{Name: "cmd", Pattern: tt.pattern, Match: tt.match, Handle: rec.handle})

			got := reg.Dispatch(context.Background(), evt("u1", tt.text))
			if got != tt.want {
				t.Fatalf("Dispatch() = %v, want %v", got, tt.want)
			}
			if !tt.want {
				if len(rec.calls) != 0 {
					t.Fatalf("handler should not run")
				}
				return
			}
			if len(rec.calls) != 1 {
				t.Fatalf("expected 1 handler call, got %d", len(rec.calls))
			}
			in := rec.calls[0]
			if in.Rest != tt.rest {
				t.Errorf("Rest = %q, want %q", in.Rest, tt.rest)
			}
			if len(in.Args) != len(tt.args) {
				t.Fatalf("Args = %v, want %v", in.Args, tt.args)
			}
			for i := range tt.args {
				if in.Args[i] != tt.args[i] {
					t.Errorf("Args[%d] = %q, want %q", i, in.Args[i], tt.args[i])
				}
			}
		})
	}
}

func TestDispatchFirstMatchWins(t *testing.T) {
	reg, _ := newRegistry(router.Options{RateLimitPerMin: 600})
	first, second := &recorder{}, &recorder{}
	reg.Register(
		router.Command{Name: "all", Pattern: "!all", Match: router.MatchPrefix, Handle: first.handle},
		router.Command{Name: "all-exact", Pattern: "!all", Match: router.MatchExact, Handle: second.handle},
	)

	reg.Dispatch(context.Background(), evt("u1", "!all"))
	if len(first.calls) != 1 || len(second.calls) != 0 {
		t.Fatalf("expected only first command to run, got %d/%d", len(first.calls), len(second.calls))
	}
}

func TestDispatchAccess(t *testing.T) {
	reg, rep := newRegistry(router.Options{AdminIDs: []string{"admin"}, RateLimitPerMin: 600})
	admin, dm := &recorder{}, &recorder{}
	reg.Register(
		router.Command{Name: "organize", Pattern: "!organize", Access: router.AccessAdminOnly, Handle: admin.handle},
		router.Command{Name: "delete_all", Pattern: "!delete_all", Access: router.AccessDMOnly, Handle: dm.handle},
	)
	ctx := context.Background()

	t.Run("non-admin denied", func(t *testing.T) {
		reg.Dispatch(ctx, evt("u1", "!organize week1"))
		if len(admin.calls) != 0 {
			t.Fatalf("handler must not run for non-admin")
		}
		if rep.last() != router.MsgPermissionDenied {
			t.Errorf("unexpected reply: %q", rep.last())
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		reg.Dispatch(ctx, evt("admin", "!organize week1"))
		if len(admin.calls) != 1 {
			t.Fatalf("handler should run for admin")
		}
	})

	t.Run("dm only outside dm", func(t *testing.T) {
		reg.Dispatch(ctx, evt("u1", "!delete_all"))
		if len(dm.calls) != 0 {
			t.Fatalf("handler must not run outside DM")
		}
		if rep.last() != router.MsgDMOnly {
			t.Errorf("unexpected reply: %q", rep.last())
		}
	})

	t.Run("dm only inside dm", func(t *testing.T) {
		e := evt("u1", "!delete_all")
		e.IsDM = true
		reg.Dispatch(ctx, e)
		if len(dm.calls) != 1 {
			t.Fatalf("handler should run in DM")
		}
	})
}

func TestDispatchRateLimit(t *testing.T) {
	reg, rep := newRegistry(router.Options{RateLimitPerMin: 10})
	rec := &recorder{}
	reg.Register(router.Command{Name: "task", Pattern: "!task", Handle: rec.handle})
	ctx := context.Background()

	reg.Dispatch(ctx, evt("u1", "!task"))
	reg.Dispatch(ctx, evt("u1", "!task"))

	if len(rec.calls) != 1 {
		t.Fatalf("expected second call to be limited, got %d calls", len(rec.calls))
	}
	if rep.last() != router.MsgRateLimited {
		t.Errorf("unexpected reply: %q", rep.last())
	}

	// Limits are per author.
	reg.Dispatch(ctx, evt("u2", "!task"))
	if len(rec.calls) != 2 {
		t.Fatalf("other author should not be limited")
	}
}

func TestDispatchRecoversPanics(t *testing.T) {
	reg, rep := newRegistry(router.Options{RateLimitPerMin: 600})
	ok := &recorder{}
	reg.Register(
		router.Command{Name: "boom", Pattern: "!boom", Handle: func(ctx context.Context, in router.Input) error {
			panic("kaboom")
		}},
		router.Command{Name: "fail", Pattern: "!fail", Handle: func(ctx context.Context, in router.Input) error {
			return errors.New("remote down")
		}},
		router.Command{Name: "task", Pattern: "!task", Handle: ok.handle},
	)
	ctx := context.Background()

	if !reg.Dispatch(ctx, evt("u1", "!boom")) {
		t.Fatalf("expected match")
	}
	if rep.last() != router.MsgInternalError {
		t.Errorf("unexpected reply: %q", rep.last())
	}

	reg.Dispatch(ctx, evt("u1", "!fail"))
	reg.Dispatch(ctx, evt("u1", "!task"))
	if len(ok.calls) != 1 {
		t.Fatalf("dispatcher should keep working after failures")
	}
}

func TestCommands(t *testing.T) {
	reg, _ := newRegistry(router.Options{})
	noop := func(ctx context.Context, in router.Input) error { return nil }
	reg.Register(
		router.Command{Name: "submit", Pattern: "!submit", Usage: "!submit (attach files)", Handle: noop},
		router.Command{Name: "organize", Pattern: "!organize", Access: router.AccessAdminOnly, Handle: noop},
		router.Command{Name: "delete_all", Pattern: "!delete_all", Access: router.AccessDMOnly, Handle: noop},
	)

	got := reg.Commands()
	if len(got) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(got))
	}
	want := []string{"anyone", "admin", "dm"}
	for i, c := range got {
		if c.Access != want[i] {
			t.Errorf("command %s access = %s, want %s", c.Name, c.Access, want[i])
		}
	}
	if got[0].Usage != "!submit (attach files)" {
		t.Errorf("unexpected usage: %s", got[0].Usage)
	}
}
