package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"task-submission-bot/internal/conversation"
	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
	"task-submission-bot/pkg/log"
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

type mockDispatcher struct {
	mu       sync.Mutex
	events   []model.Event
	traceIDs []string
	deadline bool
}

func (m *mockDispatcher) Dispatch(ctx context.Context, evt model.Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, evt)
	m.traceIDs = append(m.traceIDs, log.TraceID(ctx))
	_, m.deadline = ctx.Deadline()
	return true
}

func (m *mockDispatcher) Commands() []router.CommandInfo { return nil }

func TestOnMessageCreate(t *testing.T) {
	start := time.Now()

	t.Run("builds event", func(t *testing.T) {
		d := &mockDispatcher{}
		g := New(&mockLogger{}, conversation.New(), d, time.Minute)

		g.OnMessageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
			ID:        "m1",
			ChannelID: "c1",
			GuildID:   "g1",
			Content:   "!submit",
			Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Author:    &discordgo.User{ID: "u1", Username: "alice"},
			Attachments: []*discordgo.MessageAttachment{
				{Filename: "a.pdf", ContentType: "application/pdf", URL: "https://cdn/a.pdf", Size: 10},
			},
		}})
		g.Wait()

		if len(d.events) != 1 {
			t.Fatalf("expected one dispatch, got %d", len(d.events))
		}
		evt := d.events[0]
		if evt.AuthorID != "u1" || evt.AuthorName != "alice" || evt.IsDM || evt.Text != "!submit" || evt.ReceivedAt.Before(start) {
			t.Errorf("unexpected event: %+v", evt)
		}
		if len(evt.Attachments) != 1 || evt.Attachments[0].Name != "a.pdf" || evt.Attachments[0].SizeBytes != 10 {
			t.Errorf("unexpected attachments: %+v", evt.Attachments)
		}
		if evt.TraceID == "" || d.traceIDs[0] != evt.TraceID {
			t.Errorf("trace id not propagated: %q vs %q", evt.TraceID, d.traceIDs[0])
		}
		if !d.deadline {
			t.Errorf("dispatch context should carry a deadline")
		}
	})

	t.Run("direct message", func(t *testing.T) {
		d := &mockDispatcher{}
		g := New(&mockLogger{}, conversation.New(), d, 0)
		g.OnMessageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "m1", ChannelID: "dm", Content: "!delete_all", Author: &discordgo.User{ID: "u1"},
		}})
		g.Wait()
		if len(d.events) != 1 || !d.events[0].IsDM {
			t.Fatalf("expected DM event, got %+v", d.events)
		}
	})

	t.Run("ignores bots", func(t *testing.T) {
		d := &mockDispatcher{}
		g := New(&mockLogger{}, conversation.New(), d, time.Minute)
		g.OnMessageCreate(nil, &discordgo.MessageCreate{Message: &discordgo.Message{
			ID: "m1", ChannelID: "c1", Content: "!task", Author: &discordgo.User{ID: "b", Bot: true},
		}})
		g.Wait()
		if len(d.events) != 0 {
			t.Errorf("bot message dispatched: %+v", d.events)
		}
	})
}

func TestHandlePendingReply(t *testing.T) {
	d := &mockDispatcher{}
	broker := conversation.New()
	g := New(&mockLogger{}, broker, d, time.Minute)

	scope := model.Scope{UserID: "u1", ChannelID: "c1"}
	w, err := broker.Begin(scope)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	defer w.Close()

	// before the prompt is armed the author's message is an ordinary command
	g.Handle(model.Event{AuthorID: "u1", ChannelID: "c1", Text: "!task"})
	g.Wait()
	if len(d.events) != 1 || d.events[0].Text != "!task" {
		t.Fatalf("early message should be dispatched, got %+v", d.events)
	}
	d.events = nil

	w.Arm()
	g.Handle(model.Event{AuthorID: "u1", ChannelID: "c1", Text: "2"})
	// a different author in the same channel is dispatched normally
	g.Handle(model.Event{AuthorID: "u2", ChannelID: "c1", Text: "3"})
	g.Wait()

	got, err := w.Wait(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if got.Text != "2" {
		t.Errorf("delivered %q, want 2", got.Text)
	}
	if len(d.events) != 1 || d.events[0].AuthorID != "u2" {
		t.Errorf("unexpected dispatches: %+v", d.events)
	}
}
