package gateway

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"task-submission-bot/internal/model"
	"task-submission-bot/pkg/log"
)

// OnMessageCreate is registered with the Discord session.
func (g *Gateway) OnMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	g.Handle(toEvent(m.Message))
}

// Handle routes one event. A reply awaited by a running command is consumed
// synchronously so it cannot race a later message from the same author.
// Everything else is dispatched on its own goroutine.
func (g *Gateway) Handle(evt model.Event) {
	if evt.TraceID == "" {
		evt.TraceID = uuid.NewString()
	}

	if evt.ReceivedAt.IsZero() {
		evt.ReceivedAt = time.Now()
	}

	if g.broker.Deliver(evt) {
		g.l.Debugf(log.WithTraceID(context.Background(), evt.TraceID),
			"internal.gateway.Handle: reply from %s delivered to pending prompt", evt.AuthorID)
		return
	}
	if g.broker.Pending(evt.Scope()) {
		g.l.Debugf(log.WithTraceID(context.Background(), evt.TraceID),
			"internal.gateway.Handle: message from %s predates its prompt, dispatching", evt.AuthorID)
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()
		ctx = log.WithTraceID(ctx, evt.TraceID)

		g.dispatcher.Dispatch(ctx, evt)
	}()
}

// Wait blocks until every in-flight command has returned.
func (g *Gateway) Wait() {
	g.wg.Wait()
}

func toEvent(m *discordgo.Message) model.Event {
	evt := model.Event{
		TraceID:    uuid.NewString(),
		MessageID:  m.ID,
		ChannelID:  m.ChannelID,
		GuildID:    m.GuildID,
		IsDM:       m.GuildID == "",
		Text:       m.Content,
		ReceivedAt: time.Now(),
	}
	if m.Author != nil {
		evt.AuthorID = m.Author.ID
		evt.AuthorName = m.Author.Username
	}

	for _, a := range m.Attachments {
		if a == nil {
			continue
		}
		evt.Attachments = append(evt.Attachments, model.Attachment{
			Name:      a.Filename,
			MimeType:  a.ContentType,
			URL:       a.URL,
			SizeBytes: a.Size,
		})
	}
	return evt
}
