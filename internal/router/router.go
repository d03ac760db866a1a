package router

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"task-submission-bot/internal/model"
)

func (r *Registry) Dispatch(ctx context.Context, evt model.Event) bool {
	cmd, in, ok := r.match(evt)
	if !ok {
		return false
	}

	if cmd.Access&AccessDMOnly != 0 && !evt.IsDM {
		r.reply(ctx, evt, MsgDMOnly)
		return true
	}
	if cmd.Access&AccessAdminOnly != 0 && !r.IsAdmin(evt.AuthorID) {
		r.l.Infof(ctx, "%s: %s denied for %s", LogPrefixDispatch, cmd.Name, evt.AuthorID)
		r.reply(ctx, evt, MsgPermissionDenied)
		return true
	}
	if err := r.limiter.Allow(evt.AuthorID); err != nil {
		r.l.Warnf(ctx, "%s: %v", LogPrefixDispatch, err)
		r.reply(ctx, evt, MsgRateLimited)
		return true
	}

	r.l.Infof(ctx, "%s: %s from %s in %s", LogPrefixDispatch, cmd.Name, evt.AuthorID, evt.ChannelID)
	if err := r.run(ctx, cmd, in); err != nil {
		r.l.Errorf(ctx, "%s: %s failed: %v", LogPrefixDispatch, cmd.Name, err)
	}
	return true
}

func (r *Registry) run(ctx context.Context, cmd Command, in Input) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "%s: %s panicked: %v\n%s", LogPrefixDispatch, cmd.Name, rec, debug.Stack())
			r.reply(ctx, in.Event, MsgInternalError)
			err = fmt.Errorf("panic in %s: %v", cmd.Name, rec)
		}
	}()
	return cmd.Handle(ctx, in)
}

func (r *Registry) match(evt model.Event) (Command, Input, bool) {
	text := strings.TrimSpace(evt.Text)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.commands {
		rest, ok := matchText(c, text)
		if !ok {
			continue
		}
		return c, Input{Event: evt, Args: strings.Fields(rest), Rest: rest}, true
	}
	return Command{}, Input{}, false
}

func matchText(c Command, text string) (string, bool) {
	switch c.Match {
	case MatchExact:
		return "", text == c.Pattern
	case MatchPrefix:
		if !strings.HasPrefix(text, c.Pattern) {
			return "", false
		}
		return strings.TrimSpace(text[len(c.Pattern):]), true
	default:
		if text == c.Pattern {
			return "", true
		}
		if !strings.HasPrefix(text, c.Pattern) {
			return "", false
		}
		rest := text[len(c.Pattern):]
		if rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\n' {
			return "", false
		}
		return strings.TrimSpace(rest), true
	}
}

func (r *Registry) reply(ctx context.Context, evt model.Event, text string) {
	if _, err := r.replier.Reply(ctx, evt.ChannelID, evt.MessageID, text); err != nil {
		r.l.Warnf(ctx, "%s: reply failed: %v", LogPrefixDispatch, err)
	}
}
