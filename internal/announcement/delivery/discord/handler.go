package discord

import (
	"context"
	"errors"

	"task-submission-bot/internal/announcement"
	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
)

func (h *handler) all(ctx context.Context, in router.Input) error {
	evt := in.Event
	text := in.Rest
	if text == "" {
		text = h.legacyText
	}

	err := h.uc.Broadcast(ctx, announcement.BroadcastInput{
		ChannelID: evt.ChannelID,
		MessageID: evt.MessageID,
		Text:      text,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, announcement.ErrEmptyMessage):
		h.reply(ctx, evt, msgEmptyAnnouncement)
		return nil
	default:
		// the command message is gone by now
		h.send(ctx, evt, msgAnnounceFailed)
		return err
	}
}

func (h *handler) deleteAll(ctx context.Context, in router.Input) error {
	evt := in.Event
	if _, err := h.uc.PurgeOwnMessages(ctx, evt.ChannelID); err != nil {
		h.send(ctx, evt, msgPurgeFailed)
		return err
	}
	h.send(ctx, evt, msgPurged)
	return nil
}

func (h *handler) reply(ctx context.Context, evt model.Event, text string) {
	if _, err := h.discord.Reply(ctx, evt.ChannelID, evt.MessageID, text); err != nil {
		h.l.Warnf(ctx, "internal.announcement.delivery.reply: %v", err)
	}
}

func (h *handler) send(ctx context.Context, evt model.Event, text string) {
	if _, err := h.discord.SendMessage(ctx, evt.ChannelID, text); err != nil {
		h.l.Warnf(ctx, "internal.announcement.delivery.send: %v", err)
	}
}
