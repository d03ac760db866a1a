package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-submission-bot/internal/announcement"
)

func (uc *implUseCase) Broadcast(ctx context.Context, in announcement.BroadcastInput) error {
	in.Text = strings.TrimSpace(in.Text)
	if in.Text == "" {
		return announcement.ErrEmptyMessage
	}
	if err := in.Validate(); err != nil {
		return err
	}

	if in.MessageID != "" {
		if err := uc.discord.DeleteMessage(ctx, in.ChannelID, in.MessageID); err != nil {
			uc.l.Warnf(ctx, "internal.announcement.usecase.Broadcast: delete command message: %v", err)
		}
	}

	if _, err := uc.discord.SendMessage(ctx, in.ChannelID, mentionPrefix+in.Text); err != nil {
		uc.l.Errorf(ctx, "internal.announcement.usecase.Broadcast: %v", err)
		return fmt.Errorf("%w: %v", announcement.ErrSendFailed, err)
	}
	return nil
}

func (uc *implUseCase) PurgeOwnMessages(ctx context.Context, channelID string) (int, error) {
	botID, err := uc.discord.BotUserID(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	before := ""
	for {
		page, err := uc.discord.ChannelMessages(ctx, channelID, before, historyPageSize)
		if err != nil {
			return deleted, err
		}
		if len(page) == 0 {
			break
		}

		for _, msg := range page {
			if msg.AuthorID != botID {
				continue
			}
			if err := uc.discord.DeleteMessage(ctx, channelID, msg.ID); err != nil {
				uc.l.Warnf(ctx, "internal.announcement.usecase.PurgeOwnMessages: %v", err)
				continue
			}
			deleted++
		}

		if len(page) < historyPageSize {
			break
		}
		// pages are newest first
		before = page[len(page)-1].ID
	}

	uc.l.Infof(ctx, "internal.announcement.usecase.PurgeOwnMessages: deleted %d messages in %s", deleted, channelID)
	return deleted, nil
}
