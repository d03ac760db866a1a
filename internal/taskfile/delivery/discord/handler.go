package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
	"task-submission-bot/internal/taskfile"
	pkgDiscord "task-submission-bot/pkg/discord"
)

func (h *handler) task(ctx context.Context, in router.Input) error {
	evt := in.Event
	file, err := h.uc.Fetch(ctx)
	if err != nil {
		if errors.Is(err, taskfile.ErrNoTaskFile) {
			h.reply(ctx, evt, fmt.Sprintf(msgNoTaskFile, h.cfg.TaskFolder))
			return nil
		}
		h.reply(ctx, evt, msgTaskFetchFailed)
		return err
	}

	err = h.discord.SendDMFile(ctx, evt.AuthorID, pkgDiscord.File{
		Name:        file.Name,
		ContentType: file.MimeType,
		Reader:      bytes.NewReader(file.Content),
	})
	if err != nil {
		h.l.Warnf(ctx, "internal.taskfile.delivery.task: DM to %s failed: %v", evt.AuthorID, err)
		h.reply(ctx, evt, msgTaskDMFailed)
		return nil
	}
	h.reply(ctx, evt, msgTaskSent)
	return nil
}

func (h *handler) addTask(ctx context.Context, in router.Input) error {
	evt := in.Event
	if len(evt.Attachments) == 0 {
		h.reply(ctx, evt, msgAttachTask)
		return nil
	}

	out, err := h.uc.Replace(ctx, evt.Attachments[0])
	if err != nil {
		h.reply(ctx, evt, msgTaskUploadFail)
		return err
	}

	h.reply(ctx, evt, fmt.Sprintf(msgTaskUploaded, out.Name))
	if out.FailedRemovals > 0 {
		h.reply(ctx, evt, msgOldFilesRemain)
	}

	if h.cfg.TaskChannelID == "" {
		h.l.Warnf(ctx, "internal.taskfile.delivery.addTask: task channel not configured")
		return nil
	}
	if _, err := h.discord.SendMessage(ctx, h.cfg.TaskChannelID, msgNewTaskNotice); err != nil {
		h.l.Warnf(ctx, "internal.taskfile.delivery.addTask: announcement failed: %v", err)
	}
	return nil
}

func (h *handler) reply(ctx context.Context, evt model.Event, text string) {
	if _, err := h.discord.Reply(ctx, evt.ChannelID, evt.MessageID, text); err != nil {
		h.l.Warnf(ctx, "internal.taskfile.delivery.reply: %v", err)
	}
}
