package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
	"task-submission-bot/internal/submission"
)

func (h *handler) submit(ctx context.Context, in router.Input) error {
	evt := in.Event
	_, err := h.uc.Submit(ctx, evt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, submission.ErrNoAttachments):
		h.reply(ctx, evt, msgNoAttachments)
		return nil
	case errors.Is(err, submission.ErrNoMemberFolders):
		h.reply(ctx, evt, fmt.Sprintf(msgNoMemberFolders, h.membersFolder))
		return nil
	case errors.Is(err, submission.ErrSelectionTimeout):
		h.reply(ctx, evt, msgSelectionTimeout)
		return nil
	case errors.Is(err, submission.ErrInvalidSelection):
		h.reply(ctx, evt, msgInvalidSelection)
		return nil
	case errors.Is(err, submission.ErrAlreadyPending):
		h.reply(ctx, evt, msgAlreadyPending)
		return nil
	default:
		h.reply(ctx, evt, msgSubmitFailed)
		return err
	}
}

func (h *handler) organize(ctx context.Context, in router.Input) error {
	evt := in.Event
	if in.Rest == "" {
		h.reply(ctx, evt, msgOrganizeUsage)
		return nil
	}

	out, err := h.uc.Organize(ctx, in.Rest)
	if err != nil {
		if errors.Is(err, submission.ErrEmptySubfolder) {
			h.reply(ctx, evt, msgOrganizeUsage)
			return nil
		}
		h.reply(ctx, evt, msgOrganizeFailed)
		return err
	}

	if out.Folders == 0 {
		h.reply(ctx, evt, msgNothingToOrganize)
		return nil
	}
	h.reply(ctx, evt, fmt.Sprintf(msgOrganized, out.Subfolder))
	return nil
}

func (h *handler) count(ctx context.Context, in router.Input) error {
	evt := in.Event
	if len(in.Args) == 0 {
		h.reply(ctx, evt, msgCountUsage)
		return nil
	}
	n, err := strconv.Atoi(in.Args[0])
	if err != nil || n < 0 {
		h.reply(ctx, evt, msgCountUsage)
		return nil
	}

	out, err := h.uc.Report(ctx, n)
	if err != nil {
		h.reply(ctx, evt, msgReportFailed)
		return err
	}
	if len(out.Versions) == 0 {
		h.reply(ctx, evt, fmt.Sprintf(msgNoSubmissions, n))
		return nil
	}

	if _, err := h.discord.SendDM(ctx, evt.AuthorID, FormatReport(out)); err != nil {
		h.l.Warnf(ctx, "internal.submission.delivery.count: DM to %s failed: %v", evt.AuthorID, err)
		h.reply(ctx, evt, msgReportDMFailed)
		return nil
	}
	h.reply(ctx, evt, msgReportSent)
	return nil
}

// FormatReport renders a report as a chat message.
func FormatReport(out submission.ReportOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 **Task %d Submission Report** 📊\n\n", out.TaskNumber)
	for _, v := range out.Versions {
		fmt.Fprintf(&sb, "📌 **%s**:\n", v.Label)
		for i, m := range v.Members {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("- " + m)
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (h *handler) reply(ctx context.Context, evt model.Event, text string) {
	if _, err := h.discord.Reply(ctx, evt.ChannelID, evt.MessageID, text); err != nil {
		h.l.Warnf(ctx, "internal.submission.delivery.reply: %v", err)
	}
}
