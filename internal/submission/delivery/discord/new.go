package discord

import (
	"task-submission-bot/internal/router"
	"task-submission-bot/internal/submission"
	pkgDiscord "task-submission-bot/pkg/discord"
	pkgLog "task-submission-bot/pkg/log"
)

// Handler exposes the submission commands.
type Handler interface {
	Commands() []router.Command
}

type handler struct {
	l             pkgLog.Logger
	uc            submission.UseCase
	discord       pkgDiscord.IDiscord
	membersFolder string
}

// New creates the submission command handler. membersFolder is only used in
// user-facing messages.
func New(l pkgLog.Logger, uc submission.UseCase, discord pkgDiscord.IDiscord, membersFolder string) Handler {
	return &handler{l: l, uc: uc, discord: discord, membersFolder: membersFolder}
}

func (h *handler) Commands() []router.Command {
	return []router.Command{
		{Name: "submit", Pattern: "!submit", Usage: "!submit (attach one or more files)", Handle: h.submit},
		{Name: "organize", Pattern: "!organize", Access: router.AccessAdminOnly, Usage: "!organize <subfolder-name>", Handle: h.organize},
		{Name: "count", Pattern: "!count", Usage: "!count <taskNumber>", Handle: h.count},
	}
}
