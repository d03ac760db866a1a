package discord

import (
	"task-submission-bot/internal/announcement"
	"task-submission-bot/internal/router"
	pkgDiscord "task-submission-bot/pkg/discord"
	pkgLog "task-submission-bot/pkg/log"
)

// Handler exposes the announcement commands.
type Handler interface {
	Commands() []router.Command
}

type handler struct {
	l       pkgLog.Logger
	uc      announcement.UseCase
	discord pkgDiscord.IDiscord
	// legacyText replaces an empty !all body when set.
	legacyText string
}

// New creates the announcement command handler.
func New(l pkgLog.Logger, uc announcement.UseCase, discord pkgDiscord.IDiscord, legacyText string) Handler {
	return &handler{l: l, uc: uc, discord: discord, legacyText: legacyText}
}

func (h *handler) Commands() []router.Command {
	return []router.Command{
		{Name: "all", Pattern: "!all", Access: router.AccessAdminOnly, Usage: "!all <message>", Handle: h.all},
		{Name: "delete_all", Pattern: "!delete_all", Match: router.MatchExact, Access: router.AccessDMOnly, Usage: "!delete_all", Handle: h.deleteAll},
	}
}
