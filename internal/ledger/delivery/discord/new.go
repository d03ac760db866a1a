package discord

import (
	"task-submission-bot/internal/ledger"
	"task-submission-bot/internal/router"
	pkgDiscord "task-submission-bot/pkg/discord"
	pkgLog "task-submission-bot/pkg/log"
)

// Handler exposes the ledger commands.
type Handler interface {
	Commands() []router.Command
}

type handler struct {
	l       pkgLog.Logger
	uc      ledger.UseCase
	discord pkgDiscord.IDiscord
}

// New creates the ledger command handler.
func New(l pkgLog.Logger, uc ledger.UseCase, discord pkgDiscord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}

func (h *handler) Commands() []router.Command {
	return []router.Command{
		{Name: "listnames", Pattern: "!listnames", Usage: "!listnames", Handle: h.listNames},
		{Name: "select", Pattern: "!select", Usage: "!select <number> <points>", Handle: h.selectRow},
		{Name: "points", Pattern: "!points", Usage: "!points", Handle: h.points},
	}
}
