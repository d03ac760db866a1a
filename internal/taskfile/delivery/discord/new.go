package discord

import (
	"task-submission-bot/internal/router"
	"task-submission-bot/internal/taskfile"
	pkgDiscord "task-submission-bot/pkg/discord"
	pkgLog "task-submission-bot/pkg/log"
)

// Handler exposes the task file commands.
type Handler interface {
	Commands() []router.Command
}

// Config holds delivery settings.
type Config struct {
	TaskFolder       string // shown in user-facing messages
	TaskChannelID    string // where new tasks are announced
	AddTaskAdminOnly bool
}

type handler struct {
	l       pkgLog.Logger
	uc      taskfile.UseCase
	discord pkgDiscord.IDiscord
	cfg     Config
}

// New creates the task file command handler.
func New(l pkgLog.Logger, uc taskfile.UseCase, discord pkgDiscord.IDiscord, cfg Config) Handler {
	return &handler{l: l, uc: uc, discord: discord, cfg: cfg}
}

func (h *handler) Commands() []router.Command {
	addAccess := router.AccessAnyone
	if h.cfg.AddTaskAdminOnly {
		addAccess = router.AccessAdminOnly
	}
	return []router.Command{
		{Name: "task", Pattern: "!task", Usage: "!task", Handle: h.task},
		{Name: "addtask", Pattern: "!addtask", Access: addAccess, Usage: "!addtask (attach the new task file)", Handle: h.addTask},
	}
}
