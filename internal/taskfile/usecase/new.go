package usecase

import (
	"task-submission-bot/internal/taskfile"
	pkgDiscord "task-submission-bot/pkg/discord"
	"task-submission-bot/pkg/gdrive"
	pkgLog "task-submission-bot/pkg/log"
)

const DefaultTaskFolder = "Task"

// Config holds the task container settings.
type Config struct {
	TaskFolder string
	TempDir    string
}

type implUseCase struct {
	l       pkgLog.Logger
	drive   gdrive.IDrive
	discord pkgDiscord.IDiscord
	cfg     Config
}

var _ taskfile.UseCase = (*implUseCase)(nil)

// New creates a task file UseCase.
func New(l pkgLog.Logger, drive gdrive.IDrive, discord pkgDiscord.IDiscord, cfg Config) *implUseCase {
	if cfg.TaskFolder == "" {
		cfg.TaskFolder = DefaultTaskFolder
	}
	return &implUseCase{l: l, drive: drive, discord: discord, cfg: cfg}
}
