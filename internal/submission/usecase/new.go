package usecase

import (
	"time"

	"task-submission-bot/internal/conversation"
	"task-submission-bot/internal/submission"
	pkgDiscord "task-submission-bot/pkg/discord"
	"task-submission-bot/pkg/gdrive"
	pkgLog "task-submission-bot/pkg/log"
)

// Config holds the workflow settings.
type Config struct {
	MembersFolder         string        // name of the container holding one folder per member
	NotificationChannelID string        // where "<name> submitted a file" is broadcast
	SelectionTimeout      time.Duration // how long to wait for the folder number
	TempDir               string        // transient attachment copies; "" means os.TempDir()
	Location              *time.Location
}

type implUseCase struct {
	l       pkgLog.Logger
	drive   gdrive.IDrive
	discord pkgDiscord.IDiscord
	broker  conversation.Broker
	cfg     Config
	now     func() time.Time
}

var _ submission.UseCase = (*implUseCase)(nil)

// New creates a submission UseCase.
func New(
	l pkgLog.Logger,
	drive gdrive.IDrive,
	discord pkgDiscord.IDiscord,
	broker conversation.Broker,
	cfg Config,
) *implUseCase {
	if cfg.MembersFolder == "" {
		cfg.MembersFolder = DefaultMembersFolder
	}
	if cfg.SelectionTimeout <= 0 {
		cfg.SelectionTimeout = DefaultSelectionTimeout
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &implUseCase{
		l:       l,
		drive:   drive,
		discord: discord,
		broker:  broker,
		cfg:     cfg,
		now:     time.Now,
	}
}
