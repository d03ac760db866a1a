package usecase

import (
	"task-submission-bot/internal/announcement"
	pkgDiscord "task-submission-bot/pkg/discord"
	pkgLog "task-submission-bot/pkg/log"
)

const (
	// historyPageSize is the largest page the channel history endpoint returns.
	historyPageSize = 100
	mentionPrefix   = "@everyone "
)

type implUseCase struct {
	l       pkgLog.Logger
	discord pkgDiscord.IDiscord
}

var _ announcement.UseCase = (*implUseCase)(nil)

// New creates the announcement use case.
func New(l pkgLog.Logger, discord pkgDiscord.IDiscord) *implUseCase {
	return &implUseCase{l: l, discord: discord}
}
