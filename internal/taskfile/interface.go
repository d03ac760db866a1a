package taskfile

import (
	"context"

	"task-submission-bot/internal/model"
)

// UseCase manages the single current task file.
type UseCase interface {
	// Fetch returns the first file of the task container, exporting Google
	// documents to an office format.
	Fetch(ctx context.Context) (TaskFile, error)

	// Replace uploads att into the task container, then removes every other
	// file there, trashed ones included.
	Replace(ctx context.Context, att model.Attachment) (ReplaceOutput, error)
}
