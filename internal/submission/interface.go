package submission

import (
	"context"

	"task-submission-bot/internal/model"
)

// UseCase covers member submissions and the folder housekeeping around them.
type UseCase interface {
	// Submit asks the author which member folder the attachments of evt belong
	// to, then uploads them one at a time.
	Submit(ctx context.Context, evt model.Event) (SubmitOutput, error)

	// Report finds which members have task<N>.<K> subfolders, version by
	// version, stopping at the first version nobody has.
	Report(ctx context.Context, taskNumber int) (ReportOutput, error)

	// Organize moves the loose files of every member folder into a new
	// subfolder named subfolder.
	Organize(ctx context.Context, subfolder string) (OrganizeOutput, error)
}
