package ledger

import (
	"context"

	"task-submission-bot/internal/model"
)

// UseCase is the points ledger with per-scope snapshots.
type UseCase interface {
	// List fetches every row and stores the result as the snapshot for sc.
	List(ctx context.Context, sc model.Scope) ([]model.LedgerRow, error)

	// Award adds points to the row at a 1-based index of sc's snapshot and
	// persists it with delete-then-insert.
	Award(ctx context.Context, sc model.Scope, input AwardInput) (model.LedgerRow, error)
}
