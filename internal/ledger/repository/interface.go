package repository

import (
	"context"

	"task-submission-bot/internal/model"
)

// LedgerRepository is a remote name→points table. There is no update
// primitive; callers delete then insert.
type LedgerRepository interface {
	List(ctx context.Context) ([]model.LedgerRow, error)
	DeleteByName(ctx context.Context, name string) error
	Insert(ctx context.Context, row model.LedgerRow) error
}
