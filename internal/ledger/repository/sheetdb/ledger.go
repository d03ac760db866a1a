package sheetdb

import (
	"context"

	"task-submission-bot/internal/ledger/repository"
	"task-submission-bot/internal/model"
	pkgLog "task-submission-bot/pkg/log"
)

const keyColumn = "Names"

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a ledger repository backed by SheetDB.
func New(client *Client, l pkgLog.Logger) repository.LedgerRepository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) List(ctx context.Context) ([]model.LedgerRow, error) {
	rows, err := r.client.ListRows(ctx)
	if err != nil {
		r.l.Errorf(ctx, "sheetdb repository: failed to list rows: %v", err)
		return nil, err
	}

	out := make([]model.LedgerRow, 0, len(rows))
	for _, row := range rows {
		if row.Names == "" {
			continue
		}
		out = append(out, model.LedgerRow{Names: row.Names, Points: int(row.Points)})
	}
	return out, nil
}

func (r *implRepository) DeleteByName(ctx context.Context, name string) error {
	if err := r.client.DeleteRows(ctx, keyColumn, name); err != nil {
		r.l.Errorf(ctx, "sheetdb repository: failed to delete %q: %v", name, err)
		return err
	}
	return nil
}

func (r *implRepository) Insert(ctx context.Context, row model.LedgerRow) error {
	if err := r.client.CreateRow(ctx, map[string]any{keyColumn: row.Names, "Points": row.Points}); err != nil {
		r.l.Errorf(ctx, "sheetdb repository: failed to insert %q: %v", row.Names, err)
		return err
	}
	return nil
}
