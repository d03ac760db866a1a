package usecase

import (
	"context"
	"fmt"
	"math"

	"task-submission-bot/internal/ledger"
	"task-submission-bot/internal/model"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.LedgerRow, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}

	snapshot := make([]model.LedgerRow, len(rows))
	copy(snapshot, rows)
	uc.snapshots.Add(sc, snapshot)

	uc.l.Debugf(ctx, "internal.ledger.usecase.List: %d rows cached for %s/%s", len(rows), sc.UserID, sc.ChannelID)
	return rows, nil
}

func (uc *implUseCase) Award(ctx context.Context, sc model.Scope, input ledger.AwardInput) (model.LedgerRow, error) {
	if input.Points > ledger.MaxAwardPoints || input.Points < -ledger.MaxAwardPoints {
		return model.LedgerRow{}, ledger.ErrPointsOutOfRange
	}
	if err := input.Validate(); err != nil {
		return model.LedgerRow{}, fmt.Errorf("%w: %v", ledger.ErrInvalidSelection, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot, ok := uc.snapshots.Get(sc)
	if !ok {
		return model.LedgerRow{}, ledger.ErrNoSnapshot
	}
	if input.Selection > len(snapshot) {
		return model.LedgerRow{}, ledger.ErrInvalidSelection
	}

	selected := snapshot[input.Selection-1]
	if input.Points > 0 && selected.Points > math.MaxInt-input.Points {
		return model.LedgerRow{}, ledger.ErrPointsOutOfRange
	}
	updated := model.LedgerRow{Names: selected.Names, Points: selected.Points + input.Points}
	if updated.Points < 0 {
		return model.LedgerRow{}, ledger.ErrNegativePoints
	}

	if err := uc.repo.DeleteByName(ctx, selected.Names); err != nil {
		return model.LedgerRow{}, fmt.Errorf("delete %q: %w", selected.Names, err)
	}
	if err := uc.repo.Insert(ctx, updated); err != nil {
		uc.l.Errorf(ctx, "internal.ledger.usecase.Award: %q was deleted but re-insert failed: %v", selected.Names, err)
		return model.LedgerRow{}, fmt.Errorf("insert %q: %w", selected.Names, err)
	}

	next := make([]model.LedgerRow, len(snapshot))
	copy(next, snapshot)
	next[input.Selection-1] = updated
	uc.snapshots.Add(sc, next)

	uc.l.Infof(ctx, "internal.ledger.usecase.Award: %s %d -> %d", updated.Names, selected.Points, updated.Points)
	return updated, nil
}
