package gsheets

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"

	"task-submission-bot/internal/ledger/repository"
	"task-submission-bot/internal/model"
	pkgLog "task-submission-bot/pkg/log"
)

// Options locates the ledger inside a spreadsheet. Column A holds Names,
// column B holds Points, and row 1 is a header.
type Options struct {
	SpreadsheetID string
	SheetName     string
	SheetID       int64
}

type implRepository struct {
	svc  *sheets.Service
	opts Options
	l    pkgLog.Logger
}

// New creates a ledger repository backed by the Sheets v4 API.
func New(svc *sheets.Service, opts Options, l pkgLog.Logger) repository.LedgerRepository {
	return &implRepository{svc: svc, opts: opts, l: l}
}

func (r *implRepository) dataRange() string {
	return fmt.Sprintf("%s!A:B", r.opts.SheetName)
}

func (r *implRepository) readValues(ctx context.Context) ([][]interface{}, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.opts.SpreadsheetID, r.dataRange()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.dataRange(), err)
	}
	return resp.Values, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.LedgerRow, error) {
	values, err := r.readValues(ctx)
	if err != nil {
		r.l.Errorf(ctx, "gsheets repository: %v", err)
		return nil, err
	}

	var out []model.LedgerRow
	for i, row := range values {
		if i == 0 {
			continue
		}
		name := cell(row, 0)
		if name == "" {
			continue
		}
		out = append(out, model.LedgerRow{Names: name, Points: parsePoints(cell(row, 1))})
	}
	return out, nil
}

func (r *implRepository) DeleteByName(ctx context.Context, name string) error {
	values, err := r.readValues(ctx)
	if err != nil {
		r.l.Errorf(ctx, "gsheets repository: %v", err)
		return err
	}

	var indexes []int64
	for i, row := range values {
		if i > 0 && cell(row, 0) == name {
			indexes = append(indexes, int64(i))
		}
	}
	if len(indexes) == 0 {
		return nil
	}

	// Bottom-up so earlier deletions do not shift later indexes.
	sort.Slice(indexes, func(a, b int) bool { return indexes[a] > indexes[b] })
	reqs := make([]*sheets.Request, 0, len(indexes))
	for _, idx := range indexes {
		reqs = append(reqs, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    r.opts.SheetID,
					Dimension:  "ROWS",
					StartIndex: idx,
					EndIndex:   idx + 1,
				},
			},
		})
	}

	_, err = r.svc.Spreadsheets.BatchUpdate(r.opts.SpreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "gsheets repository: failed to delete %q: %v", name, err)
		return fmt.Errorf("failed to delete rows for %q: %w", name, err)
	}
	return nil
}

func (r *implRepository) Insert(ctx context.Context, row model.LedgerRow) error {
	_, err := r.svc.Spreadsheets.Values.Append(r.opts.SpreadsheetID, r.dataRange(), &sheets.ValueRange{
		Values: [][]interface{}{{row.Names, row.Points}},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "gsheets repository: failed to append %q: %v", row.Names, err)
		return fmt.Errorf("failed to append row for %q: %w", row.Names, err)
	}
	return nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

func parsePoints(s string) int {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}
