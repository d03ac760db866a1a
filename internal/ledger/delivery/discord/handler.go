package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"task-submission-bot/internal/ledger"
	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
)

func (h *handler) listNames(ctx context.Context, in router.Input) error {
	evt := in.Event
	rows, err := h.uc.List(ctx, evt.Scope())
	if err != nil {
		h.reply(ctx, evt, msgFetchFailed)
		return err
	}
	if len(rows) == 0 {
		h.reply(ctx, evt, msgNoNames)
		return nil
	}

	var sb strings.Builder
	sb.WriteString("**List of Names:**\n")
	for i, r := range rows {
		fmt.Fprintf(&sb, "%d. %s - Points: %d\n", i+1, r.Names, r.Points)
	}
	h.reply(ctx, evt, sb.String())
	return nil
}

func (h *handler) selectRow(ctx context.Context, in router.Input) error {
	evt := in.Event
	if len(in.Args) < 2 {
		h.reply(ctx, evt, msgSelectUsage)
		return nil
	}

	selection, err1 := strconv.Atoi(in.Args[0])
	points, err2 := strconv.Atoi(in.Args[1])
	if err1 != nil || err2 != nil {
		h.reply(ctx, evt, msgSelectNotNumber)
		return nil
	}

	row, err := h.uc.Award(ctx, evt.Scope(), ledger.AwardInput{Selection: selection, Points: points})
	switch {
	case err == nil:
		h.reply(ctx, evt, fmt.Sprintf(msgUpdated, row.Names, row.Points))
		return nil
	case errors.Is(err, ledger.ErrNoSnapshot), errors.Is(err, ledger.ErrInvalidSelection):
		h.reply(ctx, evt, msgSelectInvalid)
		return nil
	case errors.Is(err, ledger.ErrNegativePoints):
		h.reply(ctx, evt, msgNegativePoints)
		return nil
	case errors.Is(err, ledger.ErrPointsOutOfRange):
		h.reply(ctx, evt, fmt.Sprintf(msgPointsRange, ledger.MaxAwardPoints, ledger.MaxAwardPoints))
		return nil
	default:
		h.reply(ctx, evt, msgUpdateFailed)
		return err
	}
}

func (h *handler) points(ctx context.Context, in router.Input) error {
	evt := in.Event
	rows, err := h.uc.List(ctx, evt.Scope())
	if err != nil {
		h.reply(ctx, evt, msgFetchFailed)
		return err
	}

	text := msgNoNames
	if len(rows) > 0 {
		text = "**List of Names:**\n```\n" + renderTable(rows) + "\n```"
	}

	if _, err := h.discord.SendDM(ctx, evt.AuthorID, text); err != nil {
		h.l.Warnf(ctx, "internal.ledger.delivery.points: DM to %s failed: %v", evt.AuthorID, err)
		h.reply(ctx, evt, msgPointsDMFailed)
		return nil
	}
	if !evt.IsDM {
		h.reply(ctx, evt, msgPointsSent)
	}
	return nil
}

func renderTable(rows []model.LedgerRow) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Name", "Points"})
	for i, r := range rows {
		t.AppendRow(table.Row{i + 1, r.Names, r.Points})
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	return t.Render()
}

func (h *handler) reply(ctx context.Context, evt model.Event, text string) {
	if _, err := h.discord.Reply(ctx, evt.ChannelID, evt.MessageID, text); err != nil {
		h.l.Warnf(ctx, "internal.ledger.delivery.reply: %v", err)
	}
}
