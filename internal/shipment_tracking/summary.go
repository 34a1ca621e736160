package shipmenttracking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	db "github.com/katatrina/sellerops-BE/internal/db/sqlc"
	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/rs/zerolog/log"
)

const summaryPageSize = 1000

type MismatchSummary struct {
	Orders    status.Summary `json:"orders"`
	Returns   status.Summary `json:"returns"`
	Malformed int            `json:"malformed"`
}

func (s MismatchSummary) MismatchCount() int {
	return s.Orders.MismatchCount + s.Returns.MismatchCount
}

// PostMismatchSummary reconciles every stored order and return and posts the
// totals to the ops channel. Nothing is posted when there are no mismatches.
func (t *ShipmentTracker) PostMismatchSummary(ctx context.Context) (MismatchSummary, error) {
	var summary MismatchSummary

	orderRows, err := db.ScanOrderRows(ctx, t.store, nil, summaryPageSize)
	if err != nil {
		return summary, fmt.Errorf("failed to list orders: %w", err)
	}
	returnRows, err := db.ScanReturnRows(ctx, t.store, nil, summaryPageSize)
	if err != nil {
		return summary, fmt.Errorf("failed to list returns: %w", err)
	}

	orders, badOrders := db.StatusRows(orderRows)
	returns, badReturns := db.StatusRows(returnRows)
	summary.Orders = status.Summarize(orders)
	summary.Returns = status.Summarize(returns)
	summary.Malformed = badOrders + badReturns

	if summary.MismatchCount() == 0 {
		log.Info().Int("orders", summary.Orders.Total).Int("returns", summary.Returns.Total).Msg("no status mismatches")
		return summary, nil
	}

	if err = t.alerter.Alert(ctx, FormatMismatchSummary(summary)); err != nil {
		return summary, err
	}

	return summary, nil
}

// FormatMismatchSummary renders the ops channel message.
func FormatMismatchSummary(s MismatchSummary) string {
	var b strings.Builder

	b.WriteString(status.MismatchBanner(s.MismatchCount()))
	fmt.Fprintf(&b, "\nOrders: %s of %s mismatched",
		humanize.Comma(int64(s.Orders.MismatchCount)), humanize.Comma(int64(s.Orders.Total)))
	fmt.Fprintf(&b, "\nReturns: %s of %s mismatched",
		humanize.Comma(int64(s.Returns.MismatchCount)), humanize.Comma(int64(s.Returns.Total)))
	if s.Malformed > 0 {
		fmt.Fprintf(&b, "\nSkipped %s malformed records", humanize.Comma(int64(s.Malformed)))
	}

	writeStates(&b, "Orders by our state", s.Orders.ByOurState)
	writeStates(&b, "Returns by our state", s.Returns.ByOurState)

	return b.String()
}

func writeStates(b *strings.Builder, title string, counts map[status.CanonicalState]int) {
	if len(counts) == 0 {
		return
	}

	states := make([]string, 0, len(counts))
	for state := range counts {
		states = append(states, string(state))
	}
	sort.Strings(states)

	parts := make([]string, 0, len(states))
	for _, state := range states {
		label := state
		if label == "" {
			label = "(none)"
		}
		parts = append(parts, fmt.Sprintf("%s %s", label, humanize.Comma(int64(counts[status.CanonicalState(state)]))))
	}
	fmt.Fprintf(b, "\n%s: %s", title, strings.Join(parts, ", "))
}
