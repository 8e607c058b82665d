package report

import (
	"github.com/zksindonesia/zprofit/internal/domain"
)

// Aggregate partitions the rows by fulfillment status and sums their
// normalized payment amounts. It relies on the upstream invariant that
// cancelled orders were dropped at ingest.
//
// Completed revenue covers Selesai orders; pending revenue covers Perlu
// Dikirim and Dikirim. Any other status lands only in Gross and in the
// Unrecognized figure, so the report stays reconcilable even when the
// marketplace introduces a label we do not recognize.
//
// The reporting period is derived from the order-creation timestamps when
// the export carries them; it labels the report and nothing else.
func Aggregate(rows []domain.OrderRow) domain.RevenueTotals {
	var totals domain.RevenueTotals
	for _, row := range rows {
		totals.Gross += row.Amount
		switch {
		case domain.IsCompleted(row.Status):
			totals.Completed += row.Amount
		case domain.IsPending(row.Status):
			totals.Pending += row.Amount
		default:
			totals.Unrecognized += row.Amount
		}

		if row.OrderedAt == nil {
			continue
		}
		at := *row.OrderedAt
		if totals.PeriodStart.IsZero() || at.Before(totals.PeriodStart) {
			totals.PeriodStart = at
		}
		if at.After(totals.PeriodEnd) {
			totals.PeriodEnd = at
		}
	}
	return totals
}
