package report

import (
	"fmt"

	"github.com/zksindonesia/zprofit/internal/domain"
)

// Config carries the tunable constants of the profit formulas. Neither
// figure has a published derivation, so both stay configurable instead of
// being buried as literals.
type Config struct {
	// AdminFeeRate is the estimated platform fee rate applied to realized
	// plus pending revenue in cash mode.
	AdminFeeRate float64
	// DefaultReturnReserve is the flat return reserve used by accrual mode
	// when the caller supplies none.
	DefaultReturnReserve float64
}

// DefaultConfig returns the rates ZKS has been operating with.
func DefaultConfig() Config {
	return Config{
		AdminFeeRate:         0.2128,
		DefaultReturnReserve: 138600,
	}
}

// ProfitFormula composes the revenue aggregates, the cost of goods, and the
// overhead figures of one run into a profit summary. Implementations differ
// in how fees and reserves are sourced.
type ProfitFormula interface {
	Mode() domain.ReportMode
	Compose(totals domain.RevenueTotals, totalCOGS float64, overheads domain.OverheadFigures) domain.ProfitSummary
}

// FormulaFor returns the formula for a report mode.
func FormulaFor(mode domain.ReportMode, cfg Config) (ProfitFormula, error) {
	switch mode {
	case domain.ModeCash:
		return CashMode{Config: cfg}, nil
	case domain.ModeAccrual:
		return AccrualMode{Config: cfg}, nil
	default:
		return nil, fmt.Errorf("unknown report mode %q", mode)
	}
}

// CashMode estimates the platform fee at a fixed rate of realized plus
// pending revenue and reserves a caller-chosen percentage of pending revenue
// against returns. It ignores revenue outside the two recognized buckets.
type CashMode struct {
	Config Config
}

func (f CashMode) Mode() domain.ReportMode { return domain.ModeCash }

func (f CashMode) Compose(totals domain.RevenueTotals, totalCOGS float64, overheads domain.OverheadFigures) domain.ProfitSummary {
	realized := totals.Completed + totals.Pending
	pct := clampReservePct(overheads.ReturnReservePct)

	estAdminFee := realized * f.Config.AdminFeeRate
	returnReserve := totals.Pending * float64(pct) / 100
	profit := realized - totalCOGS - estAdminFee -
		overheads.Advertising - overheads.Operational - returnReserve

	return domain.ProfitSummary{
		Mode:                domain.ModeCash,
		Period:              totals.PeriodLabel(),
		CompletedRevenue:    totals.Completed,
		PendingRevenue:      totals.Pending,
		GrossRevenue:        totals.Gross,
		UnrecognizedRevenue: totals.Unrecognized,
		TotalCOGS:           totalCOGS,
		AdminFee:            estAdminFee,
		AdminFeeEstimated:   true,
		Advertising:         overheads.Advertising,
		Operational:         overheads.Operational,
		ReturnReserve:       returnReserve,
		ReturnReservePct:    pct,
		NetProfit:           profit,
	}
}

// AccrualMode applies the actually sourced fee figures to all non-cancelled
// revenue. The return reserve is the caller-supplied flat figure, or the
// configured default when none was given.
type AccrualMode struct {
	Config Config
}

func (f AccrualMode) Mode() domain.ReportMode { return domain.ModeAccrual }

func (f AccrualMode) Compose(totals domain.RevenueTotals, totalCOGS float64, overheads domain.OverheadFigures) domain.ProfitSummary {
	returnReserve := overheads.ReturnReserve
	if returnReserve == 0 {
		returnReserve = f.Config.DefaultReturnReserve
	}

	profit := totals.Gross - totalCOGS - overheads.AdminFee -
		overheads.Advertising - overheads.Operational - returnReserve

	return domain.ProfitSummary{
		Mode:                domain.ModeAccrual,
		Period:              totals.PeriodLabel(),
		CompletedRevenue:    totals.Completed,
		PendingRevenue:      totals.Pending,
		GrossRevenue:        totals.Gross,
		UnrecognizedRevenue: totals.Unrecognized,
		TotalCOGS:           totalCOGS,
		AdminFee:            overheads.AdminFee,
		Advertising:         overheads.Advertising,
		Operational:         overheads.Operational,
		ReturnReserve:       returnReserve,
		NetProfit:           profit,
	}
}

// clampReservePct keeps the return-reserve percentage inside the range the
// input form offers.
func clampReservePct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 30 {
		return 30
	}
	return pct
}
