package domain

import "time"

// OrderRow is a single transaction line item from the order export after
// cleaning. Cancelled orders are dropped at ingest, so a slice of OrderRow
// never contains them.
type OrderRow struct {
	Status      string
	ProductName string
	ParentSKU   string
	Quantity    int
	Amount      float64 // normalized payment amount
	Identity    string  // grouping key: parent SKU when present, product name otherwise
	UnitCost    float64 // HPP looked up from the cost map
	OrderedAt   *time.Time
}

// TotalCost returns the cost of goods for this row.
func (r OrderRow) TotalCost() float64 {
	return r.UnitCost * float64(r.Quantity)
}

// ReportMode selects the profit composition formula for a run.
type ReportMode string

const (
	ModeCash    ReportMode = "cash"
	ModeAccrual ReportMode = "accrual"
)

// OverheadFigures holds the overhead components of one run. Advertising and
// admin fee may be auto-sourced from the secondary cost report; operational
// cost and the return reserve are always caller-supplied.
type OverheadFigures struct {
	Advertising      float64
	AdminFee         float64
	Operational      float64
	ReturnReserve    float64 // flat figure, accrual mode
	ReturnReservePct int     // percentage of pending revenue, cash mode
	AdvertisingAuto  bool
	AdminFeeAuto     bool
}

// LabelledAmount is one (label, value) pair read from the secondary cost
// report. The value stays raw so that normalization failures can be told
// apart from genuine zeros.
type LabelledAmount struct {
	Label string
	Raw   string
}

// RevenueTotals are the status-partitioned revenue sums of one upload.
// Unrecognized holds revenue from non-cancelled rows whose status matches
// neither the completed nor the pending set; it counts toward Gross but
// toward neither bucket.
type RevenueTotals struct {
	Completed    float64
	Pending      float64
	Gross        float64
	Unrecognized float64
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// PeriodLabel renders the reporting period covered by the upload, derived
// from the order-creation timestamps when the export carries them.
func (t RevenueTotals) PeriodLabel() string {
	if t.PeriodStart.IsZero() {
		return ""
	}
	const layout = "02 Jan 2006"
	start := t.PeriodStart.Format(layout)
	end := t.PeriodEnd.Format(layout)
	if start == end {
		return start
	}
	return start + " - " + end
}

// ProfitSummary is the final output record of one run. Every intermediate
// figure is preserved so the rendered report can be audited line by line.
// It is never persisted; it lives only for the duration of the run that
// produced it.
type ProfitSummary struct {
	Mode                ReportMode
	Period              string
	CompletedRevenue    float64
	PendingRevenue      float64
	GrossRevenue        float64
	UnrecognizedRevenue float64
	TotalCOGS           float64
	AdminFee            float64
	AdminFeeEstimated   bool // true when AdminFee is the fixed-rate estimate
	Advertising         float64
	Operational         float64
	ReturnReserve       float64
	ReturnReservePct    int // only meaningful in cash mode
	NetProfit           float64
	GeneratedAt         time.Time
}
