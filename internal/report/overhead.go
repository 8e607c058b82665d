package report

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/zksindonesia/zprofit/internal/domain"
)

// Label markers of the rows we look for in the marketplace cost report.
const (
	markerAdvertising = "IKLAN"
	markerAdminFee    = "ADMIN"
)

// ResolveOverheads fills the advertising and admin-fee figures from the
// secondary cost report when a matching row exists, keeping the manual
// defaults otherwise. The cost report is a best-effort enrichment: a missing
// marker or an unparseable value falls back to the manual figure and is
// logged, never failing the run. The marketplace encodes fees as negative
// deductions, so the admin figure is taken as an absolute value.
// Operational cost and the return reserve have no automatic source and pass
// through untouched.
func ResolveOverheads(manual domain.OverheadFigures, costRows []domain.LabelledAmount) domain.OverheadFigures {
	resolved := manual

	if v, ok := findAmount(costRows, markerAdvertising); ok {
		resolved.Advertising = v
		resolved.AdvertisingAuto = true
	} else if len(costRows) > 0 {
		log.Warn().Str("marker", markerAdvertising).
			Msg("cost report has no usable advertising row, keeping manual figure")
	}

	if v, ok := findAmount(costRows, markerAdminFee); ok {
		resolved.AdminFee = math.Abs(v)
		resolved.AdminFeeAuto = true
	} else if len(costRows) > 0 {
		log.Warn().Str("marker", markerAdminFee).
			Msg("cost report has no usable admin fee row, keeping manual figure")
	}

	return resolved
}

// findAmount scans the cost rows for a label containing the marker and
// returns its normalized value. Rows whose value carries no digits at all
// are skipped so that a garbage cell does not masquerade as a zero figure.
func findAmount(rows []domain.LabelledAmount, marker string) (float64, bool) {
	for _, row := range rows {
		if !strings.Contains(strings.ToUpper(row.Label), marker) {
			continue
		}
		if !strings.ContainsAny(row.Raw, "0123456789") {
			continue
		}
		return NormalizeAmount(row.Raw), true
	}
	return 0, false
}
