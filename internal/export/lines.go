package export

import (
	"fmt"

	"github.com/zksindonesia/zprofit/internal/domain"
)

// LineItem is one labelled row of the rendered report.
type LineItem struct {
	Label    string
	Amount   float64
	Emphasis bool
}

// SummaryLines flattens a profit summary into the rows of the rendered
// document, in presentation order. Every figure that enters the profit
// formula appears here so the report can be audited line by line.
func SummaryLines(s domain.ProfitSummary) []LineItem {
	lines := []LineItem{
		{Label: "Omzet Pesanan Selesai", Amount: s.CompletedRevenue},
		{Label: "Omzet Pesanan Dalam Perjalanan", Amount: s.PendingRevenue},
	}

	if s.Mode == domain.ModeAccrual {
		lines = append(lines, LineItem{Label: "Omzet Kotor (Semua Pesanan)", Amount: s.GrossRevenue})
	}
	if s.UnrecognizedRevenue != 0 {
		lines = append(lines, LineItem{Label: "Omzet Status Tidak Dikenal", Amount: s.UnrecognizedRevenue})
	}

	adminLabel := "Biaya Admin & Layanan"
	if s.AdminFeeEstimated {
		adminLabel = "Estimasi Biaya Admin & Layanan"
	}
	reserveLabel := "Cadangan Risiko Retur"
	if s.Mode == domain.ModeCash {
		reserveLabel = fmt.Sprintf("Cadangan Risiko Retur (%d%%)", s.ReturnReservePct)
	}

	lines = append(lines,
		LineItem{Label: "Total Harga Pokok Penjualan (HPP)", Amount: s.TotalCOGS},
		LineItem{Label: adminLabel, Amount: s.AdminFee},
		LineItem{Label: "Biaya Iklan", Amount: s.Advertising},
		LineItem{Label: "Biaya Operasional", Amount: s.Operational},
		LineItem{Label: reserveLabel, Amount: s.ReturnReserve},
		LineItem{Label: "ESTIMASI LABA BERSIH AKHIR", Amount: s.NetProfit, Emphasis: true},
	)
	return lines
}
