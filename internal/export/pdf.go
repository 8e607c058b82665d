package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/zksindonesia/zprofit/internal/domain"
)

// WritePDF renders the profit summary as the one-page ZProfit business
// report: title header, business line, and a bordered label/amount table
// with the net profit row emphasized.
func WritePDF(w io.Writer, businessName string, s domain.ProfitSummary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 15, "ZPROFIT BUSINESS REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, businessName+" - Data-Driven Analysis", "", 1, "C", false, 0, "")
	if s.Period != "" {
		pdf.CellFormat(0, 5, "Periode: "+s.Period, "", 1, "C", false, 0, "")
	}
	pdf.Ln(10)

	for _, line := range SummaryLines(s) {
		style := ""
		if line.Emphasis {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(120, 10, line.Label, "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 10, FormatRupiah(line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 5, "Dibuat "+s.GeneratedAt.Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf report: %w", err)
	}
	return nil
}
