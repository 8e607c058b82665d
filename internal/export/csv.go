package export

import (
	"encoding/csv"
	"io"

	"github.com/zksindonesia/zprofit/internal/domain"
)

// WriteCSV serialises the profit summary line items to a two-column CSV,
// mirroring the PDF table for spreadsheet-side auditing.
func WriteCSV(w io.Writer, s domain.ProfitSummary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	if s.Period != "" {
		if err := writer.Write([]string{"Periode", s.Period}); err != nil {
			return err
		}
	}
	for _, line := range SummaryLines(s) {
		if err := writer.Write([]string{line.Label, FormatRupiah(line.Amount)}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
