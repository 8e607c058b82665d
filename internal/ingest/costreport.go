package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/zksindonesia/zprofit/internal/domain"
)

// ParseCostReport reads the optional marketplace cost report as a list of
// (label, value) pairs: first column label, second column value. Rows
// without both cells are skipped. The values stay raw; the overhead
// resolver decides what parses and what falls back.
//
// Callers treat any error as "no cost report": the file is an enrichment,
// never a hard dependency of the run.
func ParseCostReport(r io.Reader) ([]domain.LabelledAmount, error) {
	records, err := readFirstSheet(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read cost report: %w", err)
	}

	rows := make([]domain.LabelledAmount, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		label := strings.TrimSpace(record[0])
		if label == "" {
			continue
		}
		rows = append(rows, domain.LabelledAmount{
			Label: label,
			Raw:   strings.TrimSpace(record[1]),
		})
	}
	return rows, nil
}
