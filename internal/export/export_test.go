package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zksindonesia/zprofit/internal/domain"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{5000, "Rp 5.000"},
		{1234567, "Rp 1.234.567"},
		{1234567.4, "Rp 1.234.567"},
		{88080, "Rp 88.080"},
		{-5000, "Rp -5.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.in))
	}
}

func sampleSummary() domain.ProfitSummary {
	return domain.ProfitSummary{
		Mode:              domain.ModeCash,
		Period:            "02 Jul 2026 - 28 Jul 2026",
		CompletedRevenue:  100000,
		PendingRevenue:    50000,
		GrossRevenue:      150000,
		TotalCOGS:         25000,
		AdminFee:          31920,
		AdminFeeEstimated: true,
		ReturnReserve:     5000,
		ReturnReservePct:  10,
		NetProfit:         88080,
		GeneratedAt:       time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSummaryLinesCashMode(t *testing.T) {
	lines := SummaryLines(sampleSummary())

	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		labels = append(labels, line.Label)
	}

	assert.Equal(t, []string{
		"Omzet Pesanan Selesai",
		"Omzet Pesanan Dalam Perjalanan",
		"Total Harga Pokok Penjualan (HPP)",
		"Estimasi Biaya Admin & Layanan",
		"Biaya Iklan",
		"Biaya Operasional",
		"Cadangan Risiko Retur (10%)",
		"ESTIMASI LABA BERSIH AKHIR",
	}, labels)

	last := lines[len(lines)-1]
	assert.True(t, last.Emphasis)
	assert.Equal(t, 88080.0, last.Amount)
}

func TestSummaryLinesAccrualMode(t *testing.T) {
	s := sampleSummary()
	s.Mode = domain.ModeAccrual
	s.AdminFeeEstimated = false
	s.UnrecognizedRevenue = 7000

	labels := make([]string, 0)
	for _, line := range SummaryLines(s) {
		labels = append(labels, line.Label)
	}

	assert.Contains(t, labels, "Omzet Kotor (Semua Pesanan)")
	assert.Contains(t, labels, "Omzet Status Tidak Dikenal")
	assert.Contains(t, labels, "Biaya Admin & Layanan")
	assert.Contains(t, labels, "Cadangan Risiko Retur")
	assert.NotContains(t, labels, "Estimasi Biaya Admin & Layanan")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleSummary()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Metric,Value\n"))
	assert.Contains(t, out, "Periode,02 Jul 2026 - 28 Jul 2026")
	assert.Contains(t, out, "Omzet Pesanan Selesai,Rp 100.000")
	assert.Contains(t, out, "ESTIMASI LABA BERSIH AKHIR,Rp 88.080")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "ZKS Indonesia", sampleSummary()))

	require.NotZero(t, buf.Len())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
