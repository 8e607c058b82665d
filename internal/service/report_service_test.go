package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zksindonesia/zprofit/internal/domain"
	"github.com/zksindonesia/zprofit/internal/report"
)

type memoryArchive struct {
	saved map[string][]byte
	err   error
}

func newMemoryArchive() *memoryArchive {
	return &memoryArchive{saved: make(map[string][]byte)}
}

func (m *memoryArchive) Save(_ context.Context, name string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.saved[name] = data
	return nil
}

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func orderExport(t *testing.T) *bytes.Reader {
	return buildWorkbook(t, [][]any{
		{"Status Pesanan", "Nama Produk", "SKU Induk", "Jumlah", "Total Pembayaran"},
		{"Selesai", "Serum Wajah", "A", 2, "Rp100.000"},
		{"Dikirim", "Toner Mawar", "B", 1, "Rp50.000"},
		{"Dibatalkan", "Parfum Melati", "C", 5, "Rp999.999"},
	})
}

func TestGenerateCashMode(t *testing.T) {
	archive := newMemoryArchive()
	svc := NewReportService("ZKS Indonesia", report.DefaultConfig(), archive)

	summary, doc, err := svc.Generate(context.Background(), ReportRequest{
		Orders:    orderExport(t),
		UnitCosts: map[string]float64{"A": 10000, "B": 5000},
		Overheads: domain.OverheadFigures{ReturnReservePct: 10},
		Mode:      domain.ModeCash,
		Format:    FormatPDF,
	})
	require.NoError(t, err)

	assert.Equal(t, 100000.0, summary.CompletedRevenue)
	assert.Equal(t, 50000.0, summary.PendingRevenue)
	assert.Equal(t, 25000.0, summary.TotalCOGS, "cancelled order contributes nothing")
	assert.InDelta(t, 31920, summary.AdminFee, 1e-6)
	assert.InDelta(t, 88080, summary.NetProfit, 1e-6)

	require.NotNil(t, doc)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))

	require.Len(t, archive.saved, 1)
	assert.Contains(t, doc.Name, "cash")
}

func TestGenerateAccrualModeWithCostReport(t *testing.T) {
	costReport := buildWorkbook(t, [][]any{
		{"Biaya Iklan", "Rp75.000"},
		{"Biaya Admin & Layanan", "-Rp30.000"},
	})

	svc := NewReportService("ZKS Indonesia", report.DefaultConfig(), nil)
	summary, doc, err := svc.Generate(context.Background(), ReportRequest{
		Orders:     orderExport(t),
		CostReport: costReport,
		UnitCosts:  map[string]float64{"A": 10000, "B": 5000},
		Overheads:  domain.OverheadFigures{Operational: 10000, ReturnReserve: 20000},
		Mode:       domain.ModeAccrual,
		Format:     FormatCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, 75000.0, summary.Advertising, "advertising auto-sourced from the cost report")
	assert.Equal(t, 30000.0, summary.AdminFee, "negative admin deduction flipped positive")
	assert.InDelta(t, 150000-25000-30000-75000-10000-20000, summary.NetProfit, 1e-6)

	assert.Equal(t, "text/csv", doc.ContentType)
	assert.Contains(t, string(doc.Data), "Omzet Kotor (Semua Pesanan)")
}

func TestGenerateCostReportWithoutMarkersKeepsManual(t *testing.T) {
	costReport := buildWorkbook(t, [][]any{
		{"Ongkos Kirim", "Rp12.000"},
	})

	svc := NewReportService("ZKS Indonesia", report.DefaultConfig(), nil)
	summary, _, err := svc.Generate(context.Background(), ReportRequest{
		Orders:     orderExport(t),
		CostReport: costReport,
		Overheads:  domain.OverheadFigures{Advertising: 11111, AdminFee: 22222},
		Mode:       domain.ModeAccrual,
	})
	require.NoError(t, err)

	assert.Equal(t, 11111.0, summary.Advertising)
	assert.Equal(t, 22222.0, summary.AdminFee)
}

func TestGenerateMissingColumnAborts(t *testing.T) {
	broken := buildWorkbook(t, [][]any{
		{"Nama Produk", "Jumlah", "Total Pembayaran"},
		{"Serum Wajah", 1, "Rp10.000"},
	})

	svc := NewReportService("ZKS Indonesia", report.DefaultConfig(), nil)
	summary, doc, err := svc.Generate(context.Background(), ReportRequest{
		Orders: broken,
		Mode:   domain.ModeCash,
	})
	require.Error(t, err)
	assert.Nil(t, summary, "no partial report on a broken export")
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "Status Pesanan")
}

func TestGenerateUnknownMode(t *testing.T) {
	svc := NewReportService("ZKS Indonesia", report.DefaultConfig(), nil)
	_, _, err := svc.Generate(context.Background(), ReportRequest{
		Orders: orderExport(t),
		Mode:   "fifo",
	})
	require.Error(t, err)
}

func TestGenerateArchiveFailureIsNotFatal(t *testing.T) {
	archive := newMemoryArchive()
	archive.err = fmt.Errorf("disk full")

	svc := NewReportService("ZKS Indonesia", report.DefaultConfig(), archive)
	_, doc, err := svc.Generate(context.Background(), ReportRequest{
		Orders: orderExport(t),
		Mode:   domain.ModeCash,
	})
	require.NoError(t, err, "the seller still gets the document")
	require.NotNil(t, doc)
}

func TestListProducts(t *testing.T) {
	svc := NewReportService("ZKS Indonesia", report.DefaultConfig(), nil)

	products, err := svc.ListProducts(context.Background(), buildWorkbook(t, [][]any{
		{"Status Pesanan", "Nama Produk", "SKU Induk", "Jumlah", "Total Pembayaran"},
		{"Selesai", "Serum Wajah", "", 1, "Rp10.000"},
		{"Dikirim", "Gantungan Kunci", "", 1, "Rp5.000"},
		{"Selesai", "Serum Wajah", "", 2, "Rp20.000"},
	}))
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Gantungan Kunci", products[0].Identity, "sorted ascending")
	assert.Zero(t, products[0].SuggestedCost)
	assert.Equal(t, "Serum Wajah", products[1].Identity)
	assert.Equal(t, 22000.0, products[1].SuggestedCost)
}
