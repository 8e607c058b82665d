package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/zksindonesia/zprofit/internal/domain"
	"github.com/zksindonesia/zprofit/internal/report"
)

// Column headers of the Shopee order export. The optional creation-time
// column only labels the reporting period.
const (
	colStatus      = "Status Pesanan"
	colProductName = "Nama Produk"
	colParentSKU   = "SKU Induk"
	colQuantity    = "Jumlah"
	colAmount      = "Total Pembayaran"
	colOrderedAt   = "Waktu Pesanan Dibuat"
)

// orderTimeLayouts are the creation-time formats seen across export
// versions. Parsing is best-effort; an unknown format just leaves the
// period label empty.
var orderTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
}

// ParseOrders reads a marketplace order export and returns the cleaned
// rows: cancelled orders dropped, payment amounts normalized, and the
// product identity stamped onto every row. No downstream stage ever sees a
// cancelled order.
//
// A missing required column aborts the whole run; per-cell problems inside
// a present column degrade to zero instead.
func ParseOrders(r io.Reader) ([]domain.OrderRow, error) {
	records, err := readFirstSheet(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read order export: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("order export is empty")
	}

	header := records[0]
	idxStatus := columnIndex(header, colStatus)
	idxProduct := columnIndex(header, colProductName)
	idxSKU := columnIndex(header, colParentSKU)
	idxQty := columnIndex(header, colQuantity)
	idxAmount := columnIndex(header, colAmount)
	idxOrderedAt := columnIndex(header, colOrderedAt)

	required := []struct {
		name string
		idx  int
	}{
		{colStatus, idxStatus},
		{colProductName, idxProduct},
		{colParentSKU, idxSKU},
		{colQuantity, idxQty},
		{colAmount, idxAmount},
	}
	for _, col := range required {
		if col.idx < 0 {
			return nil, fmt.Errorf("order export is missing required column %q", col.name)
		}
	}

	rows := make([]domain.OrderRow, 0, len(records)-1)
	for _, record := range records[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		status := strings.TrimSpace(get(idxStatus))
		productName := get(idxProduct) // verbatim: the identity rule does not trim names
		if status == "" && strings.TrimSpace(productName) == "" {
			continue // trailing blank row
		}
		if domain.IsCancelled(status) {
			continue
		}

		row := domain.OrderRow{
			Status:      status,
			ProductName: productName,
			ParentSKU:   get(idxSKU),
			Quantity:    parseQuantity(get(idxQty)),
			Amount:      report.NormalizeAmount(get(idxAmount)),
			Identity:    report.ProductIdentity(get(idxSKU), productName),
			OrderedAt:   parseOrderTime(get(idxOrderedAt)),
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseQuantity reads a quantity cell, tolerating float renderings like
// "2.0". Malformed cells degrade to zero.
func parseQuantity(raw string) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}

func parseOrderTime(raw string) *time.Time {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	for _, layout := range orderTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}
