// internal/service/report_service.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zksindonesia/zprofit/internal/domain"
	"github.com/zksindonesia/zprofit/internal/export"
	"github.com/zksindonesia/zprofit/internal/ingest"
	"github.com/zksindonesia/zprofit/internal/report"
	"github.com/zksindonesia/zprofit/internal/storage"
)

// DocumentFormat selects the rendering of the generated report.
type DocumentFormat string

const (
	FormatPDF DocumentFormat = "pdf"
	FormatCSV DocumentFormat = "csv"
)

// ReportRequest carries everything one run needs. The service holds no
// state between runs; each request is a complete, self-contained input.
type ReportRequest struct {
	Orders     io.Reader          // primary order export (xlsx)
	CostReport io.Reader          // optional secondary cost report (xlsx)
	UnitCosts  map[string]float64 // caller-entered HPP per product identity
	Overheads  domain.OverheadFigures
	Mode       domain.ReportMode
	Format     DocumentFormat
}

// Document is a rendered report ready for download.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProductCost pairs a product identity with its suggested unit cost, for
// the cost-entry step between upload and generation.
type ProductCost struct {
	Identity      string  `json:"identity"`
	SuggestedCost float64 `json:"suggested_cost"`
}

type ReportService struct {
	businessName string
	formulaCfg   report.Config
	archive      storage.ReportArchive
}

// NewReportService builds a ReportService. The archive may be nil, in which
// case generated documents are only returned, not kept.
func NewReportService(businessName string, formulaCfg report.Config, archive storage.ReportArchive) *ReportService {
	return &ReportService{
		businessName: businessName,
		formulaCfg:   formulaCfg,
		archive:      archive,
	}
}

// ListProducts parses an order export and returns its distinct product
// identities with seeded unit costs, sorted. This backs the cost-entry form
// shown after upload.
func (s *ReportService) ListProducts(_ context.Context, orders io.Reader) ([]ProductCost, error) {
	rows, err := ingest.ParseOrders(orders)
	if err != nil {
		return nil, err
	}

	identities := report.DistinctIdentities(rows)
	products := make([]ProductCost, 0, len(identities))
	for _, id := range identities {
		products = append(products, ProductCost{
			Identity:      id,
			SuggestedCost: report.SeedCost(id),
		})
	}
	return products, nil
}

// Generate runs the whole pipeline for one request: ingest, costing,
// aggregation, overhead resolution, composition, rendering, archival. The
// returned summary keeps every intermediate figure.
func (s *ReportService) Generate(ctx context.Context, req ReportRequest) (*domain.ProfitSummary, *Document, error) {
	rows, err := ingest.ParseOrders(req.Orders)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to ingest order export: %w", err)
	}

	identities := report.DistinctIdentities(rows)
	costs := report.SeededCostMap(identities, req.UnitCosts)
	report.ApplyCosts(rows, costs)

	totals := report.Aggregate(rows)
	totalCOGS := report.TotalCOGS(rows)

	overheads := req.Overheads
	if req.CostReport != nil {
		costRows, err := ingest.ParseCostReport(req.CostReport)
		if err != nil {
			log.Warn().Err(err).Msg("cost report unreadable, keeping manual overhead figures")
		} else {
			overheads = report.ResolveOverheads(overheads, costRows)
		}
	}

	formula, err := report.FormulaFor(req.Mode, s.formulaCfg)
	if err != nil {
		return nil, nil, err
	}

	summary := formula.Compose(totals, totalCOGS, overheads)
	summary.GeneratedAt = time.Now()

	doc, err := s.render(summary, req.Format)
	if err != nil {
		return nil, nil, err
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, doc.Name, doc.Data); err != nil {
			// The seller still gets the download; archival is best-effort.
			log.Error().Err(err).Str("report", doc.Name).Msg("failed to archive report")
		}
	}

	log.Info().
		Str("mode", string(summary.Mode)).
		Int("rows", len(rows)).
		Int("products", len(identities)).
		Float64("net_profit", summary.NetProfit).
		Msg("report generated")

	return &summary, doc, nil
}

func (s *ReportService) render(summary domain.ProfitSummary, format DocumentFormat) (*Document, error) {
	stamp := summary.GeneratedAt.Format("20060102_150405")
	var buf bytes.Buffer

	switch format {
	case FormatCSV:
		if err := export.WriteCSV(&buf, summary); err != nil {
			return nil, fmt.Errorf("failed to render csv report: %w", err)
		}
		return &Document{
			Name:        fmt.Sprintf("ZProfit_%s_%s.csv", summary.Mode, stamp),
			ContentType: "text/csv",
			Data:        buf.Bytes(),
		}, nil
	case FormatPDF, "":
		if err := export.WritePDF(&buf, s.businessName, summary); err != nil {
			return nil, err
		}
		return &Document{
			Name:        fmt.Sprintf("ZProfit_%s_%s.pdf", summary.Mode, stamp),
			ContentType: "application/pdf",
			Data:        buf.Bytes(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}
