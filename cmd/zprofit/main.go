// cmd/zprofit/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/zksindonesia/zprofit/internal/domain"
	"github.com/zksindonesia/zprofit/internal/export"
	"github.com/zksindonesia/zprofit/internal/report"
	"github.com/zksindonesia/zprofit/internal/service"
	"github.com/zksindonesia/zprofit/internal/storage"
	"github.com/zksindonesia/zprofit/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "zprofit",
		Usage: "Generate net-profit reports from marketplace order exports",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			generateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Compute one profit report and write the rendered document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "orders",
				Usage:    "Path to the order export (.xlsx)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "cost-report",
				Usage: "Path to the optional marketplace cost report (.xlsx)",
			},
			&cli.StringFlag{
				Name:  "costs",
				Usage: "Path to a JSON file mapping product identity to unit cost (HPP)",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Report mode: cash or accrual",
				Value: string(domain.ModeCash),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: pdf or csv",
				Value: string(service.FormatPDF),
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output file path",
				Value: "ZProfit_Report.pdf",
			},
			&cli.StringFlag{
				Name:  "archive-dir",
				Usage: "Directory to also archive the rendered report in, empty to skip",
			},
			&cli.StringFlag{
				Name:    "business-name",
				Usage:   "Business name printed on the report",
				Value:   "ZKS Indonesia",
				EnvVars: []string{"REPORT_BUSINESS_NAME"},
			},
			&cli.Float64Flag{
				Name:  "advertising",
				Usage: "Advertising spend (used unless the cost report provides it)",
			},
			&cli.Float64Flag{
				Name:  "admin-fee",
				Usage: "Platform admin fee, accrual mode (used unless the cost report provides it)",
			},
			&cli.Float64Flag{
				Name:  "operational",
				Usage: "Operational cost",
			},
			&cli.Float64Flag{
				Name:  "return-reserve",
				Usage: "Flat return reserve, accrual mode",
			},
			&cli.IntFlag{
				Name:  "return-reserve-pct",
				Usage: "Return reserve as a percentage of pending revenue, cash mode (0-30)",
				Value: 5,
			},
			&cli.Float64Flag{
				Name:    "admin-fee-rate",
				Usage:   "Estimated platform fee rate, cash mode",
				Value:   0.2128,
				EnvVars: []string{"REPORT_ADMIN_FEE_RATE"},
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	orders, err := os.Open(c.String("orders"))
	if err != nil {
		return fmt.Errorf("failed to open order export: %w", err)
	}
	defer orders.Close()

	req := service.ReportRequest{
		Orders: orders,
		Mode:   domain.ReportMode(c.String("mode")),
		Format: service.DocumentFormat(c.String("format")),
		Overheads: domain.OverheadFigures{
			Advertising:      c.Float64("advertising"),
			AdminFee:         c.Float64("admin-fee"),
			Operational:      c.Float64("operational"),
			ReturnReserve:    c.Float64("return-reserve"),
			ReturnReservePct: c.Int("return-reserve-pct"),
		},
	}

	if path := c.String("cost-report"); path != "" {
		costReport, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open cost report: %w", err)
		}
		defer costReport.Close()
		req.CostReport = costReport
	}

	if path := c.String("costs"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read costs file: %w", err)
		}
		if err := json.Unmarshal(data, &req.UnitCosts); err != nil {
			return fmt.Errorf("failed to decode costs file %s: %w", path, err)
		}
	}

	var archive storage.ReportArchive
	if dir := c.String("archive-dir"); dir != "" {
		localArchive, err := storage.NewLocalArchive(dir)
		if err != nil {
			return err
		}
		archive = localArchive
	}

	formulaCfg := report.DefaultConfig()
	formulaCfg.AdminFeeRate = c.Float64("admin-fee-rate")

	reportService := service.NewReportService(c.String("business-name"), formulaCfg, archive)
	summary, doc, err := reportService.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.String("out"), doc.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", c.String("out"), err)
	}

	for _, line := range export.SummaryLines(*summary) {
		fmt.Printf("%-40s %20s\n", line.Label, export.FormatRupiah(line.Amount))
	}
	fmt.Printf("\nReport written to %s\n", c.String("out"))

	return nil
}
