// internal/api/handlers/report_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zksindonesia/zprofit/internal/domain"
	"github.com/zksindonesia/zprofit/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListProducts handles the step between upload and generation: it parses
// the order export and returns the distinct products with suggested unit
// costs so the seller can fill in the HPP form.
func (h *ReportHandler) ListProducts(c *gin.Context) {
	orders, err := openFormFile(c, "orders")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order export file is required"})
		return
	}
	defer orders.Close()

	products, err := h.reportService.ListProducts(c.Request.Context(), orders)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products from order export")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// GenerateReport runs one full report from a multipart request: the order
// export, the optional cost report, the per-product unit costs, and the
// manual overhead figures. The rendered document comes back as the response
// body, ready for download.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	orders, err := openFormFile(c, "orders")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order export file is required"})
		return
	}
	defer orders.Close()

	req := service.ReportRequest{
		Orders: orders,
		Mode:   domain.ReportMode(c.DefaultPostForm("mode", string(domain.ModeCash))),
		Format: service.DocumentFormat(c.DefaultPostForm("format", string(service.FormatPDF))),
		Overheads: domain.OverheadFigures{
			Advertising:      formFloat(c, "advertising"),
			AdminFee:         formFloat(c, "admin_fee"),
			Operational:      formFloat(c, "operational"),
			ReturnReserve:    formFloat(c, "return_reserve"),
			ReturnReservePct: formInt(c, "return_reserve_pct"),
		},
	}

	if raw := c.PostForm("unit_costs"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.UnitCosts); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unit_costs must be a JSON object of identity to cost"})
			return
		}
	}

	if costReport, err := openFormFile(c, "cost_report"); err == nil {
		defer costReport.Close()
		req.CostReport = costReport
	}

	_, doc, err := h.reportService.Generate(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate report")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func openFormFile(c *gin.Context, field string) (multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	return fh.Open()
}

func formFloat(c *gin.Context, field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm(field)), 64)
	if err != nil {
		return 0
	}
	return v
}

func formInt(c *gin.Context, field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.PostForm(field)))
	if err != nil {
		return 0
	}
	return v
}
