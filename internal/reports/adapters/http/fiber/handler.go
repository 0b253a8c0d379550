package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GenerateReportUseCase interface {
	Execute(ctx context.Context, in usecase.GenerateReportInput) (*domain.Report, error)
}

type RenderChartUseCase interface {
	Execute(ctx context.Context, in usecase.RenderChartInput) ([]byte, error)
}

type AlignSeriesUseCase interface {
	Execute(in usecase.AlignSeriesInput) (usecase.AlignSeriesResult, error)
}

type ReportHandler struct {
	reportUC GenerateReportUseCase
	chartUC  RenderChartUseCase
	alignUC  AlignSeriesUseCase
}

func NewReportHandler(reportUC GenerateReportUseCase, chartUC RenderChartUseCase, alignUC AlignSeriesUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, chartUC: chartUC, alignUC: alignUC}
}

// GenerateReport godoc
// @Summary Generate a returns report
// @Description Aggregates returns by zone, aisle and person over a gap-free bucket axis
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body GenerateReportRequest true "Report query"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid query or too many buckets"
// @Failure 500 {object} ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	var req GenerateReportRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	zones := req.Zones
	if req.Zone != "" {
		zones = append(zones, req.Zone)
	}

	rep, err := h.reportUC.Execute(c.UserContext(), usecase.GenerateReportInput{
		From:    req.From,
		To:      req.To,
		GroupBy: req.GroupBy,
		KPIs:    toKPISet(req.KPIs),
		Zones:   zones,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toReportResponse(rep))
}

// Chart godoc
// @Summary Render a KPI chart
// @Description Renders one KPI of the general report as a PNG line chart
// @Tags Reports
// @Produce png
// @Param from query string true "From date (YYYY-MM-DD)"
// @Param to query string true "To date (YYYY-MM-DD)"
// @Param group_by query string false "Group by: day | week | month | year"
// @Param kpi query string false "KPI: amount | pieces | returns"
// @Param zone query string false "Comma separated zones"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/chart [get]
func (h *ReportHandler) Chart(c *fiber.Ctx) error {
	var zones []string
	if z := c.Query("zone", ""); z != "" {
		zones = strings.Split(z, ",")
	}

	png, err := h.chartUC.Execute(c.UserContext(), usecase.RenderChartInput{
		From:    c.Query("from", ""),
		To:      c.Query("to", ""),
		GroupBy: c.Query("group_by", ""),
		KPI:     c.Query("kpi", ""),
		Zones:   zones,
	})
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(http.StatusOK).Send(png)
}

// AlignSeries godoc
// @Summary Align dated series
// @Description Buckets arbitrary dated points onto one dense, gap-filled axis
// @Tags Series
// @Accept json
// @Produce json
// @Param request body AlignSeriesRequest true "Points to align"
// @Success 200 {object} AlignSeriesResponse
// @Failure 400 {object} ErrorResponse "Invalid points or too many buckets"
// @Failure 500 {object} ErrorResponse
// @Router /series/align [post]
func (h *ReportHandler) AlignSeries(c *fiber.Ctx) error {
	var req AlignSeriesRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	in := usecase.AlignSeriesInput{
		From:    req.From,
		To:      req.To,
		GroupBy: req.GroupBy,
		Metrics: req.Metrics,
		Points:  make([]usecase.PointInput, 0, len(req.Points)),
	}
	for _, p := range req.Points {
		in.Points = append(in.Points, usecase.PointInput{Date: p.Date, Metrics: p.Metrics})
	}

	res, err := h.alignUC.Execute(in)
	if err != nil {
		return writeError(c, err)
	}

	resp := AlignSeriesResponse{
		Table:   toTableResponse(res.Table),
		XY:      make(map[string][]domain.XYPoint, len(res.Table.Series)),
		Skipped: res.Skipped,
	}
	for name := range res.Table.Series {
		resp.XY[name] = res.Table.Column(name).XY()
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidGranularity),
		errors.Is(err, usecase.ErrNoKPISelected),
		errors.Is(err, usecase.ErrInvalidKPI),
		errors.Is(err, usecase.ErrRangeTooLarge):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_report_query",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
