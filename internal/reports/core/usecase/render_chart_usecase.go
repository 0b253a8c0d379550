package usecase

import (
	"context"
	"errors"
	"fmt"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/ports"
)

var ErrInvalidKPI = errors.New("invalid kpi")

type RenderChartInput struct {
	From    string
	To      string
	GroupBy string
	KPI     string // amount | pieces | returns
	Zones   []string
}

type ReportGenerator interface {
	Execute(ctx context.Context, in GenerateReportInput) (*domain.Report, error)
}

type RenderChartUseCase struct {
	reports  ReportGenerator
	renderer ports.ChartRendererPort
}

func NewRenderChartUseCase(reports ReportGenerator, renderer ports.ChartRendererPort) *RenderChartUseCase {
	return &RenderChartUseCase{reports: reports, renderer: renderer}
}

// Execute renders the general trend of a single KPI as PNG.
func (uc *RenderChartUseCase) Execute(ctx context.Context, in RenderChartInput) ([]byte, error) {
	var kpis domain.KPISet
	switch in.KPI {
	case domain.MetricAmount, "":
		in.KPI = domain.MetricAmount
		kpis.Amount = true
	case domain.MetricPieces:
		kpis.Pieces = true
	case domain.MetricReturns:
		kpis.Returns = true
	default:
		return nil, ErrInvalidKPI
	}

	report, err := uc.reports.Execute(ctx, GenerateReportInput{
		From:    in.From,
		To:      in.To,
		GroupBy: in.GroupBy,
		KPIs:    &kpis,
		Zones:   in.Zones,
	})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Returns by %s (%s to %s)", report.Range.Granularity,
		report.Range.Start.Format("2006-01-02"), report.Range.End.Format("2006-01-02"))

	png, err := uc.renderer.RenderLine(title, in.KPI, report.General.Column(in.KPI))
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return png, nil
}
