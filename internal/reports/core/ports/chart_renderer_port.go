package ports

import "returns-report-service/internal/reports/core/domain"

type ChartRendererPort interface {
	// RenderLine draws one aligned series and returns the encoded PNG.
	RenderLine(title, yLabel string, series domain.AlignedSeries) ([]byte, error)
}
