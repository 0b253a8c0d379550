package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/ports"
)

var ErrEmptySeries = errors.New("no data to plot")

// Renderer draws aligned series as PNG line charts.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

func NewRenderer() *Renderer {
	return &Renderer{Width: 8 * vg.Inch, Height: 4 * vg.Inch}
}

var _ ports.ChartRendererPort = (*Renderer)(nil)

func (r *Renderer) RenderLine(title, yLabel string, series domain.AlignedSeries) ([]byte, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(series))
	for i, v := range series.Values() {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("building line for %q: %w", title, err)
	}
	line.Color = color.RGBA{B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	points.Radius = vg.Points(2)
	p.Add(line, points)
	p.NominalX(series.Labels()...)

	writer, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return nil, fmt.Errorf("creating chart writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing chart: %w", err)
	}

	return buf.Bytes(), nil
}
