package usecase

import (
	"fmt"

	"returns-report-service/internal/reports/core/domain"
)

type PointInput struct {
	Date    string
	Metrics map[string]float64
}

type AlignSeriesInput struct {
	From    string // optional, inferred from the points with To
	To      string
	GroupBy string
	Metrics []string // optional, every metric seen on the points
	Points  []PointInput
}

type AlignSeriesResult struct {
	Table   domain.Table
	Skipped int // points whose date could not be parsed
}

type AlignSeriesUseCase struct {
	maxBuckets int
}

// NewAlignSeriesUseCase rejects ranges, given or inferred, spanning more than
// maxBuckets buckets; maxBuckets <= 0 means DefaultMaxBuckets.
func NewAlignSeriesUseCase(maxBuckets int) *AlignSeriesUseCase {
	return &AlignSeriesUseCase{maxBuckets: bucketLimit(maxBuckets)}
}

// Execute aligns arbitrary dated points onto a dense bucket axis. Points with
// unparseable dates are counted and skipped, never rejected.
func (uc *AlignSeriesUseCase) Execute(in AlignSeriesInput) (AlignSeriesResult, error) {
	g, err := parseGranularity(in.GroupBy)
	if err != nil {
		return AlignSeriesResult{}, err
	}

	var res AlignSeriesResult
	points := make([]domain.DataPoint, 0, len(in.Points))
	for _, p := range in.Points {
		d, err := domain.ParseDate(p.Date)
		if err != nil {
			res.Skipped++
		}
		points = append(points, domain.DataPoint{Date: d, Metrics: p.Metrics})
	}

	var r domain.Range
	if in.From == "" && in.To == "" {
		inferred, ok := domain.InferRange(points, g)
		if !ok {
			// nothing to place on an axis; zero buckets
			inferred = domain.Range{Granularity: g}
		}
		r = inferred
	} else {
		// a reversed range is not an error here: it aligns to an empty table
		from, errFrom := domain.ParseDate(in.From)
		to, errTo := domain.ParseDate(in.To)
		if errFrom != nil || errTo != nil {
			return AlignSeriesResult{}, fmt.Errorf("%w: from and to must both be valid dates", ErrInvalidDateRange)
		}
		r = domain.Range{Start: from, End: to, Granularity: g}
	}
	if err := checkBuckets(r, uc.maxBuckets); err != nil {
		return AlignSeriesResult{}, err
	}

	metrics := in.Metrics
	if len(metrics) == 0 {
		metrics = domain.MetricNames(points)
	}

	res.Table = domain.AlignMetrics(points, r, metrics)
	return res, nil
}
