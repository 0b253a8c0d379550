package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/ports"

	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidGranularity = errors.New("invalid group_by value")
	ErrNoKPISelected      = errors.New("at least one kpi must be selected")
	ErrRangeTooLarge      = errors.New("date range spans too many buckets")
)

// DefaultMaxBuckets is the bucket cap used when none is configured. By day it
// covers a little over two and a half years.
const DefaultMaxBuckets = 1000

type GenerateReportInput struct {
	From    string // YYYY-MM-DD
	To      string // YYYY-MM-DD
	GroupBy string // day | week | month | year, "" -> month

	KPIs  *domain.KPISet // nil -> all
	Zones []string
}

type GenerateReportUseCase struct {
	reader     ports.ReportReaderPort
	maxBuckets int
}

// NewGenerateReportUseCase rejects queries spanning more than maxBuckets
// buckets; maxBuckets <= 0 means DefaultMaxBuckets.
func NewGenerateReportUseCase(reader ports.ReportReaderPort, maxBuckets int) *GenerateReportUseCase {
	return &GenerateReportUseCase{reader: reader, maxBuckets: bucketLimit(maxBuckets)}
}

// Execute validates the filters, loads return lines and aisle assignments in
// parallel and assembles the report.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, in GenerateReportInput) (*domain.Report, error) {
	r, err := parseRange(in.From, in.To, in.GroupBy)
	if err != nil {
		return nil, err
	}
	if err := checkBuckets(r, uc.maxBuckets); err != nil {
		return nil, err
	}

	kpis := domain.DefaultKPIs()
	if in.KPIs != nil {
		kpis = *in.KPIs
	}
	if !kpis.Any() {
		return nil, ErrNoKPISelected
	}

	var (
		lines       []domain.ReturnLine
		assignments []domain.Assignment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lines, err = uc.reader.ReturnLines(gctx, ports.LinesFilter{
			From:  r.Start,
			To:    r.End,
			Zones: cleanZones(in.Zones),
		})
		if err != nil {
			return fmt.Errorf("loading return lines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		assignments, err = uc.reader.Assignments(gctx, r.Start, r.End)
		if err != nil {
			return fmt.Errorf("loading aisle assignments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := domain.BuildReport(lines, assignments, r, kpis)
	return &report, nil
}

func parseRange(fromStr, toStr, groupBy string) (domain.Range, error) {
	if fromStr == "" || toStr == "" {
		return domain.Range{}, fmt.Errorf("%w: from and to are required", ErrInvalidDateRange)
	}
	from, err := domain.ParseDate(fromStr)
	if err != nil {
		return domain.Range{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	to, err := domain.ParseDate(toStr)
	if err != nil {
		return domain.Range{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if from.After(to) {
		return domain.Range{}, fmt.Errorf("%w: from must not be after to", ErrInvalidDateRange)
	}

	g, err := parseGranularity(groupBy)
	if err != nil {
		return domain.Range{}, err
	}

	return domain.Range{Start: from, End: to, Granularity: g}, nil
}

func parseGranularity(groupBy string) (domain.Granularity, error) {
	if strings.TrimSpace(groupBy) == "" {
		return domain.GranularityMonth, nil
	}
	g, err := domain.ParseGranularity(groupBy)
	if err != nil {
		return "", ErrInvalidGranularity
	}
	return g, nil
}

func bucketLimit(n int) int {
	if n <= 0 {
		return DefaultMaxBuckets
	}
	return n
}

func checkBuckets(r domain.Range, max int) error {
	if n := r.BucketCount(); n > max {
		return fmt.Errorf("%w: %d %s buckets, at most %d allowed", ErrRangeTooLarge, n, r.Granularity, max)
	}
	return nil
}

func cleanZones(zones []string) []string {
	var out []string
	for _, z := range zones {
		if z = strings.TrimSpace(z); z != "" {
			out = append(out, z)
		}
	}
	return out
}
