package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/ports"
	"returns-report-service/internal/reports/core/usecase"
)

// Fake reader implementing ReportReaderPort
type fakeReportReader struct {
	LinesFn       func(ctx context.Context, f ports.LinesFilter) ([]domain.ReturnLine, error)
	AssignmentsFn func(ctx context.Context, from, to time.Time) ([]domain.Assignment, error)

	mu         sync.Mutex
	lastFilter ports.LinesFilter
	calls      int
}

func (f *fakeReportReader) ReturnLines(ctx context.Context, filter ports.LinesFilter) ([]domain.ReturnLine, error) {
	f.mu.Lock()
	f.lastFilter = filter
	f.calls++
	f.mu.Unlock()
	if f.LinesFn != nil {
		return f.LinesFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeReportReader) Assignments(ctx context.Context, from, to time.Time) ([]domain.Assignment, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.AssignmentsFn != nil {
		return f.AssignmentsFn(ctx, from, to)
	}
	return nil, nil
}

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestGenerateReport_Success(t *testing.T) {
	reader := &fakeReportReader{
		LinesFn: func(ctx context.Context, f ports.LinesFilter) ([]domain.ReturnLine, error) {
			return []domain.ReturnLine{
				{ReturnID: "r1", Date: day("2025-01-01"), Zone: "Z11", Aisle: "A1", Pieces: 3, Amount: 30, Returns: 1},
				{ReturnID: "r2", Date: day("2025-01-03"), Zone: "Z11", Aisle: "A1", Pieces: 1, Amount: 10, Returns: 1},
			}, nil
		},
		AssignmentsFn: func(ctx context.Context, from, to time.Time) ([]domain.Assignment, error) {
			return []domain.Assignment{{Aisle: "A1", Person: "Ana"}}, nil
		},
	}

	uc := usecase.NewGenerateReportUseCase(reader, 0)

	rep, err := uc.Execute(context.Background(), usecase.GenerateReportInput{
		From:    "2025-01-01",
		To:      "2025-01-03",
		GroupBy: "Dia",
		Zones:   []string{" Z11 ", ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reader.calls != 2 {
		t.Fatalf("expected both reader methods to be called, got %d calls", reader.calls)
	}
	if !reflect.DeepEqual(reader.lastFilter.Zones, []string{"Z11"}) {
		t.Fatalf("expected cleaned zones [Z11], got %v", reader.lastFilter.Zones)
	}
	if !reader.lastFilter.From.Equal(day("2025-01-01")) || !reader.lastFilter.To.Equal(day("2025-01-03")) {
		t.Fatalf("unexpected filter dates %v..%v", reader.lastFilter.From, reader.lastFilter.To)
	}

	if got := rep.General.Series[domain.MetricAmount]; !reflect.DeepEqual(got, []float64{30, 0, 10}) {
		t.Fatalf("expected gap-filled amounts [30 0 10], got %v", got)
	}
	if rep.ByPerson["Ana"].Summary.PiecesTotal != 4 {
		t.Fatalf("unexpected person summary %+v", rep.ByPerson["Ana"].Summary)
	}
}

func TestGenerateReport_DefaultsToMonth(t *testing.T) {
	uc := usecase.NewGenerateReportUseCase(&fakeReportReader{}, 0)

	rep, err := uc.Execute(context.Background(), usecase.GenerateReportInput{From: "2025-01-15", To: "2025-03-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Range.Granularity != domain.GranularityMonth {
		t.Fatalf("expected month granularity, got %s", rep.Range.Granularity)
	}
	if len(rep.General.Buckets) != 3 {
		t.Fatalf("expected 3 month buckets, got %v", rep.General.Buckets)
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGenerateReport_ValidationErrors(t *testing.T) {
	none := domain.KPISet{}

	tests := []struct {
		name string
		in   usecase.GenerateReportInput
		want error
	}{
		{"missing_from", usecase.GenerateReportInput{To: "2025-01-01"}, usecase.ErrInvalidDateRange},
		{"bad_date", usecase.GenerateReportInput{From: "yesterday", To: "2025-01-01"}, usecase.ErrInvalidDateRange},
		{"reversed", usecase.GenerateReportInput{From: "2025-02-01", To: "2025-01-01"}, usecase.ErrInvalidDateRange},
		{"bad_group_by", usecase.GenerateReportInput{From: "2025-01-01", To: "2025-01-02", GroupBy: "hour"}, usecase.ErrInvalidGranularity},
		{"no_kpis", usecase.GenerateReportInput{From: "2025-01-01", To: "2025-01-02", KPIs: &none}, usecase.ErrNoKPISelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeReportReader{}
			uc := usecase.NewGenerateReportUseCase(reader, 0)

			_, err := uc.Execute(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if reader.calls != 0 {
				t.Fatalf("reader should not be called on invalid input")
			}
		})
	}
}

func TestGenerateReport_RangeTooLarge(t *testing.T) {
	reader := &fakeReportReader{}

	_, err := usecase.NewGenerateReportUseCase(reader, 0).Execute(context.Background(), usecase.GenerateReportInput{
		From: "0001-01-02", To: "9999-12-31", GroupBy: "day",
	})
	if !errors.Is(err, usecase.ErrRangeTooLarge) {
		t.Fatalf("expected ErrRangeTooLarge, got %v", err)
	}

	limited := usecase.NewGenerateReportUseCase(reader, 3)
	if _, err := limited.Execute(context.Background(), usecase.GenerateReportInput{
		From: "2025-01-01", To: "2025-04-01", GroupBy: "month",
	}); !errors.Is(err, usecase.ErrRangeTooLarge) {
		t.Fatalf("expected ErrRangeTooLarge for 4 months with a limit of 3, got %v", err)
	}
	if reader.calls != 0 {
		t.Fatalf("reader should not be called for an oversized range")
	}

	if _, err := limited.Execute(context.Background(), usecase.GenerateReportInput{
		From: "2025-01-01", To: "2025-03-31", GroupBy: "month",
	}); err != nil {
		t.Fatalf("unexpected error at the limit: %v", err)
	}
}

// ------------------------------------------------------------
// READER ERROR
// ------------------------------------------------------------

func TestGenerateReport_ReaderError(t *testing.T) {
	dbErr := errors.New("db down")
	reader := &fakeReportReader{
		AssignmentsFn: func(ctx context.Context, from, to time.Time) ([]domain.Assignment, error) {
			return nil, dbErr
		},
	}

	uc := usecase.NewGenerateReportUseCase(reader, 0)

	_, err := uc.Execute(context.Background(), usecase.GenerateReportInput{From: "2025-01-01", To: "2025-01-02"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
