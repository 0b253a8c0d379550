package usecase_test

import (
	"errors"
	"reflect"
	"testing"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/usecase"
)

func TestAlignSeries_ExplicitRange(t *testing.T) {
	uc := usecase.NewAlignSeriesUseCase(0)

	res, err := uc.Execute(usecase.AlignSeriesInput{
		From:    "2025-01-01",
		To:      "2025-01-03",
		GroupBy: "day",
		Points: []usecase.PointInput{
			{Date: "2025-01-01", Metrics: map[string]float64{"v": 4}},
			{Date: "not-a-date", Metrics: map[string]float64{"v": 99}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Skipped != 1 {
		t.Fatalf("expected 1 skipped point, got %d", res.Skipped)
	}
	if !reflect.DeepEqual(res.Table.Series["v"], []float64{4, 0, 0}) {
		t.Fatalf("unexpected series %v", res.Table.Series)
	}
}

func TestAlignSeries_InferredRangeAndMetrics(t *testing.T) {
	uc := usecase.NewAlignSeriesUseCase(0)

	res, err := uc.Execute(usecase.AlignSeriesInput{
		GroupBy: "week",
		Points: []usecase.PointInput{
			{Date: "2021-01-01", Metrics: map[string]float64{"a": 1}},
			{Date: "2021-01-12", Metrics: map[string]float64{"b": 2}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.BucketKey{"2020-W53", "2021-W01", "2021-W02"}
	if !reflect.DeepEqual(res.Table.Buckets, want) {
		t.Fatalf("expected %v, got %v", want, res.Table.Buckets)
	}
	if !reflect.DeepEqual(res.Table.Series["a"], []float64{1, 0, 0}) || !reflect.DeepEqual(res.Table.Series["b"], []float64{0, 0, 2}) {
		t.Fatalf("unexpected series %v", res.Table.Series)
	}
}

func TestAlignSeries_ReversedRangeIsEmpty(t *testing.T) {
	uc := usecase.NewAlignSeriesUseCase(0)

	res, err := uc.Execute(usecase.AlignSeriesInput{
		From: "2025-02-01", To: "2025-01-01", GroupBy: "day", Metrics: []string{"v"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Table.Buckets) != 0 || len(res.Table.Series["v"]) != 0 {
		t.Fatalf("expected empty table, got %+v", res.Table)
	}
}

func TestAlignSeries_Errors(t *testing.T) {
	uc := usecase.NewAlignSeriesUseCase(0)

	if _, err := uc.Execute(usecase.AlignSeriesInput{GroupBy: "fortnight"}); !errors.Is(err, usecase.ErrInvalidGranularity) {
		t.Fatalf("expected ErrInvalidGranularity, got %v", err)
	}
	if _, err := uc.Execute(usecase.AlignSeriesInput{From: "2025-01-01"}); !errors.Is(err, usecase.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestAlignSeries_RangeTooLarge(t *testing.T) {
	uc := usecase.NewAlignSeriesUseCase(0)

	_, err := uc.Execute(usecase.AlignSeriesInput{
		From: "0001-01-02", To: "9999-12-31", GroupBy: "day", Metrics: []string{"a", "b", "c", "d"},
	})
	if !errors.Is(err, usecase.ErrRangeTooLarge) {
		t.Fatalf("expected ErrRangeTooLarge, got %v", err)
	}

	// the limit applies to inferred ranges too
	_, err = usecase.NewAlignSeriesUseCase(10).Execute(usecase.AlignSeriesInput{
		GroupBy: "day",
		Points: []usecase.PointInput{
			{Date: "2025-01-01", Metrics: map[string]float64{"v": 1}},
			{Date: "2025-01-11", Metrics: map[string]float64{"v": 1}},
		},
	})
	if !errors.Is(err, usecase.ErrRangeTooLarge) {
		t.Fatalf("expected ErrRangeTooLarge for inferred range, got %v", err)
	}

	// the same span by year is small enough
	res, err := uc.Execute(usecase.AlignSeriesInput{
		From: "2001-01-02", To: "2025-12-31", GroupBy: "year", Metrics: []string{"v"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Table.Buckets) != 25 {
		t.Fatalf("expected 25 year buckets, got %d", len(res.Table.Buckets))
	}
}

func TestAlignSeries_ZeroDateIsSkipped(t *testing.T) {
	uc := usecase.NewAlignSeriesUseCase(0)

	res, err := uc.Execute(usecase.AlignSeriesInput{
		From:    "2025-01-01",
		To:      "2025-01-02",
		GroupBy: "day",
		Points: []usecase.PointInput{
			{Date: "0001-01-01", Metrics: map[string]float64{"v": 5}},
			{Date: "2025-01-02", Metrics: map[string]float64{"v": 1}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Skipped != 1 {
		t.Fatalf("expected the 0001-01-01 point to be counted as skipped, got %d", res.Skipped)
	}
	if !reflect.DeepEqual(res.Table.Series["v"], []float64{0, 1}) {
		t.Fatalf("unexpected series %v", res.Table.Series)
	}
}
