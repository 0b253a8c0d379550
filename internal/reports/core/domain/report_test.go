package domain_test

import (
	"reflect"
	"testing"

	"returns-report-service/internal/reports/core/domain"
)

func sampleLines(t *testing.T) []domain.ReturnLine {
	return []domain.ReturnLine{
		{ReturnID: "r1", Date: date(t, "2025-01-03"), Zone: "Z11", Aisle: "A1", Pieces: 2, Amount: 40, Returns: 1},
		{ReturnID: "r1", Date: date(t, "2025-01-03"), Zone: "Z11", Aisle: "A2", Pieces: 1, Amount: 20, Returns: 0},
		{ReturnID: "r2", Date: date(t, "2025-02-10"), Zone: "Z12", Aisle: "A1", Pieces: 5, Amount: 100, Returns: 1},
		{ReturnID: "r3", Date: date(t, "2025-02-11"), Zone: "", Aisle: "", Pieces: 1, Amount: 5, Returns: 1},
	}
}

func TestBuildReport_Summary(t *testing.T) {
	r := domain.Range{Start: date(t, "2025-01-01"), End: date(t, "2025-03-31"), Granularity: domain.GranularityMonth}

	rep := domain.BuildReport(sampleLines(t), nil, r, domain.DefaultKPIs())

	want := domain.Summary{AmountTotal: 165, PiecesTotal: 9, ReturnsTotal: 3}
	if rep.Summary != want {
		t.Fatalf("expected %+v, got %+v", want, rep.Summary)
	}
}

func TestBuildReport_DisabledKPIs(t *testing.T) {
	r := domain.Range{Start: date(t, "2025-01-01"), End: date(t, "2025-03-31"), Granularity: domain.GranularityMonth}

	rep := domain.BuildReport(sampleLines(t), nil, r, domain.KPISet{Pieces: true})

	if rep.Summary.AmountTotal != 0 || rep.Summary.ReturnsTotal != 0 || rep.Summary.PiecesTotal != 9 {
		t.Fatalf("unexpected summary %+v", rep.Summary)
	}
	if _, ok := rep.General.Series[domain.MetricAmount]; ok {
		t.Fatalf("amount series should not be present")
	}
	if !reflect.DeepEqual(rep.General.Series[domain.MetricPieces], []float64{3, 6, 0}) {
		t.Fatalf("unexpected pieces series %v", rep.General.Series[domain.MetricPieces])
	}
}

func TestBuildReport_BreakdownsShareAxis(t *testing.T) {
	r := domain.Range{Start: date(t, "2025-01-01"), End: date(t, "2025-03-31"), Granularity: domain.GranularityMonth}

	rep := domain.BuildReport(sampleLines(t), nil, r, domain.DefaultKPIs())

	if len(rep.ByZone) != 2 {
		t.Fatalf("expected zones Z11 and Z12 only, got %v", rep.ByZone)
	}
	z11 := rep.ByZone["Z11"]
	if !reflect.DeepEqual(z11.Series.Buckets, rep.General.Buckets) {
		t.Fatalf("zone series must use the general buckets")
	}
	if !reflect.DeepEqual(z11.Series.Series[domain.MetricAmount], []float64{60, 0, 0}) {
		t.Fatalf("unexpected Z11 amounts %v", z11.Series.Series[domain.MetricAmount])
	}

	a1 := rep.ByAisle["A1"]
	if a1.Summary.PiecesTotal != 7 || a1.Summary.ReturnsTotal != 2 {
		t.Fatalf("unexpected A1 summary %+v", a1.Summary)
	}
	if _, ok := rep.ByAisle[""]; ok {
		t.Fatalf("empty aisle must not be grouped")
	}
}

func TestBuildReport_ByPersonAndDetail(t *testing.T) {
	r := domain.Range{Start: date(t, "2025-01-01"), End: date(t, "2025-03-31"), Granularity: domain.GranularityMonth}
	assignments := []domain.Assignment{
		{Aisle: "A1", Person: "Ana"},
		{Aisle: "A2", Person: "Luis"},
		{Aisle: "A2", Person: " Marta "},
	}

	rep := domain.BuildReport(sampleLines(t), assignments, r, domain.DefaultKPIs())

	if len(rep.ByPerson) != 2 {
		t.Fatalf("expected Ana and Marta, got %v", rep.ByPerson)
	}
	if rep.ByPerson["Marta"].Summary.AmountTotal != 20 {
		t.Fatalf("later assignment should win, got %+v", rep.ByPerson["Marta"].Summary)
	}
	if len(rep.ByPerson["Ana"].Detail) != 2 {
		t.Fatalf("expected 2 detail rows for Ana, got %v", rep.ByPerson["Ana"].Detail)
	}

	want := []domain.DetailRow{
		{Date: "2025-01-03", Zone: "Z11", Aisle: "A1", Person: "Ana", Returns: 1, Pieces: 2, Amount: 40},
		{Date: "2025-01-03", Zone: "Z11", Aisle: "A2", Person: "Marta", Returns: 0, Pieces: 1, Amount: 20},
		{Date: "2025-02-10", Zone: "Z12", Aisle: "A1", Person: "Ana", Returns: 1, Pieces: 5, Amount: 100},
		{Date: "2025-02-11", Zone: "", Aisle: "", Person: domain.UnassignedPerson, Returns: 1, Pieces: 1, Amount: 5},
	}
	if !reflect.DeepEqual(rep.Detail, want) {
		t.Fatalf("unexpected detail\nwant %+v\ngot  %+v", want, rep.Detail)
	}
}

func TestBuildReport_NoLines(t *testing.T) {
	r := domain.Range{Start: date(t, "2025-01-01"), End: date(t, "2025-01-07"), Granularity: domain.GranularityDay}

	rep := domain.BuildReport(nil, nil, r, domain.DefaultKPIs())

	if len(rep.General.Buckets) != 7 {
		t.Fatalf("expected 7 zero buckets, got %d", len(rep.General.Buckets))
	}
	for m, values := range rep.General.Series {
		for _, v := range values {
			if v != 0 {
				t.Fatalf("%s: expected zeros, got %v", m, values)
			}
		}
	}
	if rep.Detail == nil || len(rep.Detail) != 0 {
		t.Fatalf("expected empty detail, got %v", rep.Detail)
	}
}
