package domain

import (
	"sort"
	"strings"
	"time"
)

const (
	MetricAmount  = "amount"
	MetricPieces  = "pieces"
	MetricReturns = "returns"
)

// UnassignedPerson groups detail rows whose aisle has no responsible person.
const UnassignedPerson = "Unassigned"

// ReturnLine is one returned article. Amount is the return total prorated by
// the article's share of pieces; Returns is 1 only on the first line of each
// return so counts add up across lines.
type ReturnLine struct {
	ReturnID string
	Date     time.Time
	Zone     string
	Aisle    string
	Pieces   int64
	Amount   float64
	Returns  int64
}

func (l ReturnLine) DataPoint() DataPoint {
	return DataPoint{
		Date: l.Date,
		Metrics: map[string]float64{
			MetricAmount:  l.Amount,
			MetricPieces:  float64(l.Pieces),
			MetricReturns: float64(l.Returns),
		},
	}
}

// Assignment makes Person responsible for Aisle.
type Assignment struct {
	Aisle  string
	Person string
}

type KPISet struct {
	Amount  bool
	Pieces  bool
	Returns bool
}

func DefaultKPIs() KPISet {
	return KPISet{Amount: true, Pieces: true, Returns: true}
}

func (k KPISet) Any() bool {
	return k.Amount || k.Pieces || k.Returns
}

// Metrics lists the enabled metric names in display order.
func (k KPISet) Metrics() []string {
	var out []string
	if k.Amount {
		out = append(out, MetricAmount)
	}
	if k.Pieces {
		out = append(out, MetricPieces)
	}
	if k.Returns {
		out = append(out, MetricReturns)
	}
	return out
}

type Summary struct {
	AmountTotal  float64
	PiecesTotal  int64
	ReturnsTotal int64
}

type Breakdown struct {
	Summary Summary
	Series  Table
}

type PersonBreakdown struct {
	Summary Summary
	Series  Table
	Detail  []DetailRow
}

type DetailRow struct {
	Date    string
	Zone    string
	Aisle   string
	Person  string
	Returns int64
	Pieces  int64
	Amount  float64
}

type Report struct {
	Range    Range
	KPIs     KPISet
	Summary  Summary
	General  Table
	ByZone   map[string]Breakdown
	ByAisle  map[string]Breakdown
	ByPerson map[string]PersonBreakdown
	Detail   []DetailRow
}

// BuildReport assembles every breakdown from the same lines. All series are
// aligned onto the buckets of r, so the views share one x-axis.
func BuildReport(lines []ReturnLine, assignments []Assignment, r Range, kpis KPISet) Report {
	metrics := kpis.Metrics()
	owners := aisleOwners(assignments)

	rep := Report{
		Range:    r,
		KPIs:     kpis,
		Summary:  summarize(lines, kpis),
		General:  AlignMetrics(dataPoints(lines), r, metrics),
		ByZone:   map[string]Breakdown{},
		ByAisle:  map[string]Breakdown{},
		ByPerson: map[string]PersonBreakdown{},
		Detail:   detailRows(lines, owners),
	}

	for zone, group := range groupLines(lines, func(l ReturnLine) string { return l.Zone }) {
		rep.ByZone[zone] = Breakdown{
			Summary: summarize(group, kpis),
			Series:  AlignMetrics(dataPoints(group), r, metrics),
		}
	}

	for aisle, group := range groupLines(lines, func(l ReturnLine) string { return l.Aisle }) {
		rep.ByAisle[aisle] = Breakdown{
			Summary: summarize(group, kpis),
			Series:  AlignMetrics(dataPoints(group), r, metrics),
		}
	}

	byPerson := groupLines(lines, func(l ReturnLine) string { return owners[strings.TrimSpace(l.Aisle)] })
	for person, group := range byPerson {
		rep.ByPerson[person] = PersonBreakdown{
			Summary: summarize(group, kpis),
			Series:  AlignMetrics(dataPoints(group), r, metrics),
			Detail:  detailRows(group, owners),
		}
	}

	return rep
}

// aisleOwners maps aisle to person; later assignments win.
func aisleOwners(assignments []Assignment) map[string]string {
	out := make(map[string]string, len(assignments))
	for _, a := range assignments {
		aisle := strings.TrimSpace(a.Aisle)
		person := strings.TrimSpace(a.Person)
		if aisle == "" || person == "" {
			continue
		}
		out[aisle] = person
	}
	return out
}

func summarize(lines []ReturnLine, kpis KPISet) Summary {
	var s Summary
	for _, l := range lines {
		if kpis.Amount {
			s.AmountTotal += l.Amount
		}
		if kpis.Pieces {
			s.PiecesTotal += l.Pieces
		}
		if kpis.Returns {
			s.ReturnsTotal += l.Returns
		}
	}
	return s
}

func dataPoints(lines []ReturnLine) []DataPoint {
	out := make([]DataPoint, len(lines))
	for i, l := range lines {
		out[i] = l.DataPoint()
	}
	return out
}

// groupLines splits lines by key; lines with an empty key are dropped.
func groupLines(lines []ReturnLine, key func(ReturnLine) string) map[string][]ReturnLine {
	out := map[string][]ReturnLine{}
	for _, l := range lines {
		k := strings.TrimSpace(key(l))
		if k == "" {
			continue
		}
		out[k] = append(out[k], l)
	}
	return out
}

type detailKey struct {
	date, zone, aisle, person string
}

func detailRows(lines []ReturnLine, owners map[string]string) []DetailRow {
	acc := map[detailKey]*DetailRow{}
	for _, l := range lines {
		if l.Date.IsZero() {
			continue
		}
		aisle := strings.TrimSpace(l.Aisle)
		person, ok := owners[aisle]
		if !ok {
			person = UnassignedPerson
		}
		k := detailKey{
			date:   CalendarDate(l.Date).Format("2006-01-02"),
			zone:   strings.TrimSpace(l.Zone),
			aisle:  aisle,
			person: person,
		}
		row, ok := acc[k]
		if !ok {
			row = &DetailRow{Date: k.date, Zone: k.zone, Aisle: k.aisle, Person: k.person}
			acc[k] = row
		}
		row.Returns += l.Returns
		row.Pieces += l.Pieces
		row.Amount += l.Amount
	}

	out := make([]DetailRow, 0, len(acc))
	for _, row := range acc {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Zone != b.Zone {
			return a.Zone < b.Zone
		}
		if a.Aisle != b.Aisle {
			return a.Aisle < b.Aisle
		}
		return a.Person < b.Person
	})
	return out
}
