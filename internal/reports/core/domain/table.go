package domain

import (
	"sort"
	"time"
)

// Table is a set of metrics aligned onto one shared bucket axis.
type Table struct {
	Granularity Granularity
	Buckets     []BucketKey
	Dates       []time.Time
	Labels      []string
	Series      map[string][]float64
}

// AlignMetrics aligns every metric in metrics over the same buckets.
func AlignMetrics(points []DataPoint, r Range, metrics []string) Table {
	t := Table{
		Granularity: r.Granularity,
		Buckets:     []BucketKey{},
		Dates:       []time.Time{},
		Labels:      []string{},
		Series:      make(map[string][]float64, len(metrics)),
	}

	a := newAxis(r)
	for _, b := range a.buckets {
		t.Buckets = append(t.Buckets, b.key)
		t.Dates = append(t.Dates, b.start)
		t.Labels = append(t.Labels, BucketLabel(b.start, r.Granularity))
	}

	slots := a.slots(points)
	for _, m := range metrics {
		t.Series[m] = a.sum(points, slots, m)
	}

	return t
}

// Column rebuilds the aligned series of one metric. Unknown metrics come back
// as zeros over the table's buckets.
func (t Table) Column(metric string) AlignedSeries {
	values := t.Series[metric]
	out := make(AlignedSeries, len(t.Buckets))
	for i, key := range t.Buckets {
		out[i] = AlignedPoint{Bucket: key, Date: t.Dates[i]}
		if i < len(values) {
			out[i].Value = values[i]
		}
	}
	return out
}

// MetricNames returns the metric names found on points, sorted.
func MetricNames(points []DataPoint) []string {
	seen := map[string]struct{}{}
	for _, p := range points {
		for name := range p.Metrics {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// InferRange spans the earliest to the latest valid point date. ok is false
// when no point carries a valid date.
func InferRange(points []DataPoint, g Granularity) (r Range, ok bool) {
	for _, p := range points {
		if p.Date.IsZero() {
			continue
		}
		d := CalendarDate(p.Date)
		if !ok {
			r = Range{Start: d, End: d, Granularity: g}
			ok = true
			continue
		}
		if d.Before(r.Start) {
			r.Start = d
		}
		if d.After(r.End) {
			r.End = d
		}
	}
	return r, ok
}
