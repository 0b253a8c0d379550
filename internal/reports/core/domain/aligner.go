package domain

import (
	"math"
	"time"
)

// DataPoint is one dated observation. A zero Date marks a point whose date
// could not be parsed; such points never contribute to a series.
type DataPoint struct {
	Date    time.Time
	Metrics map[string]float64
}

// Range is the span a series has to cover, inclusive on both ends.
type Range struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

func (r Range) Valid() bool {
	if r.Start.IsZero() || r.End.IsZero() || !r.Granularity.Valid() {
		return false
	}
	return !CalendarDate(r.Start).After(CalendarDate(r.End))
}

type AlignedPoint struct {
	Bucket BucketKey
	Date   time.Time // first day of the bucket
	Value  float64
}

// AlignedSeries holds exactly one point per bucket, ordered ascending.
type AlignedSeries []AlignedPoint

type XYPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

func (s AlignedSeries) Labels() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = string(p.Bucket)
	}
	return out
}

func (s AlignedSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// XY adapts the series to {x, y} pairs keyed by the bucket's first day.
func (s AlignedSeries) XY() []XYPoint {
	out := make([]XYPoint, len(s))
	for i, p := range s {
		out[i] = XYPoint{X: p.Date.Format("2006-01-02"), Y: p.Value}
	}
	return out
}

func (s AlignedSeries) Sum() float64 {
	var total float64
	for _, p := range s {
		total += p.Value
	}
	return total
}

type bucket struct {
	key   BucketKey
	start time.Time
}

func (r Range) buckets() []bucket {
	if !r.Valid() {
		return nil
	}
	last := BucketStart(r.End, r.Granularity)
	out := make([]bucket, 0, r.BucketCount())
	for cur := BucketStart(r.Start, r.Granularity); !cur.After(last); cur = nextBucketStart(cur, r.Granularity) {
		out = append(out, bucket{key: BucketKeyOf(cur, r.Granularity), start: cur})
	}
	return out
}

// BucketCount is the number of buckets r spans, computed without listing
// them. An invalid range spans none.
func (r Range) BucketCount() int {
	if !r.Valid() {
		return 0
	}
	start := BucketStart(r.Start, r.Granularity)
	end := BucketStart(r.End, r.Granularity)
	switch r.Granularity {
	case GranularityWeek:
		return int(daysBetween(start, end)/7) + 1
	case GranularityMonth:
		return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	case GranularityYear:
		return end.Year() - start.Year() + 1
	default:
		return int(daysBetween(start, end)) + 1
	}
}

// daysBetween works on Unix seconds; time.Duration overflows past ~292 years.
func daysBetween(from, to time.Time) int64 {
	return (to.Unix() - from.Unix()) / 86400
}

// EnumerateBuckets lists every bucket from the one containing r.Start to the
// one containing r.End, whether or not data exists for it.
func EnumerateBuckets(r Range) []BucketKey {
	bs := r.buckets()
	out := make([]BucketKey, len(bs))
	for i, b := range bs {
		out[i] = b.key
	}
	return out
}

// axis is the bucket list of a range plus a key index, built once and shared
// by every metric aligned onto it.
type axis struct {
	granularity Granularity
	buckets     []bucket
	index       map[BucketKey]int
}

func newAxis(r Range) axis {
	bs := r.buckets()
	index := make(map[BucketKey]int, len(bs))
	for i, b := range bs {
		index[b.key] = i
	}
	return axis{granularity: r.Granularity, buckets: bs, index: index}
}

// slots maps every point to its bucket position, -1 when the point has no
// valid date or falls outside the axis.
func (a axis) slots(points []DataPoint) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = -1
		if p.Date.IsZero() {
			continue
		}
		if pos, ok := a.index[BucketKeyOf(p.Date, a.granularity)]; ok {
			out[i] = pos
		}
	}
	return out
}

func (a axis) sum(points []DataPoint, slots []int, metric string) []float64 {
	values := make([]float64, len(a.buckets))
	for i, p := range points {
		if slots[i] < 0 {
			continue
		}
		v := p.Metrics[metric]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values[slots[i]] += v
	}
	return values
}

// Align sums metric per bucket of r. Buckets without data are zero, points
// outside r or without a valid date are ignored and a missing metric counts
// as zero. An invalid range yields an empty series.
func Align(points []DataPoint, r Range, metric string) AlignedSeries {
	a := newAxis(r)
	values := a.sum(points, a.slots(points), metric)

	out := make(AlignedSeries, len(a.buckets))
	for i, b := range a.buckets {
		out[i] = AlignedPoint{Bucket: b.key, Date: b.start, Value: values[i]}
	}
	return out
}
