package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// BucketKey identifies one calendar bucket:
//
//	day   -> 2006-01-02
//	week  -> 2006-W01 (ISO-8601 year and week)
//	month -> 2006-01
//	year  -> 2006
type BucketKey string

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CalendarDate drops the time of day and pins the wall-clock date of t to
// midnight UTC. All bucket arithmetic runs on values produced here, so a
// timestamp never changes day because of a zone conversion.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a calendar date from the formats the backend emits. The
// result is never the zero time: 0001-01-01 is rejected because a zero Date
// marks a point without a date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := CalendarDate(t)
		if d.IsZero() {
			return time.Time{}, fmt.Errorf("%w: %q is out of range", ErrInvalidDate, s)
		}
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// BucketStart returns the first calendar day of the bucket containing date.
// Weeks start on Monday.
func BucketStart(date time.Time, g Granularity) time.Time {
	d := CalendarDate(date)
	switch g {
	case GranularityWeek:
		weekday := int(d.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return d.AddDate(0, 0, -(weekday - 1))
	case GranularityMonth:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case GranularityYear:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

// BucketKeyOf maps a date onto its bucket. Unknown granularities bucket by day.
func BucketKeyOf(date time.Time, g Granularity) BucketKey {
	d := CalendarDate(date)
	switch g {
	case GranularityWeek:
		// the ISO year is the one owning the Thursday of the week
		year, week := d.ISOWeek()
		return BucketKey(fmt.Sprintf("%04d-W%02d", year, week))
	case GranularityMonth:
		return BucketKey(fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month())))
	case GranularityYear:
		return BucketKey(fmt.Sprintf("%04d", d.Year()))
	default:
		return BucketKey(d.Format("2006-01-02"))
	}
}

// BucketLabel is the human readable name of the bucket containing date.
func BucketLabel(date time.Time, g Granularity) string {
	start := BucketStart(date, g)
	switch g {
	case GranularityWeek:
		return "Week of " + start.Format("2006-01-02")
	case GranularityMonth:
		return start.Format("January 2006")
	case GranularityYear:
		return start.Format("2006")
	default:
		return start.Format("2006-01-02")
	}
}

func nextBucketStart(start time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		return start.AddDate(0, 0, 7)
	case GranularityMonth:
		return start.AddDate(0, 1, 0)
	case GranularityYear:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}
