package domain

import (
	"errors"
	"strings"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity is the calendar bucket size used as the x-axis unit of a series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity accepts the English names as well as the labels used by the
// back-office filters ("Dia", "Semana", "Mes", "Anio").
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "dia", "día":
		return GranularityDay, nil
	case "week", "semana":
		return GranularityWeek, nil
	case "month", "mes":
		return GranularityMonth, nil
	case "year", "anio", "año":
		return GranularityYear, nil
	default:
		return "", ErrInvalidGranularity
	}
}

func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return true
	default:
		return false
	}
}
