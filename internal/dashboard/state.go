package dashboard

import (
	"errors"
	"time"

	"returns-report-service/internal/reports/core/domain"
)

var (
	ErrInvalidTab = errors.New("invalid tab")
	ErrInvalidKPI = errors.New("invalid kpi")
)

type Tab string

const (
	TabGeneral Tab = "general"
	TabAisles  Tab = "aisles"
	TabPeople  Tab = "people"
	TabZones   Tab = "zones"
	TabDetail  Tab = "detail"
)

var Tabs = []Tab{TabGeneral, TabAisles, TabPeople, TabZones, TabDetail}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidTab
}

func ParseKPI(s string) (string, error) {
	switch s {
	case domain.MetricAmount, domain.MetricPieces, domain.MetricReturns:
		return s, nil
	}
	return "", ErrInvalidKPI
}

type Filters struct {
	From    string
	To      string
	GroupBy domain.Granularity
	Zone    string
}

// ViewState is everything the screen shows besides the report itself.
type ViewState struct {
	Filters Filters
	Tab     Tab
	KPI     string
}

// DefaultViewState covers the current month up to today.
func DefaultViewState(now time.Time) ViewState {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return ViewState{
		Filters: Filters{
			From:    first.Format("2006-01-02"),
			To:      now.Format("2006-01-02"),
			GroupBy: domain.GranularityMonth,
		},
		Tab: TabGeneral,
		KPI: domain.MetricAmount,
	}
}
