package dashboard

import (
	"context"
	"errors"
	"sync"

	reportshttp "returns-report-service/internal/reports/adapters/http/fiber"
	"returns-report-service/internal/reports/core/domain"

	"golang.org/x/sync/semaphore"
)

// ErrRefreshInFlight is returned when a refresh starts while another one is
// still waiting for the server. The new request is dropped, not queued.
var ErrRefreshInFlight = errors.New("report refresh already in flight")

type ReportFetcher interface {
	FetchReport(ctx context.Context, req reportshttp.GenerateReportRequest) (*reportshttp.ReportResponse, error)
}

// Observer is notified after every successful refresh and every tab or KPI
// change, in subscription order.
type Observer interface {
	ReportUpdated(state ViewState, report *reportshttp.ReportResponse)
}

type ObserverFunc func(state ViewState, report *reportshttp.ReportResponse)

func (f ObserverFunc) ReportUpdated(state ViewState, report *reportshttp.ReportResponse) {
	f(state, report)
}

type Controller struct {
	fetcher  ReportFetcher
	inFlight *semaphore.Weighted

	mu        sync.Mutex
	state     ViewState
	report    *reportshttp.ReportResponse
	observers []Observer
}

func NewController(fetcher ReportFetcher, initial ViewState) *Controller {
	return &Controller{
		fetcher:  fetcher,
		inFlight: semaphore.NewWeighted(1),
		state:    initial,
	}
}

func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Report returns the last report fetched, or nil before the first refresh.
func (c *Controller) Report() *reportshttp.ReportResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report
}

func (c *Controller) Subscribe(o Observer) {
	c.mu.Lock()
	c.observers = append(c.observers, o)
	c.mu.Unlock()
}

// Refresh fetches the report for the current filters. Only one refresh runs
// at a time; a concurrent call fails fast with ErrRefreshInFlight.
func (c *Controller) Refresh(ctx context.Context) error {
	if !c.inFlight.TryAcquire(1) {
		return ErrRefreshInFlight
	}
	defer c.inFlight.Release(1)

	state := c.State()
	req := reportshttp.GenerateReportRequest{
		From:    state.Filters.From,
		To:      state.Filters.To,
		GroupBy: string(state.Filters.GroupBy),
		Zone:    state.Filters.Zone,
	}

	rep, err := c.fetcher.FetchReport(ctx, req)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.report = rep
	c.mu.Unlock()

	c.notify()
	return nil
}

// SetGroupBy changes the bucket size and refreshes. Setting the current
// value again does nothing.
func (c *Controller) SetGroupBy(ctx context.Context, groupBy string) error {
	g, err := domain.ParseGranularity(groupBy)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.state.Filters.GroupBy == g {
		c.mu.Unlock()
		return nil
	}
	c.state.Filters.GroupBy = g
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetFilters replaces the date range and zone, then refreshes.
func (c *Controller) SetFilters(ctx context.Context, f Filters) error {
	if f.GroupBy == "" {
		f.GroupBy = c.State().Filters.GroupBy
	}
	if !f.GroupBy.Valid() {
		return domain.ErrInvalidGranularity
	}

	c.mu.Lock()
	c.state.Filters = f
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// SetTab switches the visible view over the report already loaded.
func (c *Controller) SetTab(tab string) error {
	t, err := ParseTab(tab)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Tab = t
	c.mu.Unlock()

	c.notify()
	return nil
}

func (c *Controller) SetKPI(kpi string) error {
	k, err := ParseKPI(kpi)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.KPI = k
	c.mu.Unlock()

	c.notify()
	return nil
}

func (c *Controller) notify() {
	c.mu.Lock()
	state, rep := c.state, c.report
	observers := append([]Observer(nil), c.observers...)
	c.mu.Unlock()

	for _, o := range observers {
		o.ReportUpdated(state, rep)
	}
}
