package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	reportshttp "returns-report-service/internal/reports/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
)

// APIError is a non-2xx answer from the report API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("report api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("report api: %d %s", e.Status, e.Code)
}

// Client talks to the report API with fiber's HTTP agent.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: timeout,
	}
}

var _ ReportFetcher = (*Client)(nil)

func (c *Client) FetchReport(ctx context.Context, req reportshttp.GenerateReportRequest) (*reportshttp.ReportResponse, error) {
	a := fiber.Post(c.baseURL + "/reports")
	a.JSON(req)

	body, err := c.do(ctx, a)
	if err != nil {
		return nil, err
	}

	var rep reportshttp.ReportResponse
	if err := json.Unmarshal(body, &rep); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &rep, nil
}

// FetchChart downloads the PNG chart of one KPI.
func (c *Client) FetchChart(ctx context.Context, f Filters, kpi string) ([]byte, error) {
	q := url.Values{}
	q.Set("from", f.From)
	q.Set("to", f.To)
	q.Set("group_by", string(f.GroupBy))
	q.Set("kpi", kpi)
	if f.Zone != "" {
		q.Set("zone", f.Zone)
	}

	a := fiber.Get(c.baseURL + "/reports/chart")
	a.QueryString(q.Encode())

	return c.do(ctx, a)
}

func (c *Client) do(ctx context.Context, a *fiber.Agent) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	a.Timeout(timeout)

	if c.token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}

	if err := a.Parse(); err != nil {
		return nil, fmt.Errorf("preparing request: %w", err)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("calling report api: %w", errors.Join(errs...))
	}

	if code < 200 || code >= 300 {
		apiErr := &APIError{Status: code}
		var resp reportshttp.ErrorResponse
		if json.Unmarshal(body, &resp) == nil {
			apiErr.Code = resp.Error
			apiErr.Message = resp.Message
		}
		return nil, apiErr
	}

	return body, nil
}
