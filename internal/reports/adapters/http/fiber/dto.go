package fiber

import (
	"returns-report-service/internal/reports/core/domain"
)

// KPIsRequest toggles each KPI. Omitted fields count as enabled.
type KPIsRequest struct {
	Amount  *bool `json:"amount"`
	Pieces  *bool `json:"pieces"`
	Returns *bool `json:"returns"`
}

// GenerateReportRequest represents a report query
// @Description Report query DTO
type GenerateReportRequest struct {
	From    string       `json:"from" example:"2025-01-01"`
	To      string       `json:"to" example:"2025-01-31"`
	GroupBy string       `json:"group_by" example:"week"`
	KPIs    *KPIsRequest `json:"kpis"`
	Zone    string       `json:"zone" example:"Z11"`
	Zones   []string     `json:"zones"`
}

type SummaryResponse struct {
	AmountTotal  float64 `json:"amount_total"`
	PiecesTotal  int64   `json:"pieces_total"`
	ReturnsTotal int64   `json:"returns_total"`
}

type TableResponse struct {
	GroupBy string               `json:"group_by"`
	Buckets []string             `json:"buckets"`
	Dates   []string             `json:"dates"`
	Labels  []string             `json:"labels"`
	Series  map[string][]float64 `json:"series"`
}

type BreakdownResponse struct {
	Summary SummaryResponse `json:"summary"`
	Series  TableResponse   `json:"series"`
}

type PersonBreakdownResponse struct {
	Summary SummaryResponse     `json:"summary"`
	Series  TableResponse       `json:"series"`
	Detail  []DetailRowResponse `json:"detail"`
}

type DetailRowResponse struct {
	Date    string  `json:"date"`
	Zone    string  `json:"zone"`
	Aisle   string  `json:"aisle"`
	Person  string  `json:"person"`
	Returns int64   `json:"returns"`
	Pieces  int64   `json:"pieces"`
	Amount  float64 `json:"amount"`
}

type KPIsResponse struct {
	Amount  bool `json:"amount"`
	Pieces  bool `json:"pieces"`
	Returns bool `json:"returns"`
}

type ReportResponse struct {
	From     string                             `json:"from"`
	To       string                             `json:"to"`
	GroupBy  string                             `json:"group_by"`
	KPIs     KPIsResponse                       `json:"kpis"`
	Summary  SummaryResponse                    `json:"summary"`
	General  TableResponse                      `json:"general"`
	ByZone   map[string]BreakdownResponse       `json:"by_zone"`
	ByAisle  map[string]BreakdownResponse       `json:"by_aisle"`
	ByPerson map[string]PersonBreakdownResponse `json:"by_person"`
	Detail   []DetailRowResponse                `json:"detail"`
}

type AlignPointRequest struct {
	Date    string             `json:"date" example:"2025-01-03"`
	Metrics map[string]float64 `json:"metrics"`
}

// AlignSeriesRequest represents dated points to align
// @Description Series alignment DTO
type AlignSeriesRequest struct {
	From    string              `json:"from"`
	To      string              `json:"to"`
	GroupBy string              `json:"group_by" example:"month"`
	Metrics []string            `json:"metrics"`
	Points  []AlignPointRequest `json:"points"`
}

type AlignSeriesResponse struct {
	Table   TableResponse               `json:"table"`
	XY      map[string][]domain.XYPoint `json:"xy"`
	Skipped int                         `json:"skipped"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_report_query"`
	Message string `json:"message" example:"invalid date range"`
}

func toKPISet(req *KPIsRequest) *domain.KPISet {
	if req == nil {
		return nil
	}
	k := domain.DefaultKPIs()
	if req.Amount != nil {
		k.Amount = *req.Amount
	}
	if req.Pieces != nil {
		k.Pieces = *req.Pieces
	}
	if req.Returns != nil {
		k.Returns = *req.Returns
	}
	return &k
}

func toSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		AmountTotal:  s.AmountTotal,
		PiecesTotal:  s.PiecesTotal,
		ReturnsTotal: s.ReturnsTotal,
	}
}

func toTableResponse(t domain.Table) TableResponse {
	resp := TableResponse{
		GroupBy: string(t.Granularity),
		Buckets: make([]string, 0, len(t.Buckets)),
		Dates:   make([]string, 0, len(t.Dates)),
		Labels:  append([]string{}, t.Labels...),
		Series:  make(map[string][]float64, len(t.Series)),
	}
	for _, b := range t.Buckets {
		resp.Buckets = append(resp.Buckets, string(b))
	}
	for _, d := range t.Dates {
		resp.Dates = append(resp.Dates, d.Format("2006-01-02"))
	}
	for name, values := range t.Series {
		resp.Series[name] = values
	}
	return resp
}

func toDetailResponse(rows []domain.DetailRow) []DetailRowResponse {
	out := make([]DetailRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DetailRowResponse{
			Date:    r.Date,
			Zone:    r.Zone,
			Aisle:   r.Aisle,
			Person:  r.Person,
			Returns: r.Returns,
			Pieces:  r.Pieces,
			Amount:  r.Amount,
		})
	}
	return out
}

func toBreakdowns(in map[string]domain.Breakdown) map[string]BreakdownResponse {
	out := make(map[string]BreakdownResponse, len(in))
	for key, b := range in {
		out[key] = BreakdownResponse{
			Summary: toSummaryResponse(b.Summary),
			Series:  toTableResponse(b.Series),
		}
	}
	return out
}

func toReportResponse(rep *domain.Report) ReportResponse {
	resp := ReportResponse{
		From:    rep.Range.Start.Format("2006-01-02"),
		To:      rep.Range.End.Format("2006-01-02"),
		GroupBy: string(rep.Range.Granularity),
		KPIs: KPIsResponse{
			Amount:  rep.KPIs.Amount,
			Pieces:  rep.KPIs.Pieces,
			Returns: rep.KPIs.Returns,
		},
		Summary:  toSummaryResponse(rep.Summary),
		General:  toTableResponse(rep.General),
		ByZone:   toBreakdowns(rep.ByZone),
		ByAisle:  toBreakdowns(rep.ByAisle),
		ByPerson: make(map[string]PersonBreakdownResponse, len(rep.ByPerson)),
		Detail:   toDetailResponse(rep.Detail),
	}
	for person, b := range rep.ByPerson {
		resp.ByPerson[person] = PersonBreakdownResponse{
			Summary: toSummaryResponse(b.Summary),
			Series:  toTableResponse(b.Series),
			Detail:  toDetailResponse(b.Detail),
		}
	}
	return resp
}
