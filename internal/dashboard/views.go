package dashboard

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	reportshttp "returns-report-service/internal/reports/adapters/http/fiber"
	"returns-report-service/internal/reports/core/domain"
)

// Render writes the view selected by state.Tab as aligned text columns.
func Render(w io.Writer, state ViewState, rep *reportshttp.ReportResponse) error {
	if rep == nil {
		_, err := fmt.Fprintln(w, "no report loaded")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	switch state.Tab {
	case TabGeneral, "":
		renderGeneral(tw, state, rep)
	case TabAisles:
		renderBreakdowns(tw, "AISLE", rep.ByAisle)
	case TabZones:
		renderBreakdowns(tw, "ZONE", rep.ByZone)
	case TabPeople:
		renderPeople(tw, rep)
	case TabDetail:
		renderDetail(tw, rep.Detail)
	default:
		return ErrInvalidTab
	}

	return tw.Flush()
}

func renderGeneral(w io.Writer, state ViewState, rep *reportshttp.ReportResponse) {
	fmt.Fprintf(w, "Returns %s to %s by %s\n", rep.From, rep.To, rep.GroupBy)
	fmt.Fprintf(w, "Amount\t%.2f\n", rep.Summary.AmountTotal)
	fmt.Fprintf(w, "Pieces\t%d\n", rep.Summary.PiecesTotal)
	fmt.Fprintf(w, "Returns\t%d\n\n", rep.Summary.ReturnsTotal)

	values := rep.General.Series[state.KPI]
	fmt.Fprintf(w, "PERIOD\t%s\n", kpiTitle(state.KPI))
	for i, label := range rep.General.Labels {
		var v float64
		if i < len(values) {
			v = values[i]
		}
		fmt.Fprintf(w, "%s\t%s\n", label, formatValue(state.KPI, v))
	}
}

func renderBreakdowns(w io.Writer, title string, groups map[string]reportshttp.BreakdownResponse) {
	fmt.Fprintf(w, "%s\tRETURNS\tPIECES\tAMOUNT\n", title)
	for _, key := range sortedKeys(groups) {
		s := groups[key].Summary
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\n", key, s.ReturnsTotal, s.PiecesTotal, s.AmountTotal)
	}
}

func renderPeople(w io.Writer, rep *reportshttp.ReportResponse) {
	fmt.Fprintln(w, "PERSON\tRETURNS\tPIECES\tAMOUNT\tAISLES")
	for _, person := range sortedKeys(rep.ByPerson) {
		b := rep.ByPerson[person]
		aisles := map[string]struct{}{}
		for _, row := range b.Detail {
			aisles[row.Aisle] = struct{}{}
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%d\n",
			person, b.Summary.ReturnsTotal, b.Summary.PiecesTotal, b.Summary.AmountTotal, len(aisles))
	}
}

func renderDetail(w io.Writer, rows []reportshttp.DetailRowResponse) {
	fmt.Fprintln(w, "DATE\tZONE\tAISLE\tPERSON\tRETURNS\tPIECES\tAMOUNT")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.2f\n",
			r.Date, r.Zone, r.Aisle, r.Person, r.Returns, r.Pieces, r.Amount)
	}
}

func kpiTitle(kpi string) string {
	switch kpi {
	case domain.MetricPieces:
		return "PIECES"
	case domain.MetricReturns:
		return "RETURNS"
	default:
		return "AMOUNT"
	}
}

func formatValue(kpi string, v float64) string {
	if kpi == domain.MetricAmount || kpi == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.0f", v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
