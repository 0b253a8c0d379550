package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/ports"
)

// schema mirrors the Postgres read model as one denormalized row per
// returned article. Aisle assignments stay in Postgres.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS return_lines (
    return_id   String,
    returned_at Date,
    zone        LowCardinality(String),
    aisle       LowCardinality(String),
    pieces      Int64,
    amount      Float64,
    returns     Int64
) ENGINE = MergeTree
ORDER BY (returned_at, return_id)`,
}

const returnLinesSQL = `
SELECT return_id, returned_at, zone, aisle, pieces, amount, returns
FROM return_lines
WHERE %s
ORDER BY returned_at, return_id`

// Mutations are applied synchronously so a following insert never races
// the delete.
const deleteLinesSQL = `
ALTER TABLE return_lines
DELETE WHERE returned_at >= toDate(?) AND returned_at < toDate(?)
SETTINGS mutations_sync = 1`

const insertLinesSQL = `
INSERT INTO return_lines (return_id, returned_at, zone, aisle, pieces, amount, returns)`

type ReportRepository struct {
	conn        Conn
	assignments ports.AssignmentReader
}

// NewReportRepository reads return lines from ClickHouse and delegates aisle
// assignments to the given reader.
func NewReportRepository(conn Conn, assignments ports.AssignmentReader) *ReportRepository {
	return &ReportRepository{conn: conn, assignments: assignments}
}

var (
	_ ports.ReportReaderPort = (*ReportRepository)(nil)
	_ ports.LineWriterPort   = (*ReportRepository)(nil)
)

func EnsureSchema(ctx context.Context, conn Conn) error {
	for i, stmt := range schema {
		if err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying clickhouse schema %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *ReportRepository) ReturnLines(ctx context.Context, f ports.LinesFilter) ([]domain.ReturnLine, error) {
	where := "returned_at >= toDate(?) AND returned_at < toDate(?)"
	args := []any{formatDay(f.From), formatDay(f.To.AddDate(0, 0, 1))}

	if len(f.Zones) > 0 {
		marks := make([]string, len(f.Zones))
		for i, z := range f.Zones {
			marks[i] = "?"
			args = append(args, z)
		}
		where += " AND zone IN (" + strings.Join(marks, ", ") + ")"
	}

	rows, err := r.conn.Query(ctx, fmt.Sprintf(returnLinesSQL, where), args...)
	if err != nil {
		return nil, fmt.Errorf("querying return lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.ReturnLine
	for rows.Next() {
		var (
			l   domain.ReturnLine
			day time.Time
		)
		if err := rows.Scan(&l.ReturnID, &day, &l.Zone, &l.Aisle, &l.Pieces, &l.Amount, &l.Returns); err != nil {
			return nil, fmt.Errorf("scanning return line: %w", err)
		}
		l.Date = domain.CalendarDate(day)
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *ReportRepository) Assignments(ctx context.Context, from, to time.Time) ([]domain.Assignment, error) {
	return r.assignments.Assignments(ctx, from, to)
}

// ReplaceLines swaps the lines of [from, to] for lines.
func (r *ReportRepository) ReplaceLines(ctx context.Context, from, to time.Time, lines []domain.ReturnLine) error {
	if err := r.conn.Exec(ctx, deleteLinesSQL, formatDay(from), formatDay(to.AddDate(0, 0, 1))); err != nil {
		return fmt.Errorf("clearing return lines: %w", err)
	}
	if len(lines) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertLinesSQL)
	if err != nil {
		return fmt.Errorf("preparing return lines batch: %w", err)
	}

	for _, l := range lines {
		if err := batch.Append(
			l.ReturnID,
			domain.CalendarDate(l.Date),
			l.Zone,
			l.Aisle,
			l.Pieces,
			l.Amount,
			l.Returns,
		); err != nil {
			batch.Abort()
			return fmt.Errorf("appending return line %s: %w", l.ReturnID, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("sending return lines: %w", err)
	}
	return nil
}

func formatDay(t time.Time) string {
	return domain.CalendarDate(t).Format("2006-01-02")
}
