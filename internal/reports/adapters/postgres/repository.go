package postgres

import (
	"context"
	"fmt"
	"time"

	platformpg "returns-report-service/internal/platform/postgres"
	"returns-report-service/internal/reports/core/domain"
	"returns-report-service/internal/reports/core/ports"

	"github.com/lib/pq"
)

type RowScanner = platformpg.Rows

// DB is the read side of platformpg.DB.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ReportRepository struct {
	db DB
}

func NewReportRepository(db DB) *ReportRepository {
	return &ReportRepository{db: db}
}

var _ ports.ReportReaderPort = (*ReportRepository)(nil)

// One row per returned article. The return total is spread over its articles
// by quantity, and only the first article carries the return count.
const returnLinesSQL = `
SELECT
    r.id::text,
    r.returned_at,
    r.zone,
    COALESCE(i.aisle, ''),
    i.quantity,
    CASE
        WHEN SUM(i.quantity) OVER (PARTITION BY r.id) > 0
        THEN i.quantity::float8 / SUM(i.quantity) OVER (PARTITION BY r.id) * r.total::float8
        ELSE 0
    END AS amount,
    CASE
        WHEN ROW_NUMBER() OVER (PARTITION BY r.id ORDER BY i.position) = 1 THEN 1
        ELSE 0
    END AS returns
FROM returns r
JOIN return_items i ON i.return_id = r.id
WHERE %s
ORDER BY r.returned_at, r.id, i.position`

const assignmentsSQL = `
SELECT a.aisle, p.name
FROM aisle_assignments a
JOIN people p ON p.id = a.person_id
WHERE a.active_from <= $2
  AND (a.active_to IS NULL OR a.active_to >= $1)
ORDER BY a.active_from, a.aisle`

func (r *ReportRepository) ReturnLines(ctx context.Context, f ports.LinesFilter) ([]domain.ReturnLine, error) {
	// the upper bound is exclusive so the whole "to" day is included
	where := "r.returned_at >= $1 AND r.returned_at < $2"
	args := []any{f.From, f.To.AddDate(0, 0, 1)}

	if len(f.Zones) > 0 {
		where += fmt.Sprintf(" AND r.zone = ANY($%d)", len(args)+1)
		args = append(args, pq.Array(f.Zones))
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(returnLinesSQL, where), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.ReturnLine
	for rows.Next() {
		var (
			l   domain.ReturnLine
			day time.Time
		)
		if err := rows.Scan(&l.ReturnID, &day, &l.Zone, &l.Aisle, &l.Pieces, &l.Amount, &l.Returns); err != nil {
			return nil, err
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
	rows, err := r.db.QueryContext(ctx, assignmentsSQL, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.Aisle, &a.Person); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
