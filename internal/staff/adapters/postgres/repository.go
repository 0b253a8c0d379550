package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	platformpg "returns-report-service/internal/platform/postgres"
	"returns-report-service/internal/staff/core/domain"
	"returns-report-service/internal/staff/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type StaffRepository struct {
	db platformpg.Querier
}

func NewStaffRepository(db platformpg.Querier) *StaffRepository {
	return &StaffRepository{db: db}
}

var _ ports.StaffRepositoryPort = (*StaffRepository)(nil)

const insertPersonSQL = `
INSERT INTO people (id, name, active)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO NOTHING;
`

const selectPeopleSQL = `SELECT id::text, name, active FROM people`

const deactivatePersonSQL = `UPDATE people SET active = FALSE WHERE id = $1;`

const insertAssignmentSQL = `
INSERT INTO aisle_assignments (id, aisle, person_id, active_from, active_to)
VALUES ($1, $2, $3, $4, $5);
`

const updateAssignmentSQL = `
UPDATE aisle_assignments SET
    aisle = $2, person_id = $3, active_from = $4, active_to = $5
WHERE id = $1;
`

const selectAssignmentsSQL = `
SELECT a.id::text, a.aisle, a.person_id::text, p.name, a.active_from, a.active_to
FROM aisle_assignments a
JOIN people p ON p.id = a.person_id
%s
ORDER BY a.active_from DESC, a.aisle`

func (r *StaffRepository) InsertPerson(ctx context.Context, p *domain.Person) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertPersonSQL, p.ID.String(), p.Name, p.Active)
	if err != nil {
		return false, fmt.Errorf("inserting person %q: %w", p.Name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *StaffRepository) ListPeople(ctx context.Context, activeOnly bool) ([]domain.Person, error) {
	query := selectPeopleSQL
	if activeOnly {
		query += " WHERE active"
	}
	return r.queryPeople(ctx, query+" ORDER BY name")
}

func (r *StaffRepository) FindPersonByName(ctx context.Context, name string) (*domain.Person, error) {
	out, err := r.queryPeople(ctx, selectPeopleSQL+" WHERE name = $1", name)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r *StaffRepository) queryPeople(ctx context.Context, query string, args ...any) ([]domain.Person, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer rows.Close()

	var out []domain.Person
	for rows.Next() {
		var (
			p  domain.Person
			id string
		)
		if err := rows.Scan(&id, &p.Name, &p.Active); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("reading person id %q: %w", id, err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StaffRepository) DeactivatePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, deactivatePersonSQL, id.String())
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *StaffRepository) InsertAssignment(ctx context.Context, a *domain.Assignment) error {
	_, err := r.db.ExecContext(ctx, insertAssignmentSQL, assignmentArgs(a)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAssignmentExists
		}
		return fmt.Errorf("inserting assignment for aisle %s: %w", a.Aisle, err)
	}
	return nil
}

func (r *StaffRepository) UpdateAssignment(ctx context.Context, a *domain.Assignment) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateAssignmentSQL, assignmentArgs(a)...)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrAssignmentExists
		}
		return false, fmt.Errorf("updating assignment %s: %w", a.ID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *StaffRepository) ListAssignments(ctx context.Context, activeOn time.Time) ([]domain.Assignment, error) {
	where := ""
	var args []any
	if !activeOn.IsZero() {
		where = "WHERE a.active_from <= $1 AND (a.active_to IS NULL OR a.active_to >= $1)"
		args = append(args, activeOn)
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(selectAssignmentsSQL, where), args...)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var (
			a            domain.Assignment
			id, personID string
			from         time.Time
			to           sql.NullTime
		)
		if err := rows.Scan(&id, &a.Aisle, &personID, &a.PersonName, &from, &to); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("reading assignment id %q: %w", id, err)
		}
		if a.PersonID, err = uuid.Parse(personID); err != nil {
			return nil, fmt.Errorf("reading person id %q: %w", personID, err)
		}
		a.ActiveFrom = calendarDay(from)
		if to.Valid {
			d := calendarDay(to.Time)
			a.ActiveTo = &d
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func assignmentArgs(a *domain.Assignment) []any {
	var to any
	if a.ActiveTo != nil {
		to = *a.ActiveTo
	}
	return []any{a.ID.String(), a.Aisle, a.PersonID.String(), a.ActiveFrom, to}
}

// calendarDay drops the time and zone the driver attaches to DATE columns.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
