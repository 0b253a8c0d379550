package ports

import (
	"context"
	"time"

	"returns-report-service/internal/staff/core/domain"

	"github.com/google/uuid"
)

type StaffRepositoryPort interface {
	// InsertPerson reports created = false when the name is already taken.
	InsertPerson(ctx context.Context, p *domain.Person) (created bool, err error)

	// ListPeople returns people sorted by name.
	ListPeople(ctx context.Context, activeOnly bool) ([]domain.Person, error)

	// FindPersonByName returns nil, nil when nobody has that name.
	FindPersonByName(ctx context.Context, name string) (*domain.Person, error)

	// DeactivatePerson keeps the person and their assignments but hides
	// them from the active list.
	DeactivatePerson(ctx context.Context, id uuid.UUID) (found bool, err error)

	// InsertAssignment returns domain.ErrAssignmentExists when the aisle
	// already has an assignment starting on the same day.
	InsertAssignment(ctx context.Context, a *domain.Assignment) error
	UpdateAssignment(ctx context.Context, a *domain.Assignment) (found bool, err error)

	// ListAssignments returns assignments with their person's name, newest
	// first. A non-zero activeOn keeps only those covering that day.
	ListAssignments(ctx context.Context, activeOn time.Time) ([]domain.Assignment, error)
}
