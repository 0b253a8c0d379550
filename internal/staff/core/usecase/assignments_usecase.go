package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"returns-report-service/internal/staff/core/domain"
	"returns-report-service/internal/staff/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidAssignment  = errors.New("invalid assignment")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentExists   = domain.ErrAssignmentExists
)

type AssignmentInput struct {
	Aisle  string
	Person string // person name
	From   string // YYYY-MM-DD
	To     string // YYYY-MM-DD, "" -> open ended
}

type AssignmentsUseCase struct {
	repo ports.StaffRepositoryPort
}

func NewAssignmentsUseCase(repo ports.StaffRepositoryPort) *AssignmentsUseCase {
	return &AssignmentsUseCase{repo: repo}
}

func (uc *AssignmentsUseCase) Create(ctx context.Context, in AssignmentInput) (*domain.Assignment, error) {
	a, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}
	a.ID = uuid.New()

	if err := uc.repo.InsertAssignment(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces every field of the assignment id.
func (uc *AssignmentsUseCase) Update(ctx context.Context, id string, in AssignmentInput) (*domain.Assignment, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	a, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}
	a.ID = aid

	found, err := uc.repo.UpdateAssignment(ctx, a)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrAssignmentNotFound
	}
	return a, nil
}

// List returns every assignment, or only those covering activeOn when it is
// not empty.
func (uc *AssignmentsUseCase) List(ctx context.Context, activeOn string) ([]domain.Assignment, error) {
	var day time.Time
	if s := strings.TrimSpace(activeOn); s != "" {
		d, err := parseDay(s)
		if err != nil {
			return nil, err
		}
		day = d
	}
	return uc.repo.ListAssignments(ctx, day)
}

func (uc *AssignmentsUseCase) build(ctx context.Context, in AssignmentInput) (*domain.Assignment, error) {
	from, err := parseDay(in.From)
	if err != nil {
		return nil, err
	}

	a := &domain.Assignment{
		Aisle:      strings.TrimSpace(in.Aisle),
		ActiveFrom: from,
	}
	if s := strings.TrimSpace(in.To); s != "" {
		to, err := parseDay(s)
		if err != nil {
			return nil, err
		}
		a.ActiveTo = &to
	}

	name := strings.TrimSpace(in.Person)
	if name == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssignment, domain.ErrMissingPerson)
	}

	if a.Aisle == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssignment, domain.ErrMissingAisle)
	}

	p, err := uc.repo.FindPersonByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, name)
	}
	a.PersonID = p.ID
	a.PersonName = p.Name

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssignment, err)
	}
	return a, nil
}

func parseDay(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}
