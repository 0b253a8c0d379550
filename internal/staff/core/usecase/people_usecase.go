package usecase

import (
	"context"
	"errors"
	"fmt"

	"returns-report-service/internal/staff/core/domain"
	"returns-report-service/internal/staff/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidPerson  = errors.New("invalid person")
	ErrInvalidID      = errors.New("invalid id")
	ErrPersonNotFound = errors.New("person not found")
)

type CreatePersonResult struct {
	Person  *domain.Person
	Created bool
}

type PeopleUseCase struct {
	repo ports.StaffRepositoryPort
}

func NewPeopleUseCase(repo ports.StaffRepositoryPort) *PeopleUseCase {
	return &PeopleUseCase{repo: repo}
}

// Create registers a person. A taken name is not an error: the existing
// person is returned with Created = false.
func (uc *PeopleUseCase) Create(ctx context.Context, name string) (CreatePersonResult, error) {
	p, err := domain.NewPerson(name)
	if err != nil {
		return CreatePersonResult{}, fmt.Errorf("%w: %w", ErrInvalidPerson, err)
	}

	created, err := uc.repo.InsertPerson(ctx, p)
	if err != nil {
		return CreatePersonResult{}, err
	}
	if created {
		return CreatePersonResult{Person: p, Created: true}, nil
	}

	existing, err := uc.repo.FindPersonByName(ctx, p.Name)
	if err != nil {
		return CreatePersonResult{}, err
	}
	if existing == nil {
		return CreatePersonResult{}, fmt.Errorf("person %q vanished after a name conflict", p.Name)
	}
	return CreatePersonResult{Person: existing}, nil
}

func (uc *PeopleUseCase) List(ctx context.Context, activeOnly bool) ([]domain.Person, error) {
	return uc.repo.ListPeople(ctx, activeOnly)
}

func (uc *PeopleUseCase) Deactivate(ctx context.Context, id string) error {
	pid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	found, err := uc.repo.DeactivatePerson(ctx, pid)
	if err != nil {
		return err
	}
	if !found {
		return ErrPersonNotFound
	}
	return nil
}
