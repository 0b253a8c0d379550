package usecase_test

import (
	"context"
	"time"

	"returns-report-service/internal/staff/core/domain"

	"github.com/google/uuid"
)

// fakeStaffRepo implements ports.StaffRepositoryPort in memory.
type fakeStaffRepo struct {
	people      []domain.Person
	assignments []domain.Assignment

	InsertPersonFn     func(ctx context.Context, p *domain.Person) (bool, error)
	InsertAssignmentFn func(ctx context.Context, a *domain.Assignment) error
	FindErr            error

	lastActiveOn time.Time
	lastActive   bool
}

func (f *fakeStaffRepo) InsertPerson(ctx context.Context, p *domain.Person) (bool, error) {
	if f.InsertPersonFn != nil {
		return f.InsertPersonFn(ctx, p)
	}
	for _, existing := range f.people {
		if existing.Name == p.Name {
			return false, nil
		}
	}
	f.people = append(f.people, *p)
	return true, nil
}

func (f *fakeStaffRepo) ListPeople(ctx context.Context, activeOnly bool) ([]domain.Person, error) {
	f.lastActive = activeOnly
	var out []domain.Person
	for _, p := range f.people {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStaffRepo) FindPersonByName(ctx context.Context, name string) (*domain.Person, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	for i := range f.people {
		if f.people[i].Name == name {
			p := f.people[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeStaffRepo) DeactivatePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	for i := range f.people {
		if f.people[i].ID == id {
			f.people[i].Active = false
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStaffRepo) InsertAssignment(ctx context.Context, a *domain.Assignment) error {
	if f.InsertAssignmentFn != nil {
		return f.InsertAssignmentFn(ctx, a)
	}
	f.assignments = append(f.assignments, *a)
	return nil
}

func (f *fakeStaffRepo) UpdateAssignment(ctx context.Context, a *domain.Assignment) (bool, error) {
	for i := range f.assignments {
		if f.assignments[i].ID == a.ID {
			f.assignments[i] = *a
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStaffRepo) ListAssignments(ctx context.Context, activeOn time.Time) ([]domain.Assignment, error) {
	f.lastActiveOn = activeOn
	return f.assignments, nil
}

func withPerson(name string) *fakeStaffRepo {
	return &fakeStaffRepo{people: []domain.Person{{ID: uuid.New(), Name: name, Active: true}}}
}
