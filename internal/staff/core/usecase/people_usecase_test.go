package usecase_test

import (
	"context"
	"errors"
	"testing"

	"returns-report-service/internal/staff/core/domain"
	"returns-report-service/internal/staff/core/usecase"

	"github.com/google/uuid"
)

// ------------------------------------------------------------
// Create
// ------------------------------------------------------------

func TestCreatePerson(t *testing.T) {
	repo := &fakeStaffRepo{}
	uc := usecase.NewPeopleUseCase(repo)

	res, err := uc.Create(context.Background(), "  Ana ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created || res.Person.Name != "Ana" || len(repo.people) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestCreatePerson_TakenNameReturnsExisting(t *testing.T) {
	repo := withPerson("Ana")
	existing := repo.people[0].ID
	uc := usecase.NewPeopleUseCase(repo)

	res, err := uc.Create(context.Background(), "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created || res.Person.ID != existing {
		t.Fatalf("expected the existing person, got %+v", res)
	}
}

func TestCreatePerson_Errors(t *testing.T) {
	uc := usecase.NewPeopleUseCase(&fakeStaffRepo{})
	if _, err := uc.Create(context.Background(), " "); !errors.Is(err, usecase.ErrInvalidPerson) || !errors.Is(err, domain.ErrMissingName) {
		t.Fatalf("expected ErrInvalidPerson wrapping ErrMissingName, got %v", err)
	}

	dbErr := errors.New("db down")
	failing := &fakeStaffRepo{InsertPersonFn: func(ctx context.Context, p *domain.Person) (bool, error) {
		return false, dbErr
	}}
	if _, err := usecase.NewPeopleUseCase(failing).Create(context.Background(), "Ana"); !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
}

// ------------------------------------------------------------
// List / Deactivate
// ------------------------------------------------------------

func TestListPeople_ActiveOnly(t *testing.T) {
	repo := &fakeStaffRepo{people: []domain.Person{
		{ID: uuid.New(), Name: "Ana", Active: true},
		{ID: uuid.New(), Name: "Luis", Active: false},
	}}
	uc := usecase.NewPeopleUseCase(repo)

	out, err := uc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Ana" || !repo.lastActive {
		t.Fatalf("unexpected people %+v", out)
	}
}

func TestDeactivatePerson(t *testing.T) {
	repo := withPerson("Ana")
	uc := usecase.NewPeopleUseCase(repo)

	if err := uc.Deactivate(context.Background(), repo.people[0].ID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.people[0].Active {
		t.Fatalf("expected person to be inactive")
	}

	if err := uc.Deactivate(context.Background(), "nope"); !errors.Is(err, usecase.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := uc.Deactivate(context.Background(), uuid.NewString()); !errors.Is(err, usecase.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}
