package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName      = errors.New("person name is required")
	ErrMissingAisle     = errors.New("aisle is required")
	ErrMissingPerson    = errors.New("assignment person is required")
	ErrMissingStart     = errors.New("assignment start date is required")
	ErrInvalidPeriod    = errors.New("assignment end date is before its start date")
	ErrAssignmentExists = errors.New("aisle already has an assignment starting that day")
)

// Person works the sales floor and can be put in charge of aisles.
type Person struct {
	ID     uuid.UUID
	Name   string
	Active bool
}

func NewPerson(name string) (*Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	return &Person{ID: uuid.New(), Name: name, Active: true}, nil
}

// Assignment puts a person in charge of an aisle from ActiveFrom until
// ActiveTo, both inclusive. A nil ActiveTo is open ended.
type Assignment struct {
	ID         uuid.UUID
	Aisle      string
	PersonID   uuid.UUID
	PersonName string
	ActiveFrom time.Time
	ActiveTo   *time.Time
}

func (a *Assignment) Validate() error {
	if strings.TrimSpace(a.Aisle) == "" {
		return ErrMissingAisle
	}
	if a.PersonID == uuid.Nil {
		return ErrMissingPerson
	}
	if a.ActiveFrom.IsZero() {
		return ErrMissingStart
	}
	if a.ActiveTo != nil && a.ActiveTo.Before(a.ActiveFrom) {
		return ErrInvalidPeriod
	}
	return nil
}

// ActiveOn reports whether the assignment covers the calendar day.
func (a *Assignment) ActiveOn(day time.Time) bool {
	if day.Before(a.ActiveFrom) {
		return false
	}
	return a.ActiveTo == nil || !day.After(*a.ActiveTo)
}
