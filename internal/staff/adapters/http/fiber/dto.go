package fiber

import "returns-report-service/internal/staff/core/domain"

type CreatePersonRequest struct {
	Name string `json:"name" example:"Ana Torres"`
}

// PersonResponse
// @Description Person DTO
type PersonResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type CreatePersonResponse struct {
	Status string         `json:"status" example:"created"`
	Person PersonResponse `json:"person"`
}

type ListPeopleResponse struct {
	People []PersonResponse `json:"people"`
}

// AssignmentRequest puts a person, by name, in charge of an aisle.
type AssignmentRequest struct {
	Aisle  string `json:"aisle" example:"A1"`
	Person string `json:"person" example:"Ana Torres"`
	From   string `json:"from" example:"2025-01-01"`
	To     string `json:"to,omitempty" example:"2025-06-30"`
}

// AssignmentResponse
// @Description Aisle assignment DTO
type AssignmentResponse struct {
	ID       string `json:"id"`
	Aisle    string `json:"aisle"`
	PersonID string `json:"person_id"`
	Person   string `json:"person"`
	From     string `json:"from" example:"2025-01-01"`
	To       string `json:"to,omitempty" example:"2025-06-30"`
}

type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toPersonResponse(p domain.Person) PersonResponse {
	return PersonResponse{ID: p.ID.String(), Name: p.Name, Active: p.Active}
}

func toAssignmentResponse(a domain.Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:       a.ID.String(),
		Aisle:    a.Aisle,
		PersonID: a.PersonID.String(),
		Person:   a.PersonName,
		From:     a.ActiveFrom.Format("2006-01-02"),
	}
	if a.ActiveTo != nil {
		resp.To = a.ActiveTo.Format("2006-01-02")
	}
	return resp
}
