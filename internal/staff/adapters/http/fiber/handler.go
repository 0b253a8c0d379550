package fiber

import (
	"context"
	"errors"
	"net/http"

	"returns-report-service/internal/staff/core/domain"
	"returns-report-service/internal/staff/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type PeopleUseCase interface {
	Create(ctx context.Context, name string) (usecase.CreatePersonResult, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Person, error)
	Deactivate(ctx context.Context, id string) error
}

type AssignmentsUseCase interface {
	Create(ctx context.Context, in usecase.AssignmentInput) (*domain.Assignment, error)
	Update(ctx context.Context, id string, in usecase.AssignmentInput) (*domain.Assignment, error)
	List(ctx context.Context, activeOn string) ([]domain.Assignment, error)
}

type StaffHandler struct {
	peopleUC      PeopleUseCase
	assignmentsUC AssignmentsUseCase
}

func NewStaffHandler(peopleUC PeopleUseCase, assignmentsUC AssignmentsUseCase) *StaffHandler {
	return &StaffHandler{peopleUC: peopleUC, assignmentsUC: assignmentsUC}
}

// CreatePerson godoc
// @Summary Register a person
// @Description A name that already exists returns the existing person with status 200
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePersonRequest true "Person payload"
// @Success 201 {object} CreatePersonResponse
// @Success 200 {object} CreatePersonResponse "Name already registered"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /people [post]
func (h *StaffHandler) CreatePerson(c *fiber.Ctx) error {
	var req CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	res, err := h.peopleUC.Create(c.UserContext(), req.Name)
	if err != nil {
		return writeError(c, err)
	}

	if !res.Created {
		return c.Status(http.StatusOK).JSON(CreatePersonResponse{
			Status: "exists",
			Person: toPersonResponse(*res.Person),
		})
	}
	return c.Status(http.StatusCreated).JSON(CreatePersonResponse{
		Status: "created",
		Person: toPersonResponse(*res.Person),
	})
}

// ListPeople godoc
// @Summary List people
// @Tags Staff
// @Produce json
// @Param all query bool false "Include inactive people"
// @Success 200 {object} ListPeopleResponse
// @Failure 500 {object} ErrorResponse
// @Router /people [get]
func (h *StaffHandler) ListPeople(c *fiber.Ctx) error {
	people, err := h.peopleUC.List(c.UserContext(), !c.QueryBool("all", false))
	if err != nil {
		return writeError(c, err)
	}

	resp := ListPeopleResponse{People: make([]PersonResponse, len(people))}
	for i, p := range people {
		resp.People[i] = toPersonResponse(p)
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// DeactivatePerson godoc
// @Summary Deactivate a person
// @Description The person keeps their assignment history
// @Tags Staff
// @Security BearerAuth
// @Param id path string true "Person ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /people/{id} [delete]
func (h *StaffHandler) DeactivatePerson(c *fiber.Ctx) error {
	if err := h.peopleUC.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateAssignment godoc
// @Summary Assign an aisle
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssignmentRequest true "Assignment payload"
// @Success 201 {object} AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assignments [post]
func (h *StaffHandler) CreateAssignment(c *fiber.Ctx) error {
	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	a, err := h.assignmentsUC.Create(c.UserContext(), toAssignmentInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toAssignmentResponse(*a))
}

// UpdateAssignment godoc
// @Summary Edit an aisle assignment
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param request body AssignmentRequest true "Assignment payload"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assignments/{id} [put]
func (h *StaffHandler) UpdateAssignment(c *fiber.Ctx) error {
	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	a, err := h.assignmentsUC.Update(c.UserContext(), c.Params("id"), toAssignmentInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toAssignmentResponse(*a))
}

// ListAssignments godoc
// @Summary List aisle assignments
// @Tags Staff
// @Produce json
// @Param active_on query string false "Only assignments covering this day (YYYY-MM-DD)"
// @Success 200 {object} ListAssignmentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assignments [get]
func (h *StaffHandler) ListAssignments(c *fiber.Ctx) error {
	out, err := h.assignmentsUC.List(c.UserContext(), c.Query("active_on"))
	if err != nil {
		return writeError(c, err)
	}

	resp := ListAssignmentsResponse{Assignments: make([]AssignmentResponse, len(out))}
	for i, a := range out {
		resp.Assignments[i] = toAssignmentResponse(a)
	}
	return c.Status(http.StatusOK).JSON(resp)
}

func toAssignmentInput(req AssignmentRequest) usecase.AssignmentInput {
	return usecase.AssignmentInput{
		Aisle:  req.Aisle,
		Person: req.Person,
		From:   req.From,
		To:     req.To,
	}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidPerson),
		errors.Is(err, usecase.ErrInvalidAssignment),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrPersonNotFound),
		errors.Is(err, usecase.ErrAssignmentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrAssignmentExists):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Error:   "assignment_exists",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
