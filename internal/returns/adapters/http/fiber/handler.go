package fiber

import (
	"context"
	"errors"
	"net/http"

	"returns-report-service/internal/returns/core/domain"
	"returns-report-service/internal/returns/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RegisterReturnUseCase interface {
	Execute(ctx context.Context, in usecase.RegisterReturnInput) (usecase.RegisterReturnResult, error)
	BulkRegister(ctx context.Context, in usecase.BulkRegisterInput) (usecase.BulkRegisterResult, error)
}

type UpdateReturnUseCase interface {
	Edit(ctx context.Context, id string, in usecase.RegisterReturnInput) (*domain.Return, error)
	ChangeStatus(ctx context.Context, id, status string) (domain.Status, error)
	Delete(ctx context.Context, id string) error
}

type QueryReturnsUseCase interface {
	Get(ctx context.Context, id string) (*domain.Return, error)
	List(ctx context.Context, in usecase.ListReturnsInput) ([]domain.Return, error)
}

type ReturnHandler struct {
	registerUC RegisterReturnUseCase
	updateUC   UpdateReturnUseCase
	queryUC    QueryReturnsUseCase
}

func NewReturnHandler(registerUC RegisterReturnUseCase, updateUC UpdateReturnUseCase, queryUC QueryReturnsUseCase) *ReturnHandler {
	return &ReturnHandler{registerUC: registerUC, updateUC: updateUC, queryUC: queryUC}
}

// CreateReturn godoc
// @Summary Register a return
// @Description Stores a return and its items; a repeated folio is reported as duplicate
// @Tags Returns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReturnRequest true "Return payload"
// @Success 201 {object} CreateReturnResponse
// @Success 200 {object} CreateReturnResponse "Duplicate folio"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /returns [post]
func (h *ReturnHandler) CreateReturn(c *fiber.Ctx) error {
	var req CreateReturnRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	res, err := h.registerUC.Execute(c.UserContext(), toRegisterInput(req))
	if err != nil {
		return writeError(c, err)
	}

	if !res.Created {
		return c.Status(http.StatusOK).JSON(CreateReturnResponse{
			Status: "duplicate",
		})
	}

	return c.Status(http.StatusCreated).JSON(CreateReturnResponse{
		Status: "created",
		ID:     res.ID.String(),
	})
}

// BulkCreateReturns godoc
// @Summary Bulk register returns
// @Description Validates every return first, then stores the batch in one transaction
// @Tags Returns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkCreateReturnsRequest true "Bulk return payload"
// @Success 201 {object} BulkCreateReturnsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /returns/bulk [post]
func (h *ReturnHandler) BulkCreateReturns(c *fiber.Ctx) error {
	var req BulkCreateReturnsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Returns) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "returns_list_required",
		})
	}

	inputs := make([]usecase.RegisterReturnInput, len(req.Returns))
	for i, r := range req.Returns {
		inputs[i] = toRegisterInput(r)
	}

	result, err := h.registerUC.BulkRegister(c.UserContext(), usecase.BulkRegisterInput{Returns: inputs})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(BulkCreateReturnsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

// ChangeStatus godoc
// @Summary Change a return's status
// @Tags Returns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Return ID"
// @Param request body ChangeStatusRequest true "New status: pending | approved | rejected"
// @Success 200 {object} ChangeStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /returns/{id}/status [patch]
func (h *ReturnHandler) ChangeStatus(c *fiber.Ctx) error {
	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	id := c.Params("id")
	status, err := h.updateUC.ChangeStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(ChangeStatusResponse{
		ID:     id,
		Status: string(status),
	})
}

// DeleteReturn godoc
// @Summary Delete a return
// @Tags Returns
// @Security BearerAuth
// @Param id path string true "Return ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /returns/{id} [delete]
func (h *ReturnHandler) DeleteReturn(c *fiber.Ctx) error {
	if err := h.updateUC.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListReturns godoc
// @Summary Return history
// @Description Lists returns with their items, newest first
// @Tags Returns
// @Produce json
// @Security BearerAuth
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param zone query string false "Zone"
// @Param status query string false "pending | approved | rejected"
// @Param limit query int false "Page size (default 100, max 500)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} ListReturnsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /returns [get]
func (h *ReturnHandler) ListReturns(c *fiber.Ctx) error {
	in := usecase.ListReturnsInput{
		From:   c.Query("from"),
		To:     c.Query("to"),
		Zone:   c.Query("zone"),
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}

	returns, err := h.queryUC.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	resp := ListReturnsResponse{
		Returns: make([]ReturnResponse, len(returns)),
		Count:   len(returns),
		Limit:   usecase.PageLimit(in.Limit),
		Offset:  in.Offset,
	}
	for i, r := range returns {
		resp.Returns[i] = toReturnResponse(r)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetReturn godoc
// @Summary Get a return
// @Tags Returns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Return ID"
// @Success 200 {object} ReturnResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /returns/{id} [get]
func (h *ReturnHandler) GetReturn(c *fiber.Ctx) error {
	r, err := h.queryUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toReturnResponse(*r))
}

// UpdateReturn godoc
// @Summary Edit a return
// @Description Replaces the data and items of a return; the status is kept
// @Tags Returns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Return ID"
// @Param request body CreateReturnRequest true "Return payload, date required"
// @Success 200 {object} ReturnResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /returns/{id} [put]
func (h *ReturnHandler) UpdateReturn(c *fiber.Ctx) error {
	var req CreateReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	r, err := h.updateUC.Edit(c.UserContext(), c.Params("id"), toRegisterInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toReturnResponse(*r))
}

func toRegisterInput(req CreateReturnRequest) usecase.RegisterReturnInput {
	in := usecase.RegisterReturnInput{
		Date:     req.Date,
		Folio:    req.Folio,
		Customer: req.Customer,
		Address:  req.Address,
		Reason:   req.Reason,
		Zone:     req.Zone,
		SellerID: req.SellerID,
		Items:    make([]usecase.ItemInput, len(req.Items)),
	}
	for i, it := range req.Items {
		in.Items[i] = usecase.ItemInput{
			Name:      it.Name,
			Code:      it.Code,
			Aisle:     it.Aisle,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return in
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidReturn),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrFutureDate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_return",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidFilter):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrReturnNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrFolioTaken):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Error:   "folio_taken",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
