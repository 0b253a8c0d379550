package fiber

import (
	"returns-report-service/internal/returns/core/domain"

	"github.com/shopspring/decimal"
)

type ReturnItemRequest struct {
	Name      string          `json:"name" example:"HDMI cable"`
	Code      string          `json:"code" example:"HD-2M"`
	Aisle     string          `json:"aisle" example:"A1"`
	Quantity  int             `json:"quantity" example:"2"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"149.90"`
}

// CreateReturnRequest represents a return registration payload
// @Description Return registration DTO
type CreateReturnRequest struct {
	Date     string              `json:"date" example:"2025-03-01"`
	Folio    string              `json:"folio" example:"DEV-0001"`
	Customer string              `json:"customer"`
	Address  string              `json:"address"`
	Reason   string              `json:"reason"`
	Zone     string              `json:"zone" example:"Z11"`
	SellerID string              `json:"seller_id"`
	Items    []ReturnItemRequest `json:"items"`
}

type CreateReturnResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

type BulkCreateReturnsRequest struct {
	Returns []CreateReturnRequest `json:"returns"`
}

type BulkCreateReturnsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" example:"approved"`
}

type ChangeStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ReturnItemResponse struct {
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	Aisle     string          `json:"aisle"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"149.90"`
	Total     string          `json:"total" example:"299.80"`
}

// ReturnResponse is a stored return with its items
// @Description Return DTO
type ReturnResponse struct {
	ID       string               `json:"id"`
	Date     string               `json:"date" example:"2025-03-01"`
	Folio    string               `json:"folio" example:"DEV-0001"`
	Customer string               `json:"customer"`
	Address  string               `json:"address"`
	Reason   string               `json:"reason"`
	Zone     string               `json:"zone" example:"Z11"`
	SellerID string               `json:"seller_id"`
	Status   string               `json:"status" example:"pending"`
	Total    string               `json:"total" example:"299.80"`
	Pieces   int                  `json:"pieces" example:"2"`
	Items    []ReturnItemResponse `json:"items"`
}

type ListReturnsResponse struct {
	Returns []ReturnResponse `json:"returns"`
	Count   int              `json:"count"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_return"`
	Message string `json:"message" example:"folio is required"`
}

func toReturnResponse(r domain.Return) ReturnResponse {
	resp := ReturnResponse{
		ID:       r.ID.String(),
		Date:     r.ReturnedAt.Format("2006-01-02"),
		Folio:    r.Folio,
		Customer: r.Customer,
		Address:  r.Address,
		Reason:   r.Reason,
		Zone:     r.Zone,
		SellerID: r.SellerID,
		Status:   string(r.Status),
		Total:    r.Total().StringFixed(2),
		Pieces:   r.Pieces(),
		Items:    make([]ReturnItemResponse, len(r.Items)),
	}
	for i, it := range r.Items {
		resp.Items[i] = ReturnItemResponse{
			Name:      it.Name,
			Code:      it.Code,
			Aisle:     it.Aisle,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total().StringFixed(2),
		}
	}
	return resp
}
