package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingFolio    = errors.New("folio is required")
	ErrMissingZone     = errors.New("zone is required")
	ErrNoItems         = errors.New("at least one item is required")
	ErrInvalidQuantity = errors.New("item quantity must be greater than zero")
	ErrNegativePrice   = errors.New("item unit price cannot be negative")
	ErrNonPositive     = errors.New("return total must be greater than zero")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrFolioTaken      = errors.New("folio already belongs to another return")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus accepts the canonical names and the legacy Spanish labels.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "pendiente":
		return StatusPending, nil
	case "approved", "aprobada", "aprobado":
		return StatusApproved, nil
	case "rejected", "rechazada", "rechazado":
		return StatusRejected, nil
	}
	return "", ErrInvalidStatus
}

type Item struct {
	Name      string
	Code      string
	Aisle     string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total is quantity times unit price, rounded to cents.
func (i Item) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

type Return struct {
	ID         uuid.UUID
	Folio      string
	Customer   string
	Address    string
	Reason     string
	Zone       string
	SellerID   string
	Status     Status
	ReturnedAt time.Time
	Items      []Item
}

func (r *Return) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Total())
	}
	return total.Round(2)
}

func (r *Return) Pieces() int {
	n := 0
	for _, it := range r.Items {
		n += it.Quantity
	}
	return n
}

func (r *Return) Validate() error {
	if strings.TrimSpace(r.Folio) == "" {
		return ErrMissingFolio
	}
	if strings.TrimSpace(r.Zone) == "" {
		return ErrMissingZone
	}
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for _, it := range r.Items {
		if it.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if it.UnitPrice.IsNegative() {
			return ErrNegativePrice
		}
	}
	if !r.Total().IsPositive() {
		return ErrNonPositive
	}
	return nil
}
