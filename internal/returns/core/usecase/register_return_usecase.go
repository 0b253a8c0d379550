package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"returns-report-service/internal/returns/core/domain"
	"returns-report-service/internal/returns/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidReturn = errors.New("invalid return")
	ErrInvalidDate   = errors.New("invalid return date")
	ErrFutureDate    = errors.New("return date cannot be in the future")
)

type RegisterReturnUseCase struct {
	repo ports.ReturnRepositoryPort
	now  func() time.Time
}

func NewRegisterReturnUseCase(repo ports.ReturnRepositoryPort) *RegisterReturnUseCase {
	return &RegisterReturnUseCase{repo: repo, now: time.Now}
}

type ItemInput struct {
	Name      string
	Code      string
	Aisle     string
	Quantity  int
	UnitPrice decimal.Decimal
}

type RegisterReturnInput struct {
	Date     string // YYYY-MM-DD, empty means today
	Folio    string
	Customer string
	Address  string
	Reason   string
	Zone     string
	SellerID string
	Items    []ItemInput
}

type RegisterReturnResult struct {
	ID      uuid.UUID
	Created bool
}

// Execute stores a new pending return. A folio that already exists is
// reported as created = false without touching the stored return.
func (uc *RegisterReturnUseCase) Execute(ctx context.Context, in RegisterReturnInput) (RegisterReturnResult, error) {
	r, err := uc.build(in)
	if err != nil {
		return RegisterReturnResult{}, err
	}

	created, err := uc.repo.InsertReturn(ctx, r)
	if err != nil {
		return RegisterReturnResult{}, err
	}

	return RegisterReturnResult{ID: r.ID, Created: created}, nil
}

type BulkRegisterInput struct {
	Returns []RegisterReturnInput
}

type BulkRegisterResult struct {
	Created    int
	Duplicates int
}

// BulkRegister validates every return before writing any of them, then
// writes the batch in one transaction: either all new folios are stored or
// none are.
func (uc *RegisterReturnUseCase) BulkRegister(ctx context.Context, in BulkRegisterInput) (BulkRegisterResult, error) {
	var res BulkRegisterResult

	built := make([]*domain.Return, 0, len(in.Returns))
	for i, ret := range in.Returns {
		r, err := uc.build(ret)
		if err != nil {
			return res, fmt.Errorf("return #%d: %w", i+1, err)
		}
		built = append(built, r)
	}

	created, err := uc.repo.InsertReturns(ctx, built)
	if err != nil {
		return res, err
	}

	res.Created = created
	res.Duplicates = len(built) - created
	return res, nil
}

func (uc *RegisterReturnUseCase) build(in RegisterReturnInput) (*domain.Return, error) {
	return buildReturn(in, uc.now())
}

// buildReturn trims and validates in. An empty date means today; dates after
// today are rejected.
func buildReturn(in RegisterReturnInput, now time.Time) (*domain.Return, error) {
	now = now.UTC()

	returnedAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d := strings.TrimSpace(in.Date); d != "" {
		parsed, err := parseDay(d)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if parsed.After(returnedAt) {
			return nil, ErrFutureDate
		}
		returnedAt = parsed
	}

	r := &domain.Return{
		ID:         uuid.New(),
		Folio:      strings.TrimSpace(in.Folio),
		Customer:   strings.TrimSpace(in.Customer),
		Address:    strings.TrimSpace(in.Address),
		Reason:     strings.TrimSpace(in.Reason),
		Zone:       strings.TrimSpace(in.Zone),
		SellerID:   strings.TrimSpace(in.SellerID),
		Status:     domain.StatusPending,
		ReturnedAt: returnedAt,
		Items:      make([]domain.Item, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		r.Items = append(r.Items, domain.Item{
			Name:      strings.TrimSpace(it.Name),
			Code:      strings.TrimSpace(it.Code),
			Aisle:     strings.TrimSpace(it.Aisle),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidReturn, err)
	}

	return r, nil
}

func parseDay(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
