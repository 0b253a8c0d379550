package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"returns-report-service/internal/returns/core/domain"
	"returns-report-service/internal/returns/core/ports"

	"github.com/google/uuid"
)

var ErrInvalidFilter = errors.New("invalid history filter")

const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = 500
)

type ListReturnsInput struct {
	From   string // YYYY-MM-DD, optional
	To     string // YYYY-MM-DD, optional
	Zone   string
	Status string
	Limit  int // 0 -> DefaultHistoryLimit, capped at MaxHistoryLimit
	Offset int
}

type QueryReturnsUseCase struct {
	repo ports.ReturnRepositoryPort
}

func NewQueryReturnsUseCase(repo ports.ReturnRepositoryPort) *QueryReturnsUseCase {
	return &QueryReturnsUseCase{repo: repo}
}

// Get loads one return with its items.
func (uc *QueryReturnsUseCase) Get(ctx context.Context, id string) (*domain.Return, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	r, err := uc.repo.GetReturn(ctx, rid)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReturnNotFound
	}
	return r, nil
}

// List returns the history page matching in, newest first.
func (uc *QueryReturnsUseCase) List(ctx context.Context, in ListReturnsInput) ([]domain.Return, error) {
	var f ports.ListFilter

	if s := strings.TrimSpace(in.From); s != "" {
		d, err := parseDay(s)
		if err != nil {
			return nil, fmt.Errorf("%w: from %q", ErrInvalidFilter, s)
		}
		f.From = d
	}
	if s := strings.TrimSpace(in.To); s != "" {
		d, err := parseDay(s)
		if err != nil {
			return nil, fmt.Errorf("%w: to %q", ErrInvalidFilter, s)
		}
		f.To = d
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidFilter)
	}

	if s := strings.TrimSpace(in.Status); s != "" {
		status, err := domain.ParseStatus(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
		f.Status = status
	}
	f.Zone = strings.TrimSpace(in.Zone)

	if in.Offset < 0 {
		return nil, fmt.Errorf("%w: offset cannot be negative", ErrInvalidFilter)
	}
	f.Offset = in.Offset

	f.Limit = PageLimit(in.Limit)

	return uc.repo.ListReturns(ctx, f)
}

// PageLimit is the page size actually used for a requested limit.
func PageLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultHistoryLimit
	case n > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return n
	}
}
