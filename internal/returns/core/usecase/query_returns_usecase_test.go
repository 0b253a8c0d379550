package usecase

import (
	"context"
	"errors"
	"testing"

	"returns-report-service/internal/returns/core/domain"
	"returns-report-service/internal/returns/core/ports"

	"github.com/google/uuid"
)

func TestGetReturn(t *testing.T) {
	id := uuid.New()
	uc := NewQueryReturnsUseCase(&fakeReturnRepo{})

	r, err := uc.Get(context.Background(), id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != id {
		t.Fatalf("expected %s, got %s", id, r.ID)
	}

	if _, err := uc.Get(context.Background(), "not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	missing := NewQueryReturnsUseCase(&fakeReturnRepo{
		GetFn: func(ctx context.Context, id uuid.UUID) (*domain.Return, error) { return nil, nil },
	})
	if _, err := missing.Get(context.Background(), id.String()); !errors.Is(err, ErrReturnNotFound) {
		t.Fatalf("expected ErrReturnNotFound, got %v", err)
	}
}

func TestListReturns_Filter(t *testing.T) {
	repo := &fakeReturnRepo{}
	uc := NewQueryReturnsUseCase(repo)

	_, err := uc.List(context.Background(), ListReturnsInput{
		From:   "2025-03-01",
		To:     "2025-03-31",
		Zone:   " Z11 ",
		Status: "aprobada",
		Offset: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := repo.lastFilter
	if f.From.Format("2006-01-02") != "2025-03-01" || f.To.Format("2006-01-02") != "2025-03-31" {
		t.Fatalf("unexpected dates %v..%v", f.From, f.To)
	}
	if f.Zone != "Z11" || f.Status != domain.StatusApproved {
		t.Fatalf("unexpected filter %+v", f)
	}
	if f.Limit != DefaultHistoryLimit || f.Offset != 20 {
		t.Fatalf("unexpected paging %d/%d", f.Limit, f.Offset)
	}
}

func TestListReturns_LimitIsCapped(t *testing.T) {
	repo := &fakeReturnRepo{}

	if _, err := NewQueryReturnsUseCase(repo).List(context.Background(), ListReturnsInput{Limit: 10_000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != MaxHistoryLimit {
		t.Fatalf("expected limit %d, got %d", MaxHistoryLimit, repo.lastFilter.Limit)
	}
	if !repo.lastFilter.From.IsZero() || !repo.lastFilter.To.IsZero() {
		t.Fatalf("expected open date range, got %+v", repo.lastFilter)
	}
}

func TestListReturns_InvalidFilter(t *testing.T) {
	tests := []struct {
		name string
		in   ListReturnsInput
	}{
		{"bad_from", ListReturnsInput{From: "yesterday"}},
		{"bad_to", ListReturnsInput{To: "31/03/2025"}},
		{"reversed", ListReturnsInput{From: "2025-04-01", To: "2025-03-01"}},
		{"bad_status", ListReturnsInput{Status: "lost"}},
		{"negative_offset", ListReturnsInput{Offset: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReturnRepo{
				ListFn: func(ctx context.Context, f ports.ListFilter) ([]domain.Return, error) {
					t.Fatalf("repository should not be called")
					return nil, nil
				},
			}
			if _, err := NewQueryReturnsUseCase(repo).List(context.Background(), tt.in); !errors.Is(err, ErrInvalidFilter) {
				t.Fatalf("expected ErrInvalidFilter, got %v", err)
			}
		})
	}
}
