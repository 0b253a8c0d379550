package ports

import (
	"context"
	"time"

	"returns-report-service/internal/returns/core/domain"

	"github.com/google/uuid"
)

// ListFilter narrows the return history. Zero values do not filter.
type ListFilter struct {
	From   time.Time // calendar date, inclusive
	To     time.Time // calendar date, inclusive
	Zone   string
	Status domain.Status
	Limit  int
	Offset int
}

type ReturnRepositoryPort interface {
	// InsertReturn:
	//   created = true,  err = nil  -> new return with its items
	//   created = false, err = nil  -> folio already registered
	//   created = false, err != nil -> DB error
	InsertReturn(ctx context.Context, r *domain.Return) (created bool, err error)

	// InsertReturns writes the whole batch in one transaction and reports how
	// many returns were new. On error nothing is written.
	InsertReturns(ctx context.Context, rs []*domain.Return) (created int, err error)

	// UpdateReturn replaces the header and items of an existing return,
	// keeping its status. A folio used by another return is ErrFolioTaken.
	UpdateReturn(ctx context.Context, r *domain.Return) (found bool, err error)

	// UpdateStatus and DeleteReturn report found = false when no return has id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (found bool, err error)
	DeleteReturn(ctx context.Context, id uuid.UUID) (found bool, err error)

	// GetReturn returns nil, nil when no return has id.
	GetReturn(ctx context.Context, id uuid.UUID) (*domain.Return, error)

	// ListReturns returns matching returns with their items, newest first.
	ListReturns(ctx context.Context, f ListFilter) ([]domain.Return, error)
}
