package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"returns-report-service/internal/returns/core/domain"
	"returns-report-service/internal/returns/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fake repo implementing ReturnRepositoryPort
type fakeReturnRepo struct {
	InsertCalls []*domain.Return
	Results     []bool
	Err         error

	BatchCalls int

	UpdateFn       func(ctx context.Context, id uuid.UUID, s domain.Status) (bool, error)
	DeleteFn       func(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateReturnFn func(ctx context.Context, r *domain.Return) (bool, error)
	GetFn          func(ctx context.Context, id uuid.UUID) (*domain.Return, error)
	ListFn         func(ctx context.Context, f ports.ListFilter) ([]domain.Return, error)

	lastFilter ports.ListFilter
}

func (f *fakeReturnRepo) InsertReturn(ctx context.Context, r *domain.Return) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	f.InsertCalls = append(f.InsertCalls, r)

	if len(f.Results) == 0 {
		return true, nil
	}

	res := f.Results[0]
	f.Results = f.Results[1:]
	return res, nil
}

// InsertReturns behaves like a transaction: on error nothing is kept.
func (f *fakeReturnRepo) InsertReturns(ctx context.Context, rs []*domain.Return) (int, error) {
	f.BatchCalls++
	before := len(f.InsertCalls)
	created := 0
	for _, r := range rs {
		ok, err := f.InsertReturn(ctx, r)
		if err != nil {
			f.InsertCalls = f.InsertCalls[:before]
			return 0, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func (f *fakeReturnRepo) UpdateReturn(ctx context.Context, r *domain.Return) (bool, error) {
	if f.UpdateReturnFn != nil {
		return f.UpdateReturnFn(ctx, r)
	}
	return true, nil
}

func (f *fakeReturnRepo) GetReturn(ctx context.Context, id uuid.UUID) (*domain.Return, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &domain.Return{ID: id, Status: domain.StatusPending}, nil
}

func (f *fakeReturnRepo) ListReturns(ctx context.Context, filter ports.ListFilter) ([]domain.Return, error) {
	f.lastFilter = filter
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeReturnRepo) UpdateStatus(ctx context.Context, id uuid.UUID, s domain.Status) (bool, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, s)
	}
	return true, nil
}

func (f *fakeReturnRepo) DeleteReturn(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return true, nil
}

func fixedClock(s string) func() time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return func() time.Time { return t.Add(15 * time.Hour) }
}

func validInput(folio string) RegisterReturnInput {
	return RegisterReturnInput{
		Date:     "2025-03-01",
		Folio:    folio,
		Customer: " ACME ",
		Zone:     "Z11",
		Items: []ItemInput{
			{Name: "Cable", Code: "C1", Aisle: "A1", Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		},
	}
}

// ------------------------------------------------------------
// REGISTER
// ------------------------------------------------------------

func TestRegisterReturn_Created(t *testing.T) {
	repo := &fakeReturnRepo{}
	uc := NewRegisterReturnUseCase(repo)
	uc.now = fixedClock("2025-03-10")

	res, err := uc.Execute(context.Background(), validInput("F-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Created || res.ID == uuid.Nil {
		t.Fatalf("expected created return with id, got %+v", res)
	}
	if len(repo.InsertCalls) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.InsertCalls))
	}

	got := repo.InsertCalls[0]
	if got.Status != domain.StatusPending {
		t.Errorf("expected pending status, got %s", got.Status)
	}
	if got.Customer != "ACME" {
		t.Errorf("expected trimmed customer, got %q", got.Customer)
	}
	if got.ReturnedAt.Format("2006-01-02") != "2025-03-01" {
		t.Errorf("unexpected date %v", got.ReturnedAt)
	}
	if got.Total().StringFixed(2) != "25.00" {
		t.Errorf("unexpected total %s", got.Total())
	}
}

func TestRegisterReturn_DefaultsToToday(t *testing.T) {
	repo := &fakeReturnRepo{}
	uc := NewRegisterReturnUseCase(repo)
	uc.now = fixedClock("2025-03-10")

	in := validInput("F-1")
	in.Date = ""

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := repo.InsertCalls[0].ReturnedAt.Format("2006-01-02"); d != "2025-03-10" {
		t.Fatalf("expected today, got %s", d)
	}
}

func TestRegisterReturn_Duplicate(t *testing.T) {
	repo := &fakeReturnRepo{Results: []bool{false}}
	uc := NewRegisterReturnUseCase(repo)
	uc.now = fixedClock("2025-03-10")

	res, err := uc.Execute(context.Background(), validInput("F-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Fatalf("expected duplicate to report created=false")
	}
}

func TestRegisterReturn_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *RegisterReturnInput)
		want   error
	}{
		{"future_date", func(in *RegisterReturnInput) { in.Date = "2025-03-11" }, ErrFutureDate},
		{"bad_date", func(in *RegisterReturnInput) { in.Date = "03/01/2025" }, ErrInvalidDate},
		{"missing_folio", func(in *RegisterReturnInput) { in.Folio = "" }, domain.ErrMissingFolio},
		{"no_items", func(in *RegisterReturnInput) { in.Items = nil }, ErrInvalidReturn},
		{"zero_quantity", func(in *RegisterReturnInput) { in.Items[0].Quantity = 0 }, domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReturnRepo{}
			uc := NewRegisterReturnUseCase(repo)
			uc.now = fixedClock("2025-03-10")

			in := validInput("F-1")
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(repo.InsertCalls) != 0 {
				t.Fatalf("repository should not be called on invalid input")
			}
		})
	}
}

func TestRegisterReturn_RepoError(t *testing.T) {
	dbErr := errors.New("db down")
	uc := NewRegisterReturnUseCase(&fakeReturnRepo{Err: dbErr})
	uc.now = fixedClock("2025-03-10")

	if _, err := uc.Execute(context.Background(), validInput("F-1")); !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
}

// ------------------------------------------------------------
// BULK
// ------------------------------------------------------------

func TestBulkRegister_MixedCreatedAndDuplicate(t *testing.T) {
	repo := &fakeReturnRepo{Results: []bool{true, false, true}}
	uc := NewRegisterReturnUseCase(repo)
	uc.now = fixedClock("2025-03-10")

	res, err := uc.BulkRegister(context.Background(), BulkRegisterInput{
		Returns: []RegisterReturnInput{validInput("F-1"), validInput("F-1"), validInput("F-2")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 2 || res.Duplicates != 1 {
		t.Fatalf("expected 2 created and 1 duplicate, got %+v", res)
	}
	if repo.BatchCalls != 1 {
		t.Fatalf("expected one batch write, got %d", repo.BatchCalls)
	}
}

func TestBulkRegister_RepoErrorReportsNothingWritten(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := &fakeReturnRepo{Err: dbErr}
	uc := NewRegisterReturnUseCase(repo)
	uc.now = fixedClock("2025-03-10")

	res, err := uc.BulkRegister(context.Background(), BulkRegisterInput{
		Returns: []RegisterReturnInput{validInput("F-1"), validInput("F-2")},
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected db error, got %v", err)
	}
	if res.Created != 0 || res.Duplicates != 0 {
		t.Fatalf("expected zero counts for a rolled back batch, got %+v", res)
	}
	if len(repo.InsertCalls) != 0 {
		t.Fatalf("expected nothing kept, got %d", len(repo.InsertCalls))
	}
}

func TestBulkRegister_InvalidItemWritesNothing(t *testing.T) {
	repo := &fakeReturnRepo{}
	uc := NewRegisterReturnUseCase(repo)
	uc.now = fixedClock("2025-03-10")

	bad := validInput("F-2")
	bad.Zone = ""

	_, err := uc.BulkRegister(context.Background(), BulkRegisterInput{
		Returns: []RegisterReturnInput{validInput("F-1"), bad},
	})
	if !errors.Is(err, domain.ErrMissingZone) {
		t.Fatalf("expected ErrMissingZone, got %v", err)
	}
	if len(repo.InsertCalls) != 0 {
		t.Fatalf("expected no inserts, got %d", len(repo.InsertCalls))
	}
}
