package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"returns-report-service/internal/returns/core/domain"
	"returns-report-service/internal/returns/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = domain.ErrInvalidStatus
	ErrFolioTaken     = domain.ErrFolioTaken
	ErrInvalidID      = errors.New("invalid return id")
	ErrReturnNotFound = errors.New("return not found")
)

type UpdateReturnUseCase struct {
	repo ports.ReturnRepositoryPort
	now  func() time.Time
}

func NewUpdateReturnUseCase(repo ports.ReturnRepositoryPort) *UpdateReturnUseCase {
	return &UpdateReturnUseCase{repo: repo, now: time.Now}
}

// Edit replaces the data and items of the return id with in, validated the
// same way as a new return. The status is left as it is. Unlike registration
// the date is required.
func (uc *UpdateReturnUseCase) Edit(ctx context.Context, id string, in RegisterReturnInput) (*domain.Return, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, ErrInvalidDate
	}

	r, err := buildReturn(in, uc.now())
	if err != nil {
		return nil, err
	}
	r.ID = rid

	found, err := uc.repo.UpdateReturn(ctx, r)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrReturnNotFound
	}

	stored, err := uc.repo.GetReturn(ctx, rid)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrReturnNotFound
	}
	return stored, nil
}

func (uc *UpdateReturnUseCase) ChangeStatus(ctx context.Context, id, status string) (domain.Status, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidID
	}

	s, err := domain.ParseStatus(status)
	if err != nil {
		return "", err
	}

	found, err := uc.repo.UpdateStatus(ctx, rid, s)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrReturnNotFound
	}

	return s, nil
}

func (uc *UpdateReturnUseCase) Delete(ctx context.Context, id string) error {
	rid, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	found, err := uc.repo.DeleteReturn(ctx, rid)
	if err != nil {
		return err
	}
	if !found {
		return ErrReturnNotFound
	}

	return nil
}
