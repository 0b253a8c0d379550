package postgres

import (
	"context"

	platformpg "returns-report-service/internal/platform/postgres"
)

// DB is satisfied by platformpg.NewDB and by the fakes in tests.
type DB interface {
	platformpg.Querier
	WithTx(ctx context.Context, fn func(tx platformpg.Querier) error) error
}
