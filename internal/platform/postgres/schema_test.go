package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
)

type fakeExecer struct {
	queries []string
	failAt  int
}

func (f *fakeExecer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.queries = append(f.queries, query)
	if f.failAt > 0 && len(f.queries) == f.failAt {
		return nil, errors.New("syntax error")
	}
	return nil, nil
}

func TestMigrate(t *testing.T) {
	db := &fakeExecer{}

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(db.queries) != 1+len(migrations) {
		t.Fatalf("expected %d statements, got %d", 1+len(migrations), len(db.queries))
	}
	for _, table := range []string{"returns", "return_items", "people", "aisle_assignments"} {
		if !strings.Contains(db.queries[0], "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Errorf("schema does not create %s", table)
		}
	}
}

func TestMigrate_Errors(t *testing.T) {
	if err := Migrate(context.Background(), &fakeExecer{failAt: 1}); err == nil || !strings.Contains(err.Error(), "creating schema") {
		t.Fatalf("expected schema error, got %v", err)
	}
	if err := Migrate(context.Background(), &fakeExecer{failAt: 3}); err == nil || !strings.Contains(err.Error(), "migration 2") {
		t.Fatalf("expected migration 2 error, got %v", err)
	}
}
