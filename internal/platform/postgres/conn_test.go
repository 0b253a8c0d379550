package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"
	"testing"
)

// recordingDriver is an in-memory database/sql driver that records executed
// statements and transaction outcomes.
type recordingDriver struct {
	mu        sync.Mutex
	execs     []string
	commits   int
	rollbacks int
	failOn    string
}

func (d *recordingDriver) Connect(ctx context.Context) (driver.Conn, error) {
	return &recordingConn{d: d}, nil
}

func (d *recordingDriver) Open(name string) (driver.Conn, error) {
	return &recordingConn{d: d}, nil
}

func (d *recordingDriver) Driver() driver.Driver { return d }

type recordingConn struct {
	d *recordingDriver
}

func (c *recordingConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *recordingConn) Close() error { return nil }

func (c *recordingConn) Begin() (driver.Tx, error) {
	return &recordingTx{d: c.d}, nil
}

func (c *recordingConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	if c.d.failOn != "" && strings.Contains(query, c.d.failOn) {
		return nil, errors.New("exec failed")
	}
	c.d.execs = append(c.d.execs, query)
	return driver.RowsAffected(1), nil
}

type recordingTx struct {
	d *recordingDriver
}

func (t *recordingTx) Commit() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.commits++
	return nil
}

func (t *recordingTx) Rollback() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.rollbacks++
	return nil
}

func openRecording(t *testing.T, d *recordingDriver) DB {
	t.Helper()
	db := sql.OpenDB(d)
	t.Cleanup(func() { db.Close() })
	return NewDB(db)
}

func TestWithTx_Commits(t *testing.T) {
	d := &recordingDriver{}
	db := openRecording(t, d)

	err := db.WithTx(context.Background(), func(tx Querier) error {
		for _, q := range []string{"INSERT one", "INSERT two"} {
			if _, err := tx.ExecContext(context.Background(), q); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.commits != 1 || d.rollbacks != 0 {
		t.Fatalf("expected 1 commit and no rollback, got %d/%d", d.commits, d.rollbacks)
	}
	if len(d.execs) != 2 {
		t.Fatalf("expected 2 statements, got %v", d.execs)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	d := &recordingDriver{failOn: "two"}
	db := openRecording(t, d)

	err := db.WithTx(context.Background(), func(tx Querier) error {
		for _, q := range []string{"INSERT one", "INSERT two", "INSERT three"} {
			if _, err := tx.ExecContext(context.Background(), q); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "exec failed") {
		t.Fatalf("expected exec error, got %v", err)
	}

	if d.commits != 0 || d.rollbacks != 1 {
		t.Fatalf("expected rollback only, got %d commits / %d rollbacks", d.commits, d.rollbacks)
	}
	if len(d.execs) != 1 {
		t.Fatalf("expected work to stop at the failing statement, got %v", d.execs)
	}
}

func TestWithTx_FnErrorIsReturned(t *testing.T) {
	d := &recordingDriver{}
	db := openRecording(t, d)
	sentinel := errors.New("stop")

	if err := db.WithTx(context.Background(), func(tx Querier) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if d.rollbacks != 1 {
		t.Fatalf("expected rollback, got %d", d.rollbacks)
	}
}
