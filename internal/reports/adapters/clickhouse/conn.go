package clickhouse

import (
	"context"
	"fmt"
	"time"

	ch "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Batch is a prepared INSERT filled row by row and sent as one block.
type Batch interface {
	Append(v ...any) error
	Send() error
	Abort() error
}

type Conn interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) error
	PrepareBatch(ctx context.Context, query string) (Batch, error)
}

type Options struct {
	Addr     string
	Database string
	Username string
	Password string
}

// Open dials ClickHouse over the native protocol and pings it.
func Open(ctx context.Context, o Options) (driver.Conn, error) {
	conn, err := ch.Open(&ch.Options{
		Addr: []string{o.Addr},
		Auth: ch.Auth{
			Database: o.Database,
			Username: o.Username,
			Password: o.Password,
		},
		ClientInfo: ch.ClientInfo{
			Products: []struct {
				Name    string
				Version string
			}{{Name: "returns-report-service", Version: "1.0.0"}},
		},
		Compression: &ch.Compression{
			Method: ch.CompressionLZ4,
		},
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("opening clickhouse: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging clickhouse: %w", err)
	}

	return conn, nil
}

type nativeConn struct {
	conn driver.Conn
}

func NewConn(conn driver.Conn) Conn {
	return &nativeConn{conn: conn}
}

func (c *nativeConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *nativeConn) Exec(ctx context.Context, query string, args ...any) error {
	return c.conn.Exec(ctx, query, args...)
}

func (c *nativeConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := c.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}
