package clickhouse

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Conn is the subset of the ClickHouse connection used by the repository.
	Conn interface {
		QueryRow(ctx context.Context, query string, args ...any) Row
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
	Row interface {
		Scan(dest ...any) error
	}
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)
