//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package archive

import (
	"context"
	"time"
)

type (
	// Batch is the part of a ClickHouse batch the repository uses.
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}

	// Conn prepares insert batches.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	Metrics interface {
		Observe(operation, table string, rows int, err error, started time.Time)
	}

	// Writer stores archive rows.
	Writer interface {
		InsertBlocks(ctx context.Context, rows []BlockRow) error
		InsertTransactions(ctx context.Context, rows []TransactionRow) error
		InsertOutputs(ctx context.Context, rows []OutputRow) error
	}
)
