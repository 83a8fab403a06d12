package sink

import (
	"context"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the local record of confirmed matches, keyed by hex.
	Store interface {
		AlreadySaved(ctx context.Context, item model.PrivateKeyItem) (bool, error)
		SaveMatch(ctx context.Context, item model.PrivateKeyItem) error
	}
	RemoteStore interface {
		StoreMatch(ctx context.Context, item model.PrivateKeyItem) error
	}
	Notifier interface {
		Name() string
		Notify(ctx context.Context, item model.PrivateKeyItem) error
	}
	JournalStore interface {
		InsertScanBatches(ctx context.Context, batches []model.ScanBatch) error
	}
	Metrics interface {
		Observe(operation, target string, err error, started time.Time)
		ObserveJournalFlush(rows int)
	}
)
