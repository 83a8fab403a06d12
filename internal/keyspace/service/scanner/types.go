package scanner

import (
	"context"
	"math/big"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Deriver interface {
		Derive(index *big.Int) []model.CryptoAddress
	}
	MatchChecker interface {
		CheckMatches(ctx context.Context, addresses []string) (map[string]struct{}, error)
		Connecting() bool
	}
	MatchSink interface {
		AlreadySaved(ctx context.Context, item model.PrivateKeyItem) (bool, error)
		Save(ctx context.Context, item model.PrivateKeyItem) error
		Notify(ctx context.Context, item model.PrivateKeyItem)
	}
	Journal interface {
		Record(ctx context.Context, batch model.ScanBatch)
	}
	Metrics interface {
		ObserveBatch(kind model.ScanKind, err error, keys, addresses, hits int, started time.Time)
		IncForegroundRejected()
		SetDragQueueDepth(depth int)
		SetManualActive(active bool)
	}
)
