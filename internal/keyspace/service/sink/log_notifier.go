package sink

import (
	"context"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"go.uber.org/zap"
)

// LogNotifier writes matches to the structured log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("matches")}
}

func (n *LogNotifier) Name() string { return "log" }

func (n *LogNotifier) Notify(_ context.Context, item model.PrivateKeyItem) error {
	addresses := make([]string, 0, len(item.Matched))
	for _, addr := range item.Matched {
		addresses = append(addresses, addr.FullAddressPretty())
	}
	n.logger.Info("match found",
		zap.String("hex", item.Hex),
		zap.Strings("addresses", addresses),
	)
	return nil
}
