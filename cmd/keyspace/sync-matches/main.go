package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/oracle"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/repository/clickhouse"
	"github.com/goodnatureofminers/keyspace-explorer/internal/metrics"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	OracleURL     string        `long:"oracle-url" env:"KEYSPACE_ORACLE_URL" description:"match oracle base URL" required:"true"`
	OracleTimeout time.Duration `long:"oracle-timeout" env:"KEYSPACE_ORACLE_TIMEOUT" description:"timeout of one oracle request" default:"30s"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"KEYSPACE_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("match sync failed", zap.Error(err))
	}
}

// run copies the oracle's stored matches into the local match table,
// skipping keys that are already present.
func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	client, err := oracle.NewClient(oracle.Config{
		BaseURL:        cfg.OracleURL,
		RequestTimeout: cfg.OracleTimeout,
	}, metrics.NewOracleClient(), logger)
	if err != nil {
		return fmt.Errorf("init oracle client: %w", err)
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	items, err := client.FetchMatches(ctx)
	if err != nil {
		return err
	}

	var saved, skipped int
	for _, item := range items {
		exists, err := repo.AlreadySaved(ctx, item)
		if err != nil {
			return err
		}
		if exists {
			skipped++
			continue
		}
		if err := repo.SaveMatch(ctx, item); err != nil {
			return err
		}
		saved++
	}

	logger.Info("matches synced",
		zap.Int("fetched", len(items)),
		zap.Int("saved", saved),
		zap.Int("skipped", skipped),
	)
	return nil
}
