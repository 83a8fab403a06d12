package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/derivation"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/keyrange"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/oracle"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/repository/clickhouse"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/service/scanner"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/service/sink"
	"github.com/goodnatureofminers/keyspace-explorer/internal/metrics"
	"github.com/goodnatureofminers/keyspace-explorer/internal/transport"
	"github.com/goodnatureofminers/keyspace-explorer/pkg/batcher"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	OracleURL            string        `long:"oracle-url" env:"KEYSPACE_ORACLE_URL" description:"match oracle base URL" required:"true"`
	OracleBackoff        time.Duration `long:"oracle-backoff" env:"KEYSPACE_ORACLE_BACKOFF" description:"delay between failed match checks" default:"3s"`
	OracleTimeout        time.Duration `long:"oracle-timeout" env:"KEYSPACE_ORACLE_TIMEOUT" description:"timeout of one oracle request" default:"30s"`
	OracleRPS            int           `long:"oracle-rps" env:"KEYSPACE_ORACLE_RPS" description:"oracle requests per second" default:"50"`
	MalformedPolicy      string        `long:"malformed-policy" env:"KEYSPACE_MALFORMED_POLICY" description:"handling of unreadable oracle responses (fail-open, retry)" default:"fail-open"`
	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"KEYSPACE_CLICKHOUSE_DSN" description:"ClickHouse DSN; matches are kept in memory when empty"`
	RangeStart           string        `long:"range-start" env:"KEYSPACE_RANGE_START" description:"hex lower bound of the scanned range"`
	RangeEnd             string        `long:"range-end" env:"KEYSPACE_RANGE_END" description:"hex upper bound of the scanned range"`
	MinBits              int           `long:"min-bits" env:"KEYSPACE_MIN_BITS" description:"lower bit length of the scanned range" default:"0"`
	MaxBits              int           `long:"max-bits" env:"KEYSPACE_MAX_BITS" description:"upper bit length of the scanned range" default:"256"`
	Cursor               string        `long:"cursor" env:"KEYSPACE_CURSOR" description:"hex start position; defaults to the range start"`
	BatchSize            int           `long:"batch-size" env:"KEYSPACE_BATCH_SIZE" description:"keys per foreground page" default:"45"`
	DeriveWorkers        int           `long:"derive-workers" env:"KEYSPACE_DERIVE_WORKERS" description:"parallel derivation workers" default:"8"`
	TelegramToken        string        `long:"telegram-token" env:"KEYSPACE_TELEGRAM_TOKEN" description:"Telegram bot token for match alerts"`
	TelegramChatID       string        `long:"telegram-chat-id" env:"KEYSPACE_TELEGRAM_CHAT_ID" description:"Telegram chat id for match alerts"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"KEYSPACE_JOURNAL_FLUSH_SIZE" description:"scan batch rows per journal flush" default:"500"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"KEYSPACE_JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"5s"`
	APIAddr              string        `long:"api-addr" env:"KEYSPACE_API_ADDR" description:"address of the control API" default:":8000"`
	MetricsAddr          string        `long:"metrics-addr" env:"KEYSPACE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	DisableRemoteStore   bool          `long:"disable-remote-store" env:"KEYSPACE_DISABLE_REMOTE_STORE" description:"do not mirror matches to the oracle"`
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
		logger.Fatal("keyspace scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	scanRange, cursor, err := parseRange(cfg)
	if err != nil {
		return err
	}
	policy, err := oracle.ParseMalformedPolicy(cfg.MalformedPolicy)
	if err != nil {
		return err
	}

	engine, err := derivation.NewEngine(derivation.DefaultRegistry(), logger.Named("derivation"))
	if err != nil {
		return fmt.Errorf("init derivation engine: %w", err)
	}
	client, err := oracle.NewClient(oracle.Config{
		BaseURL:           cfg.OracleURL,
		Backoff:           cfg.OracleBackoff,
		RequestTimeout:    cfg.OracleTimeout,
		RequestsPerSecond: cfg.OracleRPS,
		MalformedPolicy:   policy,
	}, metrics.NewOracleClient(), logger)
	if err != nil {
		return fmt.Errorf("init oracle client: %w", err)
	}

	sinkMetrics := metrics.NewSink()
	var (
		store   sink.Store = sink.NewMemoryStore()
		journal scanner.Journal
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		store = repo

		j, err := sink.NewJournal(repo, sinkMetrics, batcher.Config{
			FlushSize:     cfg.JournalFlushSize,
			FlushInterval: cfg.JournalFlushInterval,
		}, logger)
		if err != nil {
			return fmt.Errorf("init journal: %w", err)
		}
		j.Start(ctx)
		defer j.Stop()
		journal = j
	} else {
		logger.Warn("no ClickHouse DSN configured, matches are kept in memory")
	}

	notifiers := []sink.Notifier{sink.NewLogNotifier(logger)}
	if cfg.TelegramToken != "" {
		tg, err := sink.NewTelegramNotifier(sink.TelegramConfig{BotToken: cfg.TelegramToken, ChatID: cfg.TelegramChatID})
		if err != nil {
			return fmt.Errorf("init telegram notifier: %w", err)
		}
		notifiers = append(notifiers, tg)
	}
	var remote sink.RemoteStore
	if !cfg.DisableRemoteStore {
		remote = client
	}
	matchSink, err := sink.NewMatchSink(store, remote, notifiers, sinkMetrics, logger)
	if err != nil {
		return err
	}

	svc, err := scanner.New(scanner.Config{
		Range:         scanRange,
		Cursor:        cursor,
		BatchSize:     cfg.BatchSize,
		DeriveWorkers: cfg.DeriveWorkers,
	}, engine, client, matchSink, journal, metrics.NewScanner(), logger)
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return svc.Run(ctx)
	})
	g.Go(func() error {
		return serveAPI(ctx, cfg.APIAddr, transport.NewScannerHandler(svc, logger), logger)
	})
	svc.Start()
	return g.Wait()
}

// parseRange picks the explicit hex range when given and the bit window
// otherwise.
func parseRange(cfg config) (keyrange.Range, *big.Int, error) {
	var (
		r   keyrange.Range
		err error
	)
	switch {
	case cfg.RangeStart != "" || cfg.RangeEnd != "":
		start, perr := model.ParseHex(cfg.RangeStart)
		if perr != nil {
			return keyrange.Range{}, nil, fmt.Errorf("range start: %w", perr)
		}
		end, perr := model.ParseHex(cfg.RangeEnd)
		if perr != nil {
			return keyrange.Range{}, nil, fmt.Errorf("range end: %w", perr)
		}
		r, err = keyrange.New(start, end)
	default:
		r, err = keyrange.ForBitLength(cfg.MinBits, cfg.MaxBits)
	}
	if err != nil {
		return keyrange.Range{}, nil, err
	}

	if cfg.Cursor == "" {
		return r, nil, nil
	}
	cursor, err := model.ParseHex(cfg.Cursor)
	if err != nil {
		return keyrange.Range{}, nil, fmt.Errorf("cursor: %w", err)
	}
	return r, cursor, nil
}

func serveAPI(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown api server", zap.Error(err))
		}
	}()

	logger.Info("starting api server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
