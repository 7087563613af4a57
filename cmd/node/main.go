package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/powledger/internal/clock"
	"github.com/goodnatureofminers/powledger/internal/ledger/archive"
	"github.com/goodnatureofminers/powledger/internal/ledger/mempool"
	"github.com/goodnatureofminers/powledger/internal/ledger/pow"
	"github.com/goodnatureofminers/powledger/internal/ledger/service"
	"github.com/goodnatureofminers/powledger/internal/ledger/transaction"
	"github.com/goodnatureofminers/powledger/internal/ledger/validation"
	"github.com/goodnatureofminers/powledger/internal/ledger/wallet"
	"github.com/goodnatureofminers/powledger/internal/metrics"
	"github.com/goodnatureofminers/powledger/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	HTTPAddr             string        `long:"http-addr" env:"POWLEDGER_HTTP_ADDR" description:"address for the ledger HTTP API" default:":3001"`
	MetricsAddr          string        `long:"metrics-addr" env:"POWLEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	WalletKey            string        `long:"wallet-key" env:"POWLEDGER_WALLET_KEY" description:"hex encoded private key of the node wallet"`
	WalletFile           string        `long:"wallet-file" env:"POWLEDGER_WALLET_FILE" description:"file holding the node wallet key, created when missing"`
	Mine                 bool          `long:"mine" env:"POWLEDGER_MINE" description:"mine rewarded blocks continuously"`
	VerifyWorkers        int           `long:"verify-workers" env:"POWLEDGER_VERIFY_WORKERS" description:"workers verifying transaction signatures" default:"4"`
	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"POWLEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN of the block archive, archiving is off when empty"`
	ArchiveFlushSize     int           `long:"archive-flush-size" env:"POWLEDGER_ARCHIVE_FLUSH_SIZE" description:"blocks per archive batch" default:"100"`
	ArchiveFlushInterval time.Duration `long:"archive-flush-interval" env:"POWLEDGER_ARCHIVE_FLUSH_INTERVAL" description:"maximum delay before an archive batch is written" default:"2s"`
	ArchiveRPS           int           `long:"archive-rps" env:"POWLEDGER_ARCHIVE_RPS" description:"archive batches per second" default:"5"`
	ArchiveMaxPending    int           `long:"archive-max-pending" env:"POWLEDGER_ARCHIVE_MAX_PENDING" description:"blocks queued for the archive before new ones are dropped" default:"100000"`
	LogLevel             string        `long:"log-level" env:"POWLEDGER_LOG_LEVEL" description:"log level" default:"info"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger node failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	w, err := loadWallet(cfg)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}

	var observers []service.Observer
	var archiver *archive.Archiver
	if cfg.ClickhouseDSN != "" {
		repo, err := archive.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init archive repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		archiver, err = archive.NewArchiver(repo, archive.Config{
			FlushSize:     cfg.ArchiveFlushSize,
			FlushInterval: cfg.ArchiveFlushInterval,
			RPS:           cfg.ArchiveRPS,
			MaxPending:    cfg.ArchiveMaxPending,
		}, logger)
		if err != nil {
			return fmt.Errorf("init archiver: %w", err)
		}
		archiver.Start(ctx)
		defer archiver.Stop()
		observers = append(observers, archiver)
	}

	processor := transaction.NewProcessor(cfg.VerifyWorkers)
	validator, err := validation.NewValidator(processor, clock.NowUnix, logger)
	if err != nil {
		return fmt.Errorf("init validator: %w", err)
	}
	pool := mempool.New(logger, metrics.NewMempool())
	broadcaster := newLogBroadcaster(logger)

	coordinator, err := service.NewCoordinator(
		validator,
		processor,
		pool,
		broadcaster,
		metrics.NewLedger(),
		logger,
		observers...,
	)
	if err != nil {
		return fmt.Errorf("init coordinator: %w", err)
	}
	if archiver != nil {
		archiver.ChainReplaced(coordinator.Chain())
	}

	node, err := service.NewNode(
		coordinator,
		pow.NewMiner(logger, metrics.NewMiner()),
		pool,
		w,
		broadcaster,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init node: %w", err)
	}

	handler, err := transport.NewLedgerHandler(node, logger)
	if err != nil {
		return fmt.Errorf("init http handler: %w", err)
	}

	if cfg.Mine {
		go func() {
			if err := node.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("mining stopped", zap.Error(err))
			}
		}()
	}

	return serveHTTP(ctx, cfg.HTTPAddr, cors.Default().Handler(handler), logger)
}

func loadWallet(cfg config) (*wallet.Wallet, error) {
	switch {
	case cfg.WalletKey != "":
		return wallet.FromHex(cfg.WalletKey)
	case cfg.WalletFile != "":
		return wallet.LoadOrCreate(cfg.WalletFile)
	default:
		return wallet.Generate()
	}
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
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
