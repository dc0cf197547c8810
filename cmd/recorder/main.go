package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rxtrade/binance-stream/internal/config"
	"github.com/rxtrade/binance-stream/internal/router"
	"github.com/rxtrade/binance-stream/internal/store"
	"github.com/rxtrade/binance-stream/internal/version"
	"github.com/rxtrade/binance-stream/rest"
	"github.com/rxtrade/binance-stream/stream"
)

func main() {
	configPath := flag.String("config", "configs/recorder.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting recorder",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"market", cfg.API.Market,
		"symbols", cfg.Streams.Symbols,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("recorder failed", "error", err)
		os.Exit(1)
	}

	logger.Info("recorder stopped")
}

func run(ctx context.Context, cfg *config.RecorderConfig, logger *slog.Logger) error {
	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	db, err := store.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("database connected")

	// Check venue connectivity and clock skew over REST
	restOpts := []rest.ClientOption{
		rest.WithLogger(logger),
		rest.WithTimeout(cfg.API.Timeout),
		rest.WithRetries(cfg.API.MaxRetries, time.Second),
	}
	if cfg.API.RestURL != "" {
		restOpts = append(restOpts, rest.WithBaseURL(cfg.API.RestURL))
	}
	if cfg.API.APIKey != "" {
		restOpts = append(restOpts, rest.WithAPIKey(cfg.API.APIKey))
	}

	market := rest.Spot
	if cfg.API.Market == "futures" {
		market = rest.Futures
	}
	restClient := rest.NewClient(market, restOpts...)

	if err := restClient.Ping(ctx); err != nil {
		return err
	}
	serverTime, err := restClient.ServerTime(ctx)
	if err != nil {
		return err
	}
	skew := time.Since(time.UnixMilli(serverTime))
	logger.Info("venue reachable", "server_time", serverTime, "clock_skew", skew)

	// Open the stream
	client, events, err := stream.Dial(ctx, cfg.API.WSURL, stream.WithLogger(logger))
	if err != nil {
		return err
	}
	defer client.Close()

	names := streamNames(cfg.Streams)
	if _, err := client.SendRequest(ctx, stream.Request{
		Method:  stream.MethodSubscribe,
		Params:  streamParams(names),
		Timeout: cfg.Streams.RequestTimeout,
	}); err != nil {
		return err
	}
	logger.Info("subscribed", "streams", len(names))

	// Route and persist
	r := router.NewRouter(router.RouterConfig{
		KlineBufferSize: cfg.Writers.BufferSize,
		TradeBufferSize: cfg.Writers.BufferSize,
	}, events, logger)
	if err := r.Start(ctx); err != nil {
		return err
	}

	writerCfg := store.WriterConfig{
		BatchSize:     cfg.Writers.BatchSize,
		FlushInterval: cfg.Writers.FlushInterval,
	}
	klineWriter := store.NewKlineWriter(writerCfg, r.Buffers().Kline, db, logger)
	tradeWriter := store.NewTradeWriter(writerCfg, r.Buffers().Trade, db, logger)

	if err := klineWriter.Start(ctx); err != nil {
		return err
	}
	if err := tradeWriter.Start(ctx); err != nil {
		return err
	}

	logger.Info("recorder running", "instance_id", cfg.Instance.ID)

	// Run until a shutdown signal or stream death, whichever comes first
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return gctx.Err()
		case <-client.Done():
			return errors.New("stream terminated")
		}
	})
	runErr := g.Wait()

	logger.Info("shutting down...")
	client.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	r.Stop(shutdownCtx)
	klineWriter.Stop(shutdownCtx)
	tradeWriter.Stop(shutdownCtx)

	logger.Info("writer totals",
		"klines", klineWriter.Stats().Inserts,
		"trades", tradeWriter.Stats().Inserts,
	)

	return runErr
}

// streamNames expands the configured symbols and intervals into stream names.
func streamNames(cfg config.StreamsConfig) []stream.StreamName {
	var names []stream.StreamName
	for _, symbol := range cfg.Symbols {
		for _, iv := range cfg.KlineIntervals {
			names = append(names, stream.Kline(symbol, stream.Interval(iv)))
		}
		if cfg.Trades {
			names = append(names, stream.AggTrade(symbol))
		}
	}
	return names
}

func streamParams(names []stream.StreamName) []any {
	params := make([]any, len(names))
	for i, n := range names {
		params[i] = string(n)
	}
	return params
}
