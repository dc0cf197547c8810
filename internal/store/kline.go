package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rxtrade/binance-stream/internal/router"
)

// KlineWriter consumes KlineMsg from the router buffer and writes to the
// klines table.
type KlineWriter struct {
	cfg    WriterConfig
	logger *slog.Logger

	input *router.GrowableBuffer[router.KlineMsg]
	db    *pgxpool.Pool

	batch       []klineRow
	batchMu     sync.Mutex
	flushTicker *time.Ticker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	metrics WriterMetrics
}

// NewKlineWriter creates a new KlineWriter.
func NewKlineWriter(
	cfg WriterConfig,
	input *router.GrowableBuffer[router.KlineMsg],
	db *pgxpool.Pool,
	logger *slog.Logger,
) *KlineWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &KlineWriter{
		cfg:    cfg,
		input:  input,
		db:     db,
		logger: logger,
		batch:  make([]klineRow, 0, cfg.BatchSize),
	}
}

// Start begins consuming messages and writing to the database.
func (w *KlineWriter) Start(ctx context.Context) error {
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.flushTicker = time.NewTicker(w.cfg.FlushInterval)

	w.wg.Add(1)
	go w.consumeLoop()

	w.wg.Add(1)
	go w.flushLoop()

	w.logger.Info("kline writer started",
		"batch_size", w.cfg.BatchSize,
		"flush_interval", w.cfg.FlushInterval,
	)
	return nil
}

// Stop gracefully shuts down the writer.
func (w *KlineWriter) Stop(ctx context.Context) error {
	w.logger.Info("stopping kline writer")

	if w.cancel != nil {
		w.cancel()
	}

	if w.flushTicker != nil {
		w.flushTicker.Stop()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("kline writer stopped")
	case <-ctx.Done():
		w.logger.Warn("kline writer stop timed out")
	}

	w.flush()

	return nil
}

// Stats returns current metrics.
func (w *KlineWriter) Stats() WriterMetrics {
	w.batchMu.Lock()
	defer w.batchMu.Unlock()
	return w.metrics
}

func (w *KlineWriter) consumeLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
			msg, ok := w.input.TryReceive()
			if !ok {
				select {
				case <-w.ctx.Done():
					return
				case <-time.After(10 * time.Millisecond):
					continue
				}
			}

			w.handleMessage(msg)
		}
	}
}

func (w *KlineWriter) flushLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.flushTicker.C:
			w.flush()
		}
	}
}

func (w *KlineWriter) handleMessage(msg router.KlineMsg) {
	row := w.transform(msg)

	w.batchMu.Lock()
	w.batch = append(w.batch, row)
	shouldFlush := len(w.batch) >= w.cfg.BatchSize
	w.batchMu.Unlock()

	if shouldFlush {
		w.flush()
	}
}

// transform converts a KlineMsg to a klineRow.
func (w *KlineWriter) transform(msg router.KlineMsg) klineRow {
	return klineRow{
		Symbol:     msg.Symbol,
		Interval:   msg.Interval,
		OpenTime:   msg.OpenTime,
		CloseTime:  msg.CloseTime,
		Open:       msg.Open.String(),
		High:       msg.High.String(),
		Low:        msg.Low.String(),
		Close:      msg.Close.String(),
		Volume:     msg.Volume.String(),
		NumTrades:  msg.NumTrades,
		ReceivedAt: msg.ReceivedAt.UnixMicro(),
	}
}

func (w *KlineWriter) flush() {
	w.batchMu.Lock()
	if len(w.batch) == 0 {
		w.batchMu.Unlock()
		return
	}

	batch := w.batch
	w.batch = make([]klineRow, 0, w.cfg.BatchSize)
	w.batchMu.Unlock()

	start := time.Now()

	conflicts, err := w.batchInsert(batch)
	if err != nil {
		w.logger.Error("batch insert failed", "error", err, "count", len(batch))
		w.batchMu.Lock()
		w.metrics.Errors++
		w.batchMu.Unlock()
		return
	}

	w.batchMu.Lock()
	w.metrics.Inserts += int64(len(batch) - conflicts)
	w.metrics.Conflicts += int64(conflicts)
	w.metrics.Flushes++
	w.batchMu.Unlock()

	w.logger.Debug("flushed klines",
		"count", len(batch),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
func (w *KlineWriter) batchInsert(rows []klineRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(`
			INSERT INTO klines (symbol, interval, open_time, close_time, open, high, low, close, volume, num_trades, received_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (symbol, interval, open_time) DO NOTHING
		`, r.Symbol, r.Interval, r.OpenTime, r.CloseTime, r.Open, r.High, r.Low, r.Close, r.Volume, r.NumTrades, r.ReceivedAt)
	}

	results := w.db.SendBatch(w.ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}
