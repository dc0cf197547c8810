package store

import (
	"time"
)

// WriterConfig contains configuration for batch writers.
type WriterConfig struct {
	// BatchSize is the number of rows to accumulate before flushing.
	BatchSize int

	// FlushInterval is the maximum time between flushes.
	FlushInterval time.Duration
}

// DefaultWriterConfig returns sensible defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize:     1000,
		FlushInterval: 5 * time.Second,
	}
}

// klineRow represents a row for the klines table.
type klineRow struct {
	Symbol     string
	Interval   string
	OpenTime   int64  // ms since epoch
	CloseTime  int64  // ms since epoch
	Open       string // NUMERIC, exact decimal text
	High       string
	Low        string
	Close      string
	Volume     string
	NumTrades  int64
	ReceivedAt int64 // µs since epoch
}

// tradeRow represents a row for the agg_trades table.
type tradeRow struct {
	Symbol       string
	AggID        uint64
	Price        string // NUMERIC, exact decimal text
	Quantity     string
	FirstTradeID uint64
	LastTradeID  uint64
	TradeTime    int64 // ms since epoch
	BuyerIsMaker bool
	ReceivedAt   int64 // µs since epoch
}

// WriterMetrics holds metrics for a writer.
type WriterMetrics struct {
	Inserts   int64
	Conflicts int64
	Errors    int64
	Flushes   int64
}
