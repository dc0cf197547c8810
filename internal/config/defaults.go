package config

import (
	"time"

	"github.com/google/uuid"

	"github.com/rxtrade/binance-stream/stream"
)

// Default values for optional configuration fields.
const (
	DefaultMarket         = "spot"
	DefaultAPITimeout     = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 10
	DefaultMinConns       = 2
	DefaultKlineInterval  = "1m"
	DefaultRequestTimeout = stream.DefaultRequestTimeout
	DefaultBatchSize      = 1000
	DefaultFlushInterval  = 1 * time.Second
	DefaultBufferSize     = 10000
)

func (c *RecorderConfig) applyDefaults() {
	// A fresh id per run unless the operator pins one
	if c.Instance.ID == "" {
		c.Instance.ID = uuid.NewString()
	}

	// API defaults
	if c.API.Market == "" {
		c.API.Market = DefaultMarket
	}
	if c.API.WSURL == "" {
		if c.API.Market == "futures" {
			c.API.WSURL = stream.FuturesEndpoint
		} else {
			c.API.WSURL = stream.SpotEndpoint
		}
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	// Database defaults
	applyDBDefaults(&c.Database.Postgres)

	// Streams defaults
	if len(c.Streams.KlineIntervals) == 0 {
		c.Streams.KlineIntervals = []string{DefaultKlineInterval}
	}
	if c.Streams.RequestTimeout == 0 {
		c.Streams.RequestTimeout = DefaultRequestTimeout
	}

	// Writers defaults
	if c.Writers.BatchSize == 0 {
		c.Writers.BatchSize = DefaultBatchSize
	}
	if c.Writers.FlushInterval == 0 {
		c.Writers.FlushInterval = DefaultFlushInterval
	}
	if c.Writers.BufferSize == 0 {
		c.Writers.BufferSize = DefaultBufferSize
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
