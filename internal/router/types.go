package router

import (
	"time"

	"github.com/shopspring/decimal"
)

// RouterConfig holds configuration for the event router.
type RouterConfig struct {
	// Output buffer initial sizes
	KlineBufferSize int // Default: 1000
	TradeBufferSize int // Default: 5000
}

// DefaultRouterConfig returns default configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		KlineBufferSize: 1000,
		TradeBufferSize: 5000,
	}
}

// KlineMsg is a closed candle bound for the kline writer. In-progress candle
// updates are dropped at the router; only the final update per bucket lands.
type KlineMsg struct {
	Symbol    string
	Interval  string
	OpenTime  int64 // ms since epoch
	CloseTime int64 // ms since epoch
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    decimal.Decimal
	NumTrades int64

	ReceivedAt time.Time
}

// TradeMsg is an aggregated trade bound for the trade writer.
type TradeMsg struct {
	Symbol       string
	AggID        uint64
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	FirstTradeID uint64
	LastTradeID  uint64
	TradeTime    int64 // ms since epoch
	BuyerIsMaker bool

	ReceivedAt time.Time
}
