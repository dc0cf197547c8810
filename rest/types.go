package rest

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rxtrade/binance-stream/models"
)

// Kline is one historical candle. The venue serializes it as a positional
// array, so the struct carries a custom decoder.
type Kline struct {
	OpenTime            int64
	Open                decimal.Decimal
	High                decimal.Decimal
	Low                 decimal.Decimal
	Close               decimal.Decimal
	Volume              decimal.Decimal
	CloseTime           int64
	QuoteVolume         decimal.Decimal
	NumTrades           int64
	TakerBuyBaseVolume  decimal.Decimal
	TakerBuyQuoteVolume decimal.Decimal
}

func (k *Kline) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("kline record: %w", err)
	}
	// The trailing "ignore" field may or may not be present.
	if len(fields) < 11 {
		return fmt.Errorf("kline record: %d fields, want at least 11", len(fields))
	}

	targets := []any{
		&k.OpenTime, &k.Open, &k.High, &k.Low, &k.Close, &k.Volume,
		&k.CloseTime, &k.QuoteVolume, &k.NumTrades,
		&k.TakerBuyBaseVolume, &k.TakerBuyQuoteVolume,
	}
	for i, target := range targets {
		if err := json.Unmarshal(fields[i], target); err != nil {
			return fmt.Errorf("kline record field %d: %w", i, err)
		}
	}
	return nil
}

// AggTrade is one historical aggregated trade.
type AggTrade struct {
	ID           uint64          `json:"a"`
	Price        decimal.Decimal `json:"p"`
	Quantity     decimal.Decimal `json:"q"`
	FirstTradeID uint64          `json:"f"`
	LastTradeID  uint64          `json:"l"`
	TradeTime    int64           `json:"T"`
	BuyerIsMaker bool            `json:"m"`
}

// OrderBook is a full depth snapshot.
type OrderBook struct {
	LastUpdateID uint64              `json:"lastUpdateId"`
	Bids         []models.PriceLevel `json:"bids"`
	Asks         []models.PriceLevel `json:"asks"`
}
