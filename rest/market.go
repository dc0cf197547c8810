package rest

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rxtrade/binance-stream/stream"
)

// Ping checks connectivity to the API.
func (c *Client) Ping(ctx context.Context) error {
	var empty struct{}
	return c.get(ctx, "/ping", nil, &empty)
}

// ServerTime returns the venue's clock in milliseconds since the epoch.
func (c *Client) ServerTime(ctx context.Context) (int64, error) {
	var resp struct {
		ServerTime int64 `json:"serverTime"`
	}
	if err := c.get(ctx, "/time", nil, &resp); err != nil {
		return 0, err
	}
	return resp.ServerTime, nil
}

// KlinesRequest parameterizes a candle query. StartTime and EndTime are
// milliseconds since the epoch; zero means unset. Limit zero uses the venue
// default.
type KlinesRequest struct {
	Symbol    string
	Interval  stream.Interval
	StartTime int64
	EndTime   int64
	Limit     int
}

// Klines fetches historical candles, oldest first.
func (c *Client) Klines(ctx context.Context, req KlinesRequest) ([]Kline, error) {
	query := url.Values{}
	query.Set("symbol", req.Symbol)
	query.Set("interval", string(req.Interval))
	if req.StartTime != 0 {
		query.Set("startTime", strconv.FormatInt(req.StartTime, 10))
	}
	if req.EndTime != 0 {
		query.Set("endTime", strconv.FormatInt(req.EndTime, 10))
	}
	if req.Limit != 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	var klines []Kline
	if err := c.get(ctx, "/klines", query, &klines); err != nil {
		return nil, err
	}
	return klines, nil
}

// AggTradesRequest parameterizes an aggregated-trade query. FromID selects a
// starting aggregate id; zero means unset.
type AggTradesRequest struct {
	Symbol    string
	FromID    uint64
	StartTime int64
	EndTime   int64
	Limit     int
}

// AggTrades fetches historical aggregated trades.
func (c *Client) AggTrades(ctx context.Context, req AggTradesRequest) ([]AggTrade, error) {
	query := url.Values{}
	query.Set("symbol", req.Symbol)
	if req.FromID != 0 {
		query.Set("fromId", strconv.FormatUint(req.FromID, 10))
	}
	if req.StartTime != 0 {
		query.Set("startTime", strconv.FormatInt(req.StartTime, 10))
	}
	if req.EndTime != 0 {
		query.Set("endTime", strconv.FormatInt(req.EndTime, 10))
	}
	if req.Limit != 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	var trades []AggTrade
	if err := c.get(ctx, "/aggTrades", query, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// Depth fetches an order book snapshot. Limit zero uses the venue default.
func (c *Client) Depth(ctx context.Context, symbol string, limit int) (*OrderBook, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if limit != 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var book OrderBook
	if err := c.get(ctx, "/depth", query, &book); err != nil {
		return nil, err
	}
	return &book, nil
}
