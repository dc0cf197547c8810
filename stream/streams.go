package stream

import (
	"fmt"
	"strings"
)

// StreamName identifies one push stream on the venue. Values are built by the
// constructors below; UserData passes a listen key through unchanged.
type StreamName string

// Interval is a candlestick chart interval.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval3m  Interval = "3m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval2h  Interval = "2h"
	Interval4h  Interval = "4h"
	Interval6h  Interval = "6h"
	Interval8h  Interval = "8h"
	Interval12h Interval = "12h"
	Interval1d  Interval = "1d"
	Interval3d  Interval = "3d"
	Interval1w  Interval = "1w"
	Interval1M  Interval = "1M"
)

// AggTrade streams aggregated trades for a symbol.
func AggTrade(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@aggTrade")
}

// Kline streams candlestick updates for a symbol at the given interval.
func Kline(symbol string, interval Interval) StreamName {
	return StreamName(fmt.Sprintf("%s@kline_%s", strings.ToLower(symbol), interval))
}

// MiniTicker streams the rolling 24h mini ticker for a symbol.
func MiniTicker(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@miniTicker")
}

// AllMiniTickers streams mini tickers for every market.
func AllMiniTickers() StreamName { return "!miniTicker@arr" }

// Ticker streams the rolling 24h full ticker for a symbol.
func Ticker(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@ticker")
}

// AllTickers streams full tickers for every market.
func AllTickers() StreamName { return "!ticker@arr" }

// BookTicker streams best bid/ask updates for a symbol.
func BookTicker(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@bookTicker")
}

// AllBookTickers streams best bid/ask updates for every market.
func AllBookTickers() StreamName { return "!bookTicker" }

// Depth streams order book diffs for a symbol at the default update speed.
func Depth(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@depth")
}

// Depth100ms streams order book diffs at 100ms update speed.
func Depth100ms(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@depth@100ms")
}

// Depth500ms streams order book diffs at 500ms update speed.
func Depth500ms(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@depth@500ms")
}

// PartialDepth streams top-of-book snapshots with the given number of levels
// (5, 10 or 20).
func PartialDepth(symbol string, levels int) StreamName {
	return StreamName(fmt.Sprintf("%s@depth%d", strings.ToLower(symbol), levels))
}

// PartialDepth100ms streams partial book snapshots at 100ms update speed.
func PartialDepth100ms(symbol string, levels int) StreamName {
	return StreamName(fmt.Sprintf("%s@depth%d@100ms", strings.ToLower(symbol), levels))
}

// MarkPrice streams mark price and funding rate updates for a symbol.
func MarkPrice(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@markPrice")
}

// MarkPrice1s streams mark price updates every second.
func MarkPrice1s(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@markPrice@1s")
}

// AllMarkPrices streams mark prices for every market.
func AllMarkPrices() StreamName { return "!markPrice@arr" }

// AllMarkPrices1s streams mark prices for every market every second.
func AllMarkPrices1s() StreamName { return "!markPrice@arr@1s" }

// ForceOrder streams liquidation orders for a symbol.
func ForceOrder(symbol string) StreamName {
	return StreamName(strings.ToLower(symbol) + "@forceOrder")
}

// AllForceOrders streams liquidation orders for every market.
func AllForceOrders() StreamName { return "!forceOrder@arr" }

// UserData streams account and order updates for a listen key obtained from
// the REST API.
func UserData(listenKey string) StreamName { return StreamName(listenKey) }
