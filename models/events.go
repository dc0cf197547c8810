package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// EventType is the value of the "e" member on a push frame. Spot and futures
// markets spell some kinds differently; Decode accepts both spellings and
// normalizes to the constants below.
type EventType string

const (
	EventAggTrade         EventType = "aggTrade"
	EventKline            EventType = "kline"
	EventMiniTicker       EventType = "24hrMiniTicker"
	EventTicker           EventType = "24hrTicker"
	EventBookTicker       EventType = "bookTicker"
	EventDepthUpdate      EventType = "depthUpdate"
	EventMarkPrice        EventType = "markPriceUpdate"
	EventForceOrder       EventType = "forceOrder"
	EventListenKeyExpired EventType = "listenKeyExpired"
)

// ErrUnknownEvent is returned by Decode for an "e" value this package has no
// struct for. The raw frame is still usable by the caller.
var ErrUnknownEvent = errors.New("unknown event type")

// Side is the taker side on an order event.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Event is implemented by every decoded push event.
type Event interface {
	Kind() EventType
}

// -----------------------------------------------------------------------------
// Event payloads
// -----------------------------------------------------------------------------

// AggTrade is one aggregated trade: fills at the same price from the same
// taker order collapsed into a single record.
type AggTrade struct {
	EventTime    int64           `json:"E"`
	Symbol       string          `json:"s"`
	ID           uint64          `json:"a"`
	Price        decimal.Decimal `json:"p"`
	Quantity     decimal.Decimal `json:"q"`
	FirstTradeID uint64          `json:"f"`
	LastTradeID  uint64          `json:"l"`
	TradeTime    int64           `json:"T"`
	BuyerIsMaker bool            `json:"m"`
}

func (AggTrade) Kind() EventType { return EventAggTrade }

// Kline is the candle payload nested under "k".
type Kline struct {
	StartTime           int64           `json:"t"`
	CloseTime           int64           `json:"T"`
	Symbol              string          `json:"s"`
	Interval            string          `json:"i"`
	FirstTradeID        int64           `json:"f"`
	LastTradeID         int64           `json:"L"`
	Open                decimal.Decimal `json:"o"`
	Close               decimal.Decimal `json:"c"`
	High                decimal.Decimal `json:"h"`
	Low                 decimal.Decimal `json:"l"`
	Volume              decimal.Decimal `json:"v"`
	NumTrades           int64           `json:"n"`
	IsClosed            bool            `json:"x"`
	QuoteVolume         decimal.Decimal `json:"q"`
	TakerBuyBaseVolume  decimal.Decimal `json:"V"`
	TakerBuyQuoteVolume decimal.Decimal `json:"Q"`
}

// KlineEvent is a candle update for one symbol and interval.
type KlineEvent struct {
	EventTime int64  `json:"E"`
	Symbol    string `json:"s"`
	Kline     Kline  `json:"k"`
}

func (KlineEvent) Kind() EventType { return EventKline }

// MiniTicker is the compact rolling-24h OHLCV for one symbol.
type MiniTicker struct {
	EventTime   int64           `json:"E"`
	Symbol      string          `json:"s"`
	Close       decimal.Decimal `json:"c"`
	Open        decimal.Decimal `json:"o"`
	High        decimal.Decimal `json:"h"`
	Low         decimal.Decimal `json:"l"`
	BaseVolume  decimal.Decimal `json:"v"`
	QuoteVolume decimal.Decimal `json:"q"`
}

func (MiniTicker) Kind() EventType { return EventMiniTicker }

// Ticker is the full rolling-24h statistics for one symbol.
type Ticker struct {
	EventTime          int64           `json:"E"`
	Symbol             string          `json:"s"`
	PriceChange        decimal.Decimal `json:"p"`
	PriceChangePercent decimal.Decimal `json:"P"`
	WeightedAvgPrice   decimal.Decimal `json:"w"`
	LastPrice          decimal.Decimal `json:"c"`
	LastQuantity       decimal.Decimal `json:"Q"`
	Open               decimal.Decimal `json:"o"`
	High               decimal.Decimal `json:"h"`
	Low                decimal.Decimal `json:"l"`
	BaseVolume         decimal.Decimal `json:"v"`
	QuoteVolume        decimal.Decimal `json:"q"`
	OpenTime           int64           `json:"O"`
	CloseTime          int64           `json:"C"`
	FirstTradeID       int64           `json:"F"`
	LastTradeID        int64           `json:"L"`
	NumTrades          int64           `json:"n"`
}

func (Ticker) Kind() EventType { return EventTicker }

// BookTicker is a best bid/ask update for one symbol.
type BookTicker struct {
	EventTime       int64           `json:"E"`
	Symbol          string          `json:"s"`
	UpdateID        uint64          `json:"u"`
	TransactionTime int64           `json:"T"`
	BestBidPrice    decimal.Decimal `json:"b"`
	BestBidQty      decimal.Decimal `json:"B"`
	BestAskPrice    decimal.Decimal `json:"a"`
	BestAskQty      decimal.Decimal `json:"A"`
}

func (BookTicker) Kind() EventType { return EventBookTicker }

// PriceLevel is one (price, quantity) pair from a depth payload, which the
// venue encodes as a two-element array of strings.
type PriceLevel struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var pair [2]decimal.Decimal
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("price level: %w", err)
	}
	l.Price, l.Quantity = pair[0], pair[1]
	return nil
}

// DepthUpdate is an order book diff covering updates FirstUpdateID through
// LastUpdateID. A zero quantity removes the level.
type DepthUpdate struct {
	EventTime        int64        `json:"E"`
	Symbol           string       `json:"s"`
	TransactionTime  int64        `json:"T"`
	FirstUpdateID    uint64       `json:"U"`
	LastUpdateID     uint64       `json:"u"`
	PrevLastUpdateID uint64       `json:"pu"`
	Bids             []PriceLevel `json:"b"`
	Asks             []PriceLevel `json:"a"`
}

func (DepthUpdate) Kind() EventType { return EventDepthUpdate }

// MarkPrice is a futures mark price and funding update.
type MarkPrice struct {
	EventTime       int64           `json:"E"`
	Symbol          string          `json:"s"`
	Price           decimal.Decimal `json:"p"`
	SettlePrice     decimal.Decimal `json:"P"`
	IndexPrice      decimal.Decimal `json:"i"`
	FundingRate     decimal.Decimal `json:"r"`
	NextFundingTime int64           `json:"T"`
}

func (MarkPrice) Kind() EventType { return EventMarkPrice }

// ForceOrderDetails is the liquidation order nested under "o".
type ForceOrderDetails struct {
	Symbol         string          `json:"s"`
	Side           Side            `json:"S"`
	OrderType      string          `json:"o"`
	TimeInForce    string          `json:"f"`
	OriginalQty    decimal.Decimal `json:"q"`
	Price          decimal.Decimal `json:"p"`
	AvgPrice       decimal.Decimal `json:"ap"`
	Status         string          `json:"X"`
	LastFilledQty  decimal.Decimal `json:"l"`
	AccumFilledQty decimal.Decimal `json:"z"`
	TradeTime      int64           `json:"T"`
}

// ForceOrder is a liquidation order event.
type ForceOrder struct {
	EventTime int64             `json:"E"`
	Order     ForceOrderDetails `json:"o"`
}

func (ForceOrder) Kind() EventType { return EventForceOrder }

// ListenKeyExpired signals that the user-data listen key is no longer valid
// and must be re-created over REST.
type ListenKeyExpired struct {
	EventTime int64  `json:"E"`
	ListenKey string `json:"listenKey"`
}

func (ListenKeyExpired) Kind() EventType { return EventListenKeyExpired }

// -----------------------------------------------------------------------------
// Decoding
// -----------------------------------------------------------------------------

// combinedFrame is the wrapper used on combined-stream connections.
type combinedFrame struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
}

type eventProbe struct {
	Type EventType `json:"e"`
}

// Decode parses one raw push frame into its typed event. Combined-stream
// wrappers ({"stream","data"}) are unwrapped first. Frames whose "e" value is
// not known here return ErrUnknownEvent.
func Decode(data []byte) (Event, error) {
	var combined combinedFrame
	if err := json.Unmarshal(data, &combined); err == nil && combined.Stream != "" && len(combined.Data) > 0 {
		data = combined.Data
	}

	var probe eventProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("event envelope: %w", err)
	}

	var target Event
	switch probe.Type {
	case EventAggTrade:
		target = &AggTrade{}
	case EventKline:
		target = &KlineEvent{}
	case EventMiniTicker, "miniTicker":
		target = &MiniTicker{}
	case EventTicker, "ticker":
		target = &Ticker{}
	case EventBookTicker:
		target = &BookTicker{}
	case EventDepthUpdate:
		target = &DepthUpdate{}
	case EventMarkPrice:
		target = &MarkPrice{}
	case EventForceOrder:
		target = &ForceOrder{}
	case EventListenKeyExpired:
		target = &ListenKeyExpired{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, probe.Type)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("decode %s event: %w", probe.Type, err)
	}
	return target, nil
}
