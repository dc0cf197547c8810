package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecode_AggTrade(t *testing.T) {
	data := []byte(`{
		"e": "aggTrade", "E": 1693200000123, "s": "BTCUSDT",
		"a": 26129, "p": "25850.10", "q": "0.025",
		"f": 100, "l": 105, "T": 1693200000120, "m": true
	}`)

	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	trade, ok := ev.(*AggTrade)
	if !ok {
		t.Fatalf("decoded type = %T, want *AggTrade", ev)
	}
	if trade.Symbol != "BTCUSDT" {
		t.Errorf("Symbol = %q", trade.Symbol)
	}
	if !trade.Price.Equal(decimal.RequireFromString("25850.10")) {
		t.Errorf("Price = %s, want 25850.10", trade.Price)
	}
	if trade.FirstTradeID != 100 || trade.LastTradeID != 105 {
		t.Errorf("trade id range = [%d, %d]", trade.FirstTradeID, trade.LastTradeID)
	}
	if !trade.BuyerIsMaker {
		t.Error("BuyerIsMaker = false, want true")
	}
}

func TestDecode_Kline(t *testing.T) {
	data := []byte(`{
		"e": "kline", "E": 1693200060000, "s": "ETHUSDT",
		"k": {
			"t": 1693200000000, "T": 1693200059999, "s": "ETHUSDT", "i": "1m",
			"f": 500, "L": 520,
			"o": "1650.00", "c": "1652.30", "h": "1653.00", "l": "1649.50",
			"v": "120.5", "n": 21, "x": true,
			"q": "199000.12", "V": "60.1", "Q": "99234.55"
		}
	}`)

	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	kline, ok := ev.(*KlineEvent)
	if !ok {
		t.Fatalf("decoded type = %T, want *KlineEvent", ev)
	}
	if kline.Kline.Interval != "1m" {
		t.Errorf("Interval = %q", kline.Kline.Interval)
	}
	if !kline.Kline.IsClosed {
		t.Error("IsClosed = false, want true")
	}
	if !kline.Kline.Close.Equal(decimal.RequireFromString("1652.30")) {
		t.Errorf("Close = %s", kline.Kline.Close)
	}
	if kline.Kline.NumTrades != 21 {
		t.Errorf("NumTrades = %d", kline.Kline.NumTrades)
	}
}

func TestDecode_DepthUpdate(t *testing.T) {
	data := []byte(`{
		"e": "depthUpdate", "E": 1693200000500, "s": "BTCUSDT",
		"U": 157, "u": 160, "pu": 149,
		"b": [["25849.90", "1.5"], ["25849.80", "0"]],
		"a": [["25850.10", "2.25"]]
	}`)

	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	depth, ok := ev.(*DepthUpdate)
	if !ok {
		t.Fatalf("decoded type = %T, want *DepthUpdate", ev)
	}
	if len(depth.Bids) != 2 || len(depth.Asks) != 1 {
		t.Fatalf("levels = %d bids, %d asks", len(depth.Bids), len(depth.Asks))
	}
	if !depth.Bids[0].Price.Equal(decimal.RequireFromString("25849.90")) {
		t.Errorf("bid price = %s", depth.Bids[0].Price)
	}
	if !depth.Bids[1].Quantity.IsZero() {
		t.Errorf("removed level quantity = %s, want 0", depth.Bids[1].Quantity)
	}
	if depth.FirstUpdateID != 157 || depth.LastUpdateID != 160 {
		t.Errorf("update range = [%d, %d]", depth.FirstUpdateID, depth.LastUpdateID)
	}
}

func TestDecode_TickerAliases(t *testing.T) {
	// Spot spells the rolling ticker "24hrTicker", the compact form
	// "24hrMiniTicker"; futures drops the prefix on some payloads.
	for _, tag := range []string{"24hrMiniTicker", "miniTicker"} {
		data := []byte(`{"e":"` + tag + `","E":1,"s":"BNBUSDT","c":"215.3","o":"210.0","h":"216.0","l":"209.5","v":"1000","q":"213000"}`)
		ev, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", tag, err)
		}
		if _, ok := ev.(*MiniTicker); !ok {
			t.Errorf("Decode(%s) type = %T, want *MiniTicker", tag, ev)
		}
	}
}

func TestDecode_MarkPrice(t *testing.T) {
	data := []byte(`{
		"e": "markPriceUpdate", "E": 1693200001000, "s": "BTCUSDT",
		"p": "25852.11", "P": "25851.90", "i": "25853.00",
		"r": "0.0001", "T": 1693228800000
	}`)

	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	mark, ok := ev.(*MarkPrice)
	if !ok {
		t.Fatalf("decoded type = %T, want *MarkPrice", ev)
	}
	if !mark.FundingRate.Equal(decimal.RequireFromString("0.0001")) {
		t.Errorf("FundingRate = %s", mark.FundingRate)
	}
	if mark.NextFundingTime != 1693228800000 {
		t.Errorf("NextFundingTime = %d", mark.NextFundingTime)
	}
}

func TestDecode_CombinedStreamWrapper(t *testing.T) {
	data := []byte(`{
		"stream": "btcusdt@bookTicker",
		"data": {"e":"bookTicker","u":400900217,"s":"BTCUSDT","b":"25849.90","B":"31.2","a":"25850.10","A":"40.6"}
	}`)

	ev, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	book, ok := ev.(*BookTicker)
	if !ok {
		t.Fatalf("decoded type = %T, want *BookTicker", ev)
	}
	if book.UpdateID != 400900217 {
		t.Errorf("UpdateID = %d", book.UpdateID)
	}
}

func TestDecode_ListenKeyExpired(t *testing.T) {
	ev, err := Decode([]byte(`{"e":"listenKeyExpired","E":1693200002000,"listenKey":"abc123"}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	expired, ok := ev.(*ListenKeyExpired)
	if !ok {
		t.Fatalf("decoded type = %T, want *ListenKeyExpired", ev)
	}
	if expired.ListenKey != "abc123" {
		t.Errorf("ListenKey = %q", expired.ListenKey)
	}
}

func TestDecode_UnknownEvent(t *testing.T) {
	_, err := Decode([]byte(`{"e":"contractInfo","E":1}`))
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("err = %v, want %v", err, ErrUnknownEvent)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode([]byte(`{broken`)); err == nil {
		t.Error("expected error for malformed frame")
	}
}
