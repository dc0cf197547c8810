package stream

import (
	"testing"
)

func TestClassifyFrame(t *testing.T) {
	tests := []struct {
		name string
		data string
		want frameKind
	}{
		{"push event", `{"e":"aggTrade","E":1,"s":"BTCUSDT"}`, frameEvent},
		{"command response", `{"id":3,"result":null}`, frameResponse},
		{"error response", `{"id":4,"error":{"code":2,"msg":"Invalid request."}}`, frameResponse},
		{"echoed request", `{"id":5,"method":"SUBSCRIBE","params":["btcusdt@aggTrade"]}`, frameIgnored},
		{"bare object", `{}`, frameEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, _, err := classifyFrame([]byte(tt.data))
			if err != nil {
				t.Fatalf("classifyFrame failed: %v", err)
			}
			if kind != tt.want {
				t.Errorf("kind = %v, want %v", kind, tt.want)
			}
		})
	}
}

func TestClassifyFrame_Malformed(t *testing.T) {
	if _, _, err := classifyFrame([]byte("{truncated")); err == nil {
		t.Error("expected error for malformed frame")
	}
}

func TestStreamNames(t *testing.T) {
	tests := []struct {
		got  StreamName
		want string
	}{
		{AggTrade("BTCUSDT"), "btcusdt@aggTrade"},
		{Kline("ETHUSDT", Interval4h), "ethusdt@kline_4h"},
		{MiniTicker("BNBUSDT"), "bnbusdt@miniTicker"},
		{AllMiniTickers(), "!miniTicker@arr"},
		{Ticker("BTCUSDT"), "btcusdt@ticker"},
		{AllTickers(), "!ticker@arr"},
		{BookTicker("BTCUSDT"), "btcusdt@bookTicker"},
		{AllBookTickers(), "!bookTicker"},
		{Depth("BTCUSDT"), "btcusdt@depth"},
		{Depth100ms("BTCUSDT"), "btcusdt@depth@100ms"},
		{PartialDepth("BTCUSDT", 20), "btcusdt@depth20"},
		{PartialDepth100ms("BTCUSDT", 5), "btcusdt@depth5@100ms"},
		{MarkPrice("btcusdt"), "btcusdt@markPrice"},
		{AllMarkPrices1s(), "!markPrice@arr@1s"},
		{ForceOrder("BTCUSDT"), "btcusdt@forceOrder"},
		{AllForceOrders(), "!forceOrder@arr"},
		{UserData("listen-key-abc"), "listen-key-abc"},
	}

	for _, tt := range tests {
		if string(tt.got) != tt.want {
			t.Errorf("stream name = %q, want %q", tt.got, tt.want)
		}
	}
}
