package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rxtrade/binance-stream/apicode"
	"github.com/rxtrade/binance-stream/stream"
)

func spotTestClient(server *httptest.Server, opts ...ClientOption) *Client {
	opts = append([]ClientOption{WithBaseURL(server.URL), WithRetries(0, time.Millisecond)}, opts...)
	return NewClient(Spot, opts...)
}

func TestNewClient(t *testing.T) {
	t.Run("defaults per market", func(t *testing.T) {
		c := NewClient(Spot)
		if c.baseURL != "https://api.binance.com" {
			t.Errorf("spot baseURL = %q", c.baseURL)
		}
		if c.maxRetries != 3 || c.retryBackoff != time.Second {
			t.Errorf("retry config = (%d, %v)", c.maxRetries, c.retryBackoff)
		}

		f := NewClient(Futures)
		if f.baseURL != "https://fapi.binance.com" {
			t.Errorf("futures baseURL = %q", f.baseURL)
		}
	})

	t.Run("options", func(t *testing.T) {
		c := NewClient(Futures,
			WithBaseURL("http://localhost:9000"),
			WithAPIKey("key-1"),
			WithTimeout(5*time.Second),
			WithRetries(1, 10*time.Millisecond),
		)
		if c.baseURL != "http://localhost:9000" {
			t.Errorf("baseURL = %q", c.baseURL)
		}
		if c.apiKey != "key-1" {
			t.Errorf("apiKey = %q", c.apiKey)
		}
		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("timeout = %v", c.httpClient.Timeout)
		}
	})
}

func TestClient_PingAndServerTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/ping":
			w.Write([]byte(`{}`))
		case "/api/v3/time":
			w.Write([]byte(`{"serverTime":1693200000000}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := spotTestClient(server)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	ts, err := c.ServerTime(ctx)
	if err != nil {
		t.Fatalf("ServerTime failed: %v", err)
	}
	if ts != 1693200000000 {
		t.Errorf("ServerTime = %d", ts)
	}
}

func TestClient_Klines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fapi/v1/klines" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("symbol") != "BTCUSDT" || q.Get("interval") != "1m" || q.Get("limit") != "2" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[
			[1693200000000,"25850.00","25860.00","25840.00","25855.50","12.5",1693200059999,"323190.10",42,"6.2","160280.00","0"],
			[1693200060000,"25855.50","25870.00","25850.00","25862.00","9.1",1693200119999,"235320.77",31,"4.7","121540.00","0"]
		]`))
	}))
	defer server.Close()

	c := NewClient(Futures, WithBaseURL(server.URL), WithRetries(0, time.Millisecond))

	klines, err := c.Klines(context.Background(), KlinesRequest{
		Symbol:   "BTCUSDT",
		Interval: stream.Interval1m,
		Limit:    2,
	})
	if err != nil {
		t.Fatalf("Klines failed: %v", err)
	}
	if len(klines) != 2 {
		t.Fatalf("got %d klines, want 2", len(klines))
	}
	if klines[0].OpenTime != 1693200000000 {
		t.Errorf("OpenTime = %d", klines[0].OpenTime)
	}
	if !klines[0].Close.Equal(decimal.RequireFromString("25855.50")) {
		t.Errorf("Close = %s", klines[0].Close)
	}
	if klines[0].NumTrades != 42 {
		t.Errorf("NumTrades = %d", klines[0].NumTrades)
	}
}

func TestClient_Depth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/depth" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"lastUpdateId": 160,
			"bids": [["25849.90","1.5"]],
			"asks": [["25850.10","2.25"],["25850.20","0.4"]]
		}`))
	}))
	defer server.Close()

	c := spotTestClient(server)

	book, err := c.Depth(context.Background(), "BTCUSDT", 0)
	if err != nil {
		t.Fatalf("Depth failed: %v", err)
	}
	if book.LastUpdateID != 160 {
		t.Errorf("LastUpdateID = %d", book.LastUpdateID)
	}
	if len(book.Bids) != 1 || len(book.Asks) != 2 {
		t.Errorf("levels = %d bids, %d asks", len(book.Bids), len(book.Asks))
	}
	if !book.Asks[0].Price.Equal(decimal.RequireFromString("25850.10")) {
		t.Errorf("ask price = %s", book.Asks[0].Price)
	}
}

func TestClient_APIErrorClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
	}))
	defer server.Close()

	c := spotTestClient(server)

	_, err := c.Depth(context.Background(), "NOPE", 0)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", httpErr.StatusCode)
	}

	var apiErr *apicode.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("HTTPError does not unwrap to an API error: %v", err)
	}
	if apiErr.Code.Name != "BAD_SYMBOL" {
		t.Errorf("code = %v, want BAD_SYMBOL", apiErr.Code)
	}
}

func TestClient_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(Spot, WithBaseURL(server.URL), WithRetries(3, time.Millisecond))

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed after retries: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("server saw %d calls, want 3", calls.Load())
	}
}

func TestClient_NoRetryOnBadRequest(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-1102,"msg":"Mandatory parameter was not sent."}`))
	}))
	defer server.Close()

	c := NewClient(Spot, WithBaseURL(server.URL), WithRetries(3, time.Millisecond))

	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("server saw %d calls, want 1", calls.Load())
	}
}

func TestClient_ListenKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/userDataStream" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-MBX-APIKEY") != "key-1" {
			t.Errorf("api key header = %q", r.Header.Get("X-MBX-APIKEY"))
		}
		switch r.Method {
		case http.MethodPost:
			w.Write([]byte(`{"listenKey":"lk-abc"}`))
		case http.MethodPut, http.MethodDelete:
			gotKey = r.URL.Query().Get("listenKey")
			w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	c := spotTestClient(server, WithAPIKey("key-1"))
	ctx := context.Background()

	key, err := c.CreateListenKey(ctx)
	if err != nil {
		t.Fatalf("CreateListenKey failed: %v", err)
	}
	if key != "lk-abc" {
		t.Errorf("listen key = %q", key)
	}

	if err := c.KeepAliveListenKey(ctx, key); err != nil {
		t.Fatalf("KeepAliveListenKey failed: %v", err)
	}
	if gotKey != "lk-abc" {
		t.Errorf("keepalive sent key %q", gotKey)
	}

	if err := c.CloseListenKey(ctx, key); err != nil {
		t.Fatalf("CloseListenKey failed: %v", err)
	}
}

func TestHTTPError_Messages(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{403, "http 403: blocked by web application firewall"},
		{418, "http 418: ip address banned after repeated rate limit violations"},
		{429, "http 429: request rate limit reached"},
	}
	for _, tt := range tests {
		err := &HTTPError{StatusCode: tt.status}
		if err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
		}
	}

	if !(&HTTPError{StatusCode: 503}).IsRetryable() {
		t.Error("503 should be retryable")
	}
	if (&HTTPError{StatusCode: 400}).IsRetryable() {
		t.Error("400 should not be retryable")
	}
}
