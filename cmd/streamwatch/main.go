// streamwatch connects to the venue's WebSocket and prints decoded push
// events to the console. Market streams are public; no credentials needed.
//
// Usage: go run ./cmd/streamwatch -market futures -symbols BTCUSDT,XRPUSDT -klines 1m -trades
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rxtrade/binance-stream/models"
	"github.com/rxtrade/binance-stream/stream"
)

func main() {
	market := flag.String("market", "spot", "market to watch: spot or futures")
	symbols := flag.String("symbols", "BTCUSDT", "comma-separated symbols")
	klines := flag.String("klines", "1m", "comma-separated kline intervals, empty to disable")
	trades := flag.Bool("trades", false, "also watch aggregated trades")
	verbose := flag.Bool("verbose", false, "print raw frame JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	endpoint := stream.SpotEndpoint
	if *market == "futures" {
		endpoint = stream.FuturesEndpoint
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, events, err := stream.Dial(ctx, endpoint, stream.WithLogger(logger))
	if err != nil {
		logger.Error("dial failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	names := buildStreams(*symbols, *klines, *trades)
	if len(names) == 0 {
		logger.Error("nothing to watch; pass -klines and/or -trades")
		os.Exit(1)
	}
	if _, err := client.Subscribe(ctx, names...); err != nil {
		logger.Error("subscribe failed", "error", err)
		os.Exit(1)
	}
	logger.Info("watching", "endpoint", endpoint, "streams", len(names))

	go func() {
		<-ctx.Done()
		client.Close()
	}()

	for msg := range events {
		if msg.Err != nil {
			logger.Error("stream failed", "error", msg.Err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Println(string(msg.Data))
			continue
		}
		printEvent(msg.Data)
	}
}

// buildStreams expands the flag values into stream names.
func buildStreams(symbols, klines string, trades bool) []stream.StreamName {
	var names []stream.StreamName
	for _, symbol := range splitList(symbols) {
		for _, iv := range splitList(klines) {
			names = append(names, stream.Kline(symbol, stream.Interval(iv)))
		}
		if trades {
			names = append(names, stream.AggTrade(symbol))
		}
	}
	return names
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// printEvent decodes one push frame and prints a compact line per kind.
func printEvent(data []byte) {
	ev, err := models.Decode(data)
	if err != nil {
		fmt.Printf("? %s\n", data)
		return
	}

	switch e := ev.(type) {
	case *models.KlineEvent:
		marker := " "
		if e.Kline.IsClosed {
			marker = "*"
		}
		fmt.Printf("%s kline %s%s o=%s h=%s l=%s c=%s v=%s n=%d\n",
			e.Symbol, e.Kline.Interval, marker,
			e.Kline.Open, e.Kline.High, e.Kline.Low, e.Kline.Close,
			e.Kline.Volume, e.Kline.NumTrades)
	case *models.AggTrade:
		side := "buy "
		if e.BuyerIsMaker {
			side = "sell"
		}
		fmt.Printf("%s trade %s %s @ %s (agg %d)\n",
			e.Symbol, side, e.Quantity, e.Price, e.ID)
	default:
		fmt.Printf("%s %s\n", ev.Kind(), data)
	}
}
