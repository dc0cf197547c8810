package router

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rxtrade/binance-stream/models"
	"github.com/rxtrade/binance-stream/stream"
)

// Router decodes raw push events and routes them to specialized writers.
type Router interface {
	// Start begins routing events from the input channel to writers.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the router.
	Stop(ctx context.Context) error

	// Buffers returns output buffers for writers to consume.
	Buffers() RouterBuffers

	// Stats returns current router statistics.
	Stats() RouterStats
}

// RouterBuffers provides access to output buffers for writers.
type RouterBuffers struct {
	Kline *GrowableBuffer[KlineMsg]
	Trade *GrowableBuffer[TradeMsg]
}

// RouterStats contains runtime statistics.
type RouterStats struct {
	EventsReceived int64
	EventsRouted   int64
	DecodeErrors   int64
	UnknownEvents  int64
	KlineBuffer    BufferStats
	TradeBuffer    BufferStats
}

// router is the internal implementation.
type router struct {
	cfg    RouterConfig
	logger *slog.Logger

	// Input from the stream client
	input <-chan stream.EventMessage

	// Output to writers (growable buffers)
	klineBuf *GrowableBuffer[KlineMsg]
	tradeBuf *GrowableBuffer[TradeMsg]

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu            sync.RWMutex
	received      int64
	routed        int64
	decodeErrors  int64
	unknownEvents int64
}

// NewRouter creates a new event router.
func NewRouter(cfg RouterConfig, input <-chan stream.EventMessage, logger *slog.Logger) Router {
	if logger == nil {
		logger = slog.Default()
	}

	return &router{
		cfg:      cfg,
		logger:   logger,
		input:    input,
		klineBuf: NewGrowableBuffer[KlineMsg](cfg.KlineBufferSize),
		tradeBuf: NewGrowableBuffer[TradeMsg](cfg.TradeBufferSize),
	}
}

// Start begins routing events.
func (r *router) Start(ctx context.Context) error {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.routeLoop()

	r.logger.Info("event router started",
		"kline_buffer", r.cfg.KlineBufferSize,
		"trade_buffer", r.cfg.TradeBufferSize,
	)

	return nil
}

// Stop gracefully shuts down the router.
func (r *router) Stop(ctx context.Context) error {
	r.logger.Info("stopping event router")

	if r.cancel != nil {
		r.cancel()
	}

	// Wait for goroutine to finish
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("event router stopped")
	case <-ctx.Done():
		r.logger.Warn("event router stop timed out")
	}

	// Close output buffers
	r.klineBuf.Close()
	r.tradeBuf.Close()

	return nil
}

// Buffers returns output buffers for writers.
func (r *router) Buffers() RouterBuffers {
	return RouterBuffers{
		Kline: r.klineBuf,
		Trade: r.tradeBuf,
	}
}

// Stats returns current statistics.
func (r *router) Stats() RouterStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RouterStats{
		EventsReceived: r.received,
		EventsRouted:   r.routed,
		DecodeErrors:   r.decodeErrors,
		UnknownEvents:  r.unknownEvents,
		KlineBuffer:    r.klineBuf.Stats(),
		TradeBuffer:    r.tradeBuf.Stats(),
	}
}

// routeLoop is the main routing goroutine.
func (r *router) routeLoop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case msg, ok := <-r.input:
			if !ok {
				r.logger.Info("event channel closed")
				return
			}
			if msg.Err != nil {
				// Terminal element: the stream is ending.
				r.logger.Error("stream failed", "error", msg.Err)
				return
			}
			r.route(msg)
		}
	}
}

// route decodes and routes a single event.
func (r *router) route(msg stream.EventMessage) {
	r.mu.Lock()
	r.received++
	r.mu.Unlock()

	ev, err := models.Decode(msg.Data)
	if err != nil {
		r.mu.Lock()
		if errors.Is(err, models.ErrUnknownEvent) {
			r.unknownEvents++
		} else {
			r.decodeErrors++
		}
		r.mu.Unlock()
		r.logger.Debug("event not routed", "error", err)
		return
	}

	var sent bool

	switch e := ev.(type) {
	case *models.KlineEvent:
		if !e.Kline.IsClosed {
			return
		}
		sent = r.klineBuf.Send(KlineMsg{
			Symbol:     e.Symbol,
			Interval:   e.Kline.Interval,
			OpenTime:   e.Kline.StartTime,
			CloseTime:  e.Kline.CloseTime,
			Open:       e.Kline.Open,
			High:       e.Kline.High,
			Low:        e.Kline.Low,
			Close:      e.Kline.Close,
			Volume:     e.Kline.Volume,
			NumTrades:  e.Kline.NumTrades,
			ReceivedAt: msg.ReceivedAt,
		})

	case *models.AggTrade:
		sent = r.tradeBuf.Send(TradeMsg{
			Symbol:       e.Symbol,
			AggID:        e.ID,
			Price:        e.Price,
			Quantity:     e.Quantity,
			FirstTradeID: e.FirstTradeID,
			LastTradeID:  e.LastTradeID,
			TradeTime:    e.TradeTime,
			BuyerIsMaker: e.BuyerIsMaker,
			ReceivedAt:   msg.ReceivedAt,
		})

	default:
		// Decoded but not recorded: tickers, depth, and the rest.
		r.logger.Debug("skipping event type", "type", ev.Kind())
		return
	}

	if sent {
		r.mu.Lock()
		r.routed++
		r.mu.Unlock()
	}
}
