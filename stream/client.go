package stream

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Stream endpoints, one per deployment environment.
const (
	SpotEndpoint    = "wss://stream.binance.com:9443/ws/"
	FuturesEndpoint = "wss://fstream.binance.com/ws/"
)

// DefaultRequestTimeout bounds the reply wait for the convenience commands.
const DefaultRequestTimeout = 10 * time.Second

const (
	// Outbound queue capacity is deliberately 1 so writes apply backpressure
	// to callers instead of buffering, and enqueue order is write order.
	outboundQueueSize = 1
	eventQueueSize    = 100

	handshakeTimeout = 10 * time.Second
	controlTimeout   = 5 * time.Second
)

// Client is the handle for one streaming connection. It is safe for
// concurrent use; commands issued concurrently resolve independently.
type Client struct {
	conn   *websocket.Conn
	logger *slog.Logger

	state  *sessionState
	out    chan outbound
	events chan EventMessage

	closeOnce sync.Once
	closeCh   chan struct{} // fired by Close, consumed by the read loop
	done      chan struct{} // closed by the read loop on termination
}

// Option configures a Dial call.
type Option func(*dialConfig)

type dialConfig struct {
	logger        *slog.Logger
	initialStream StreamName
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *dialConfig) {
		cfg.logger = logger
	}
}

// WithInitialStream appends a stream name to the connection URL so a single
// push stream is pre-selected before the first frame is read.
func WithInitialStream(s StreamName) Option {
	return func(cfg *dialConfig) {
		cfg.initialStream = s
	}
}

// Dial connects to a stream endpoint and returns the client handle together
// with the event sequence. The channel delivers push events in wire order and
// is closed when the connection terminates; its final element may carry a
// terminal transport or decode error.
func Dial(ctx context.Context, endpoint string, opts ...Option) (*Client, <-chan EventMessage, error) {
	cfg := dialConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	url := endpoint + string(cfg.initialStream)

	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, nil, err
	}

	c := &Client{
		conn:    conn,
		logger:  cfg.logger,
		state:   newSessionState(),
		out:     make(chan outbound, outboundQueueSize),
		events:  make(chan EventMessage, eventQueueSize),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}

	// The venue pings; the echo is queued to the write loop rather than
	// written here, because the write half belongs to that goroutine.
	conn.SetPingHandler(c.onPing)

	go c.writeLoop()
	go c.readLoop()

	c.logger.Debug("stream connected", "url", url)

	return c, c.events, nil
}

// SendRequest issues a control command and waits for its reply. The wait ends
// with whichever comes first: the reply (or a transport failure writing the
// command), the request's timeout, or ctx cancellation. On every outcome the
// request's pending entry is removed, so abandoned waits do not leak.
func (c *Client) SendRequest(ctx context.Context, req Request) (*Response, error) {
	ch := make(chan outcome, 1)

	id, err := c.state.register(ch)
	if err != nil {
		return nil, err
	}
	req.ID = id

	var deadline <-chan time.Time
	if req.Timeout > 0 {
		timer := time.NewTimer(req.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case c.out <- outbound{req: &req}:
	case <-c.done:
		c.state.drop(id)
		return nil, ErrClosed
	case <-deadline:
		c.state.drop(id)
		return nil, ErrRequestTimeout
	case <-ctx.Done():
		c.state.drop(id)
		return nil, ctx.Err()
	}

	select {
	case out := <-ch:
		return out.resp, out.err
	case <-deadline:
		c.state.drop(id)
		return nil, ErrRequestTimeout
	case <-ctx.Done():
		c.state.drop(id)
		return nil, ctx.Err()
	}
}

// Subscribe subscribes to one or more push streams.
func (c *Client) Subscribe(ctx context.Context, streams ...StreamName) (*Response, error) {
	return c.SendRequest(ctx, Request{
		Method:  MethodSubscribe,
		Params:  streamParams(streams),
		Timeout: DefaultRequestTimeout,
	})
}

// Unsubscribe removes one or more push stream subscriptions.
func (c *Client) Unsubscribe(ctx context.Context, streams ...StreamName) (*Response, error) {
	return c.SendRequest(ctx, Request{
		Method:  MethodUnsubscribe,
		Params:  streamParams(streams),
		Timeout: DefaultRequestTimeout,
	})
}

// ListSubscriptions returns the streams currently subscribed on this
// connection.
func (c *Client) ListSubscriptions(ctx context.Context) (*Response, error) {
	return c.SendRequest(ctx, Request{
		Method:  MethodListSubscriptions,
		Timeout: DefaultRequestTimeout,
	})
}

// GetProperty reads a connection property.
func (c *Client) GetProperty(ctx context.Context, name string) (*Response, error) {
	return c.SendRequest(ctx, Request{
		Method:  MethodGetProperty,
		Params:  []any{name},
		Timeout: DefaultRequestTimeout,
	})
}

// SetProperty writes a connection property.
func (c *Client) SetProperty(ctx context.Context, name string, value any) (*Response, error) {
	return c.SendRequest(ctx, Request{
		Method:  MethodSetProperty,
		Params:  []any{name, value},
		Timeout: DefaultRequestTimeout,
	})
}

// Close requests termination. The read loop consumes the signal, fails every
// outstanding request and closes the event channel; Close itself does not
// wait for that to finish. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closeCh)

		// Unblock the pending read so the loop observes the signal.
		deadline := time.Now().Add(controlTimeout)
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			deadline,
		)
		c.conn.Close()
	})
}

// IsClosed reports whether the session has terminated.
func (c *Client) IsClosed() bool {
	return c.state.isClosed()
}

// Done returns a channel closed when the session has fully terminated, after
// every outstanding request has been failed and the event channel closed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

func streamParams(streams []StreamName) []any {
	params := make([]any, len(streams))
	for i, s := range streams {
		params[i] = string(s)
	}
	return params
}
