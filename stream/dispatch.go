package stream

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rxtrade/binance-stream/apicode"
)

// readLoop is the inbound dispatcher. It owns the read half of the
// connection and runs until the connection ends, the remote closes, a decode
// failure occurs, or the close signal fires. It is the only writer of the
// session's closed flag.
func (c *Client) readLoop() {
	defer func() {
		for _, ch := range c.state.shutdown() {
			ch <- outcome{err: ErrClosed}
		}
		close(c.done)
		close(c.events)
		c.logger.Debug("stream closed")
	}()

	for {
		select {
		case <-c.closeCh:
			return
		default:
		}

		msgType, data, err := c.conn.ReadMessage()
		receivedAt := time.Now()

		if err != nil {
			// A local Close unblocks the read with an error; that path
			// terminates silently, as do remote close frames and EOF.
			select {
			case <-c.closeCh:
				return
			default:
			}

			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return
			}

			c.emit(EventMessage{Err: &TransportError{Op: "read", Err: err}})
			return
		}

		if msgType != websocket.TextMessage {
			continue
		}

		kind, resp, err := classifyFrame(data)
		if err != nil {
			c.emit(EventMessage{Err: &DecodeError{Err: err}})
			return
		}

		switch kind {
		case frameEvent:
			c.emit(EventMessage{Data: data, ReceivedAt: receivedAt})

		case frameResponse:
			c.resolve(resp)

		case frameIgnored:
			c.logger.Debug("ignoring inbound frame", "size", len(data))
		}
	}
}

// writeLoop is the outbound dispatcher. It owns the write half of the
// connection and drains the outbound queue in arrival order until the
// session terminates.
func (c *Client) writeLoop() {
	for {
		select {
		case item := <-c.out:
			c.writeItem(item)
		case <-c.done:
			return
		}
	}
}

func (c *Client) writeItem(item outbound) {
	if item.pong != nil {
		deadline := time.Now().Add(controlTimeout)
		if err := c.conn.WriteControl(websocket.PongMessage, item.pong, deadline); err != nil {
			c.logger.Warn("failed to send pong", "error", err)
		}
		return
	}

	data, err := json.Marshal(item.req)
	if err != nil {
		c.failPending(item.req.ID, err)
		return
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		// The write failed for this command only; the connection is not
		// declared dead here, though later writes will likely fail too.
		c.failPending(item.req.ID, &TransportError{Op: "write", Err: err})
	}
}

// resolve completes the pending request matching resp. A response whose id is
// no longer outstanding was already resolved by timeout or cancellation and
// is dropped on purpose.
func (c *Client) resolve(resp *Response) {
	ch, ok := c.state.take(resp.ID)
	if !ok {
		c.logger.Debug("dropping response without pending request", "id", resp.ID)
		return
	}

	if len(resp.Error) > 0 {
		ch <- outcome{err: c.decodeRequestError(resp.Error)}
		return
	}
	ch <- outcome{resp: resp}
}

func (c *Client) failPending(id uint64, err error) {
	if ch, ok := c.state.take(id); ok {
		ch <- outcome{err: err}
	}
}

// emit delivers one element to the event sequence, blocking until the
// consumer takes it so a slow consumer backpressures the read loop instead of
// growing memory.
func (c *Client) emit(msg EventMessage) {
	select {
	case c.events <- msg:
	case <-c.closeCh:
	}
}

// decodeRequestError maps the venue's error member into a request-scoped
// error. Codes resolve against the stream table; an unmappable code is itself
// the error, but stays scoped to the one request.
func (c *Client) decodeRequestError(raw json.RawMessage) error {
	apiErr, err := apicode.Parse(raw, apicode.Stream)
	if err != nil {
		return err
	}
	return apiErr
}

// onPing queues the ping payload for echo by the write loop. Runs inside the
// read loop, so the write queue is guaranteed to drain.
func (c *Client) onPing(payload string) error {
	select {
	case c.out <- outbound{pong: []byte(payload)}:
	case <-c.done:
	}
	return nil
}
