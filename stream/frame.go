package stream

import (
	"encoding/json"
	"time"
)

// Method is a control command name on the stream channel.
type Method string

const (
	MethodSubscribe         Method = "SUBSCRIBE"
	MethodUnsubscribe       Method = "UNSUBSCRIBE"
	MethodListSubscriptions Method = "LIST_SUBSCRIPTIONS"
	MethodSetProperty       Method = "SET_PROPERTY"
	MethodGetProperty       Method = "GET_PROPERTY"
)

// PropertyCombined selects combined-stream payload framing.
const PropertyCombined = "combined"

// Request is an outbound control command. ID is assigned by the client when
// the command is accepted; leave it zero. Timeout bounds the wait for the
// reply on the caller's side only and is never serialized.
type Request struct {
	ID     uint64 `json:"id,omitempty"`
	Method Method `json:"method"`
	Params []any  `json:"params,omitempty"`

	Timeout time.Duration `json:"-"`
}

// Response is the venue's reply to a control command. Result is opaque to
// this package; Error, when present, carries the venue's {"code","msg"}
// payload.
type Response struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// DecodeResult unmarshals the opaque result payload into v.
func (r *Response) DecodeResult(v any) error {
	return json.Unmarshal(r.Result, v)
}

// EventMessage is one element of the consumer-facing event sequence. For push
// events Data holds the raw tag-discriminated payload and Err is nil. Err is
// non-nil only for a terminal transport or envelope failure; the channel is
// closed after delivering it.
type EventMessage struct {
	Data       []byte
	ReceivedAt time.Time
	Err        error
}

// outbound is one item on the write queue: a caller command or the echo of a
// keepalive ping. Exactly one field is set.
type outbound struct {
	req  *Request
	pong []byte
}

// inboundFrame is the single decode attempt made per text frame. Which
// members are present decides the frame kind: an id without a method is a
// response, a method is a request echo (not a valid inbound shape, dropped),
// anything else is a push event.
type inboundFrame struct {
	ID     *uint64         `json:"id"`
	Method *Method         `json:"method"`
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

type frameKind int

const (
	frameEvent frameKind = iota
	frameResponse
	frameIgnored
)

// classifyFrame decodes one inbound text frame. A non-nil error means the
// top-level envelope is malformed, which is fatal to the session.
func classifyFrame(data []byte) (frameKind, *Response, error) {
	var probe inboundFrame
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, nil, err
	}

	switch {
	case probe.Method != nil:
		return frameIgnored, nil, nil
	case probe.ID != nil:
		return frameResponse, &Response{
			ID:     *probe.ID,
			Result: probe.Result,
			Error:  probe.Error,
		}, nil
	default:
		return frameEvent, nil, nil
	}
}
