package stream

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrClosed reports a command issued after the session terminated.
	ErrClosed = errors.New("session closed")

	// ErrRequestTimeout reports a command whose reply did not arrive within
	// its deadline. The command may still have taken effect on the venue.
	ErrRequestTimeout = errors.New("request timed out")
)

// TransportError wraps an I/O failure on the connection. It is terminal: the
// event sequence ends after surfacing one.
type TransportError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a malformed top-level envelope. It is terminal; decode
// problems inside a recognized envelope are the consumer's concern and do not
// produce one.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
