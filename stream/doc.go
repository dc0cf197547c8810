// Package stream implements the multiplexing websocket client for Binance
// market data streams.
//
// One Dial call produces a client handle and an event sequence sharing a
// single long-lived connection. The handle issues control commands
// (subscribe, unsubscribe, property get/set) that are correlated with their
// replies by id, while unsolicited push events flow to the event channel.
// Two goroutines service the connection: one owns the read half and routes
// inbound frames, one owns the write half and drains the outbound queue.
//
// The client does not reconnect. When the connection ends, for any reason,
// the event channel is closed and every outstanding command fails.
package stream
