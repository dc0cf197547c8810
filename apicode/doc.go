// Package apicode classifies Binance error codes.
//
// The venue reports every failure as a signed 16-bit integer plus a message.
// The code space splits into three disjoint bands:
//   - <= -9000: filter failures, passed through unnamed
//   - <= -3000 or >= 0: API-surface specific codes (spot, futures, stream)
//   - the remaining band: codes shared by every API surface
//
// Band order matters and is fixed; a value that lands in a named band but is
// missing from its table is a decode failure, not a passthrough.
package apicode
