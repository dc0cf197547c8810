// Package rest provides access to the venue's HTTP market-data API.
//
// Only unsigned endpoints are covered: connectivity checks, server time,
// candles, aggregated trades, order book snapshots, and user-data listen key
// management (which needs an API key header but no request signature). The
// spot and futures markets share the surface; NewClient selects the host and
// error-code table per market.
package rest
