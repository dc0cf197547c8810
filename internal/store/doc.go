// Package store persists recorded market data to PostgreSQL.
//
// Two batch writers consume from the router buffers: one for closed candles,
// one for aggregated trades. All writes are append-only inserts with
// ON CONFLICT DO NOTHING, so replays after a restart are harmless. Prices and
// quantities are stored as NUMERIC via their exact decimal text form.
package store
