package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-recorder
api:
  market: futures
  ws_url: wss://fstream.binancefuture.com/ws/
database:
  postgres:
    host: localhost
    port: 5432
    name: test_db
    user: testuser
    password: testpass
streams:
  symbols: [BTCUSDT, ETHUSDT]
  kline_intervals: [1m, 5m]
  trades: true
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-recorder" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-recorder")
	}
	if cfg.API.Market != "futures" {
		t.Errorf("API.Market = %q, want %q", cfg.API.Market, "futures")
	}
	if len(cfg.Streams.Symbols) != 2 || cfg.Streams.Symbols[0] != "BTCUSDT" {
		t.Errorf("Streams.Symbols = %v", cfg.Streams.Symbols)
	}
	if !cfg.Streams.Trades {
		t.Error("Streams.Trades = false, want true")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  postgres:
    host: localhost
    name: test_db
    user: testuser
    password: ${TEST_DB_PASSWORD}
streams:
  symbols: [BTCUSDT]
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Postgres.Password != "secret123" {
		t.Errorf("Database.Postgres.Password = %q, want %q", cfg.Database.Postgres.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  postgres:
    host: localhost
    name: test_db
    user: testuser
    password: testpass
streams:
  symbols: [BTCUSDT]
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Instance.ID == "" {
		t.Error("Instance.ID should default to a generated id")
	}
	if cfg.API.Market != "spot" {
		t.Errorf("API.Market = %q, want spot", cfg.API.Market)
	}
	if !strings.HasPrefix(cfg.API.WSURL, "wss://stream.binance.com") {
		t.Errorf("API.WSURL = %q, want the spot endpoint", cfg.API.WSURL)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Database.Postgres.Port != DefaultDBPort {
		t.Errorf("Postgres.Port = %d, want %d", cfg.Database.Postgres.Port, DefaultDBPort)
	}
	if cfg.Database.Postgres.SSLMode != DefaultDBSSLMode {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, DefaultDBSSLMode)
	}
	if len(cfg.Streams.KlineIntervals) != 1 || cfg.Streams.KlineIntervals[0] != DefaultKlineInterval {
		t.Errorf("KlineIntervals = %v", cfg.Streams.KlineIntervals)
	}
	if cfg.Streams.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.Streams.RequestTimeout)
	}
	if cfg.Writers.BatchSize != DefaultBatchSize {
		t.Errorf("Writers.BatchSize = %d, want %d", cfg.Writers.BatchSize, DefaultBatchSize)
	}
}

func TestLoadWithDefaults_FuturesEndpoint(t *testing.T) {
	yaml := `
api:
  market: futures
database:
  postgres:
    host: localhost
    name: test_db
    user: testuser
    password: testpass
streams:
  symbols: [BTCUSDT]
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}
	if !strings.HasPrefix(cfg.API.WSURL, "wss://fstream.binance.com") {
		t.Errorf("API.WSURL = %q, want the futures endpoint", cfg.API.WSURL)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *RecorderConfig {
		cfg := &RecorderConfig{}
		cfg.API.Market = "spot"
		cfg.Database.Postgres = DBConfig{
			Host: "localhost", Port: 5432, Name: "db", User: "u", Password: "p",
			MaxConns: 10, MinConns: 2,
		}
		cfg.Streams.Symbols = []string{"BTCUSDT"}
		cfg.Streams.KlineIntervals = []string{"1m"}
		cfg.Writers.BatchSize = 100
		cfg.Writers.BufferSize = 1000
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RecorderConfig)
	}{
		{"bad market", func(c *RecorderConfig) { c.API.Market = "margin" }},
		{"missing db host", func(c *RecorderConfig) { c.Database.Postgres.Host = "" }},
		{"missing db password", func(c *RecorderConfig) { c.Database.Postgres.Password = "" }},
		{"min conns above max", func(c *RecorderConfig) { c.Database.Postgres.MinConns = 20 }},
		{"no symbols", func(c *RecorderConfig) { c.Streams.Symbols = nil }},
		{"bad interval", func(c *RecorderConfig) { c.Streams.KlineIntervals = []string{"90s"} }},
		{"zero batch size", func(c *RecorderConfig) { c.Writers.BatchSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	if _, err := LoadAndValidate(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
