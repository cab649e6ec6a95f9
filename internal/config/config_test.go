package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "reel.db", cfg.DB.Path)
	require.Equal(t, 5*time.Second, cfg.Carousel.Interval)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.yaml")
	err := os.WriteFile(path, []byte(`
server:
  port: 9000
db:
  path: /tmp/from-file.db
transport:
  mode: stdio
session:
  idle_ttl: 10m
carousel:
  interval: 3s
`), 0o644)
	require.NoError(t, err)

	t.Setenv("REEL_CONFIG_PATH", path)
	t.Setenv("REEL_DB_PATH", "/tmp/from-env.db")
	t.Setenv("REEL_CAROUSEL_INTERVAL", "750ms")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "/tmp/from-env.db", cfg.DB.Path)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, 10*time.Minute, cfg.Session.IdleTTL)
	require.Equal(t, 750*time.Millisecond, cfg.Carousel.Interval)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("REEL_SERVER_PORT", "eighty")
	_, err := Load()
	require.ErrorContains(t, err, "REEL_SERVER_PORT")
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("REEL_SESSION_IDLE_TTL", "soon")
	_, err := Load()
	require.ErrorContains(t, err, "REEL_SESSION_IDLE_TTL")
}

func TestLoad_InvalidTransport(t *testing.T) {
	t.Setenv("REEL_TRANSPORT_MODE", "carrier-pigeon")
	_, err := Load()
	require.ErrorContains(t, err, "transport mode")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("REEL_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.ErrorContains(t, err, "read config file")
}
