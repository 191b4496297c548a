package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
Application:
  LogLevel: debug
Resolver:
  Timeout: %s
  TikTokEndpoint: http://127.0.0.1/oembed
Telegram:
  Enabled: false
Server:
  Enabled: true
  Address: ":8080"
Downloads:
  MaxConcurrent: 3
  AudioQuality: low
`

func writeConfig(t *testing.T, timeout string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(sampleConfig, timeout)), 0o600))

	return path
}

func TestReadFile(t *testing.T) {
	var cfg Config

	require.NoError(t, readFile(&cfg, writeConfig(t, "5s")))
	require.Equal(t, "debug", cfg.Application.LogLevel)
	require.Equal(t, 5*time.Second, cfg.Resolver.TimeoutDuration())
	require.Equal(t, "http://127.0.0.1/oembed", cfg.Resolver.TikTokEndpoint)
	require.True(t, cfg.Server.Enabled)
	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, 3, cfg.Downloads.MaxConcurrent)
	require.Equal(t, "low", cfg.Downloads.AudioQuality)
}

func TestDurationFormats(t *testing.T) {
	cases := map[string]time.Duration{
		"1m30s":  90 * time.Second,
		"20":     20 * time.Second,
		"1.5":    1500 * time.Millisecond,
		"2.5":    2500 * time.Millisecond,
		`"0.25"`: 250 * time.Millisecond,
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			var cfg Config

			require.NoError(t, readFile(&cfg, writeConfig(t, raw)))
			require.Equal(t, want, cfg.Resolver.TimeoutDuration())
		})
	}
}

func TestDurationInvalid(t *testing.T) {
	var cfg Config

	err := readFile(&cfg, writeConfig(t, "soon"))
	require.ErrorContains(t, err, "unsupported duration format")
}

func TestReadFileMissing(t *testing.T) {
	var cfg Config

	err := readFile(&cfg, filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "failed to open file")
}

func TestParseConfigWithEnvOverride(t *testing.T) {
	original := os.Args
	os.Args = []string{original[0]}

	t.Cleanup(func() { os.Args = original })
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("TG_BOT_TOKEN", "token")

	var cfg Config

	require.NoError(t, parseConfig(&cfg, writeConfig(t, "5s"), CommonParseOptions))
	require.Equal(t, ":9999", cfg.Server.Address)
	require.Equal(t, "token", cfg.Telegram.Token)
	require.Equal(t, 5*time.Second, cfg.Resolver.TimeoutDuration())
}
