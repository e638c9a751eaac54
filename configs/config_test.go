package configs_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowhost/sfbridge/configs"
)

func TestLoad_Defaults(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	cfg, err := configs.Load()
	require.NoError(err)

	assert.Equal(":8080", cfg.ListenAddr)
	assert.Equal(":8081", cfg.AdminAddr)
	assert.Equal(30*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(slog.LevelInfo, cfg.ParsedLogLevel())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "sfbridge.yaml")
	require.NoError(os.WriteFile(path, []byte(
		"instance_url: https://file.my.salesforce.com\nid_token: from-file\n",
	), 0o600))

	t.Setenv("SFBRIDGE_CONFIG_FILE", path)
	t.Setenv("SFBRIDGE_INSTANCE_URL", "https://env.my.salesforce.com")

	cfg, err := configs.Load()
	require.NoError(err)

	assert.Equal("https://env.my.salesforce.com", cfg.InstanceURL)
	// The file still supplies what the environment does not.
	assert.Equal("from-file", cfg.IDToken)
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Setenv("SFBRIDGE_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := configs.Load()
	require.Error(t, err)
}

func TestParsedLogLevel(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := configs.Config{LogLevel: in}
		assert.Equal(want, cfg.ParsedLogLevel(), "level %q", in)
	}
}
