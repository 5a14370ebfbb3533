package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Defaults(t *testing.T) {
	cfg, err := Setup(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, &Config{
		ServerAddr:      ":8080",
		GinMode:         "release",
		LogLevel:        "info",
		TemplatesDir:    "templates",
		StaticDir:       "static",
		SSEBuffer:       10,
		ShutdownTimeout: 5 * time.Second,
	}, cfg)
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "SERVER_ADDR=:9090\nLOG_LEVEL=debug\nSSE_BUFFER=32\nSHUTDOWN_TIMEOUT=2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Setup(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 32, cfg.SSEBuffer)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "templates", cfg.TemplatesDir)
}

func TestSetup_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_ADDR=:9090\n"), 0o600))
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("GIN_MODE", "test")

	cfg, err := Setup(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
	assert.Equal(t, "test", cfg.GinMode)
}

func TestSetup_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_ADDR: [unterminated\n"), 0o600))

	_, err := Setup(path)

	assert.Error(t, err)
}

func TestSetup_NoFile(t *testing.T) {
	cfg, err := Setup("")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}
