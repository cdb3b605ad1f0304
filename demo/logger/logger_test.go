package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.File = filepath.Join(t.TempDir(), "cubecam.log")

	log, closeLog, err := New(cfg)
	require.NoError(t, err)
	log.Info("camera ready", zap.Float32("fov", 45))
	log.Debug("filtered out")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"camera ready"`)
	assert.Contains(t, string(data), `"fov":45`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestNewDebugLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.Level = "debug"
	cfg.File = filepath.Join(t.TempDir(), "debug.log")

	log, closeLog, err := New(cfg)
	require.NoError(t, err)
	log.Debug("frame", zap.Int("n", 1))
	require.NoError(t, closeLog())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"frame"`)
}

func TestNewBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	_, _, err := New(cfg)
	assert.Error(t, err)
}

func TestNewWithoutSinks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	log, closeLog, err := New(cfg)
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.NoError(t, closeLog())
}

func TestCloseFlushesFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.File = filepath.Join(t.TempDir(), "closed.log")

	log, closeLog, err := New(cfg)
	require.NoError(t, err)
	log.Info("before close")
	require.NoError(t, closeLog())

	assert.NoError(t, closeLog())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"before close"`)
}
