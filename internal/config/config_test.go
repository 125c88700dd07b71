package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flojomojo/capycity/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capycity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
grid:
  height: 4
  width: 6
render:
  color: false
  width: 120
server:
  port: 8080
logging:
  level: debug
  file: /tmp/capycity.log
`)

	cfg, v, err := config.Load(path)

	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 4, cfg.Grid.Height)
	assert.Equal(t, 6, cfg.Grid.Width)
	assert.False(t, cfg.Render.Color)
	assert.Equal(t, 120, cfg.Render.Width)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Rotation defaults kick in once a file is configured.
	assert.Equal(t, 10, cfg.Logging.MaxSize)
	assert.Equal(t, 3, cfg.Logging.MaxBackups)
	assert.Equal(t, 28, cfg.Logging.MaxAge)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, _, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Grid.Height)
	assert.True(t, cfg.Render.Color)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 0, cfg.Logging.MaxSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "grid:\n  height: 2\n  width: 2\n")
	t.Setenv("CAPY_GRID_HEIGHT", "7")
	t.Setenv("CAPY_SERVER_PORT", "9090")
	t.Setenv("CAPY_RENDER_COLOR", "false")

	cfg, _, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Grid.Height)
	assert.Equal(t, 2, cfg.Grid.Width)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Render.Color)
}

func TestLoad_InvalidLevel(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: verbose\n")

	_, _, err := config.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 70000\n")

	_, _, err := config.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestReload(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")
	_, v, err := config.Load(path)
	require.NoError(t, err)

	v.Set("logging.level", "error")
	cfg, err := config.Reload(v)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_ConsoleLevel(t *testing.T) {
	cfg, _, err := config.Load(writeConfig(t, "logging:\n  console_level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.ConsoleLevel)
	assert.Equal(t, "info", cfg.Logging.Level)

	_, _, err = config.Load(writeConfig(t, "logging:\n  console_level: quiet\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.console_level")
}

func TestValidateConfig_ReportsConfigKeys(t *testing.T) {
	cfg, _, err := config.Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	require.NoError(t, config.ValidateConfig(cfg))

	cfg.Logging.Level = "loud"
	cfg.Server.Port = 70000

	err = config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level failed oneof")
	assert.Contains(t, err.Error(), "server.port failed max")
}
