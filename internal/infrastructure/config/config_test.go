package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_DefaultsApply(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, "logging:\n  level: debug\n"))

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "/tmp/craftsolver-daemon.sock", cfg.Daemon.SocketPath)
	assert.Equal(t, 30*time.Second, cfg.Daemon.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Daemon.RateLimit.Requests)
	assert.Equal(t, 1000, cfg.Solver.MaxCraftPoints)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "daemon:\n  socket_path: /tmp/from-file.sock\n")
	t.Setenv("CS_DAEMON_SOCKET_PATH", "/tmp/from-env.sock")
	t.Setenv("CS_METRICS_ENABLED", "true")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.sock", cfg.Daemon.SocketPath)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "logging:\n  level: loud\n"))
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = config.LoadConfig(writeConfig(t, "database:\n  type: mysql\n"))
	assert.ErrorContains(t, err, "Type")
}

func TestLoadConfig_SocketPathRule(t *testing.T) {
	tests := []struct {
		name   string
		socket string
		valid  bool
	}{
		{"absolute", "/run/craftsolver/daemon.sock", true},
		{"relative", "daemon.sock", false},
		{"directory", "/tmp/", false},
		{"too long", "/tmp/" + strings.Repeat("s", 120) + ".sock", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, "daemon:\n  socket_path: "+tt.socket+"\n"))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var validationErr *shared.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "Config.Daemon.SocketPath", validationErr.Field)
		})
	}
}

func TestLoadConfig_PresetsFileMustBeYAML(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, "solver:\n  presets_file: /etc/craftsolver/presets.yml\n"))
	require.NoError(t, err)
	assert.Equal(t, "/etc/craftsolver/presets.yml", cfg.Solver.PresetsFile)

	_, err = config.LoadConfig(writeConfig(t, "solver:\n  presets_file: presets.json\n"))
	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Config.Solver.PresetsFile", validationErr.Field)
	assert.Contains(t, validationErr.Message, ".yaml or .yml")
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	cfg := config.LoadConfigOrDefault(writeConfig(t, "logging:\n  level: loud\n"))

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestUserConfigHandler_RoundTrip(t *testing.T) {
	h, err := config.NewUserConfigHandlerAt(t.TempDir())
	require.NoError(t, err)

	empty, err := h.Load()
	require.NoError(t, err)
	assert.Empty(t, empty.DefaultSocket)

	require.NoError(t, h.SetDefaultSocket("/tmp/cs.sock"))
	require.NoError(t, h.SetDefaultPreset("expert"))

	loaded, err := h.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cs.sock", loaded.DefaultSocket)
	assert.Equal(t, "expert", loaded.DefaultPreset)
}
