package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 30
  write_timeout: 30
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
event_log:
  file_name: event-log/records.jsonl
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, "event-log/records.jsonl", cfg.EventLog.FileName)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	path := writeTempConfig(t, `server:
  read_header_timeout: 5
  read_timeout: 30
  write_timeout: 30
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
event_log:
  file_name: event-log/records.jsonl
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_MissingEventLogFileName(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 30
  write_timeout: 30
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "event_log.file_name")
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 70000
  read_header_timeout: 5
  read_timeout: 30
  write_timeout: 30
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
event_log:
  file_name: event-log/records.jsonl
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
