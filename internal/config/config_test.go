package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; viper ignores empty values.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ENV", "LOG_FILE", "LOG_CONSOLE", "SERVER_PORT",
		"KAFKA_ENABLED", "KAFKA_BROKERS", "KAFKA_GROUP_ID",
		"KAFKA_TOPICS_REQUESTS", "KAFKA_TOPICS_RESULTS", "KAFKA_TOPICS_LOGS",
		"WORKER_POLL_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "calculator.log", cfg.Log.File)
	assert.True(t, cfg.Log.Console)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "scicalc", cfg.Kafka.GroupID)
	assert.Equal(t, "calculation-requests", cfg.Kafka.Topics.Requests)
	assert.Equal(t, "calculation-results", cfg.Kafka.Topics.Results)
	assert.Equal(t, "calculator-logs", cfg.Kafka.Topics.Logs)
	assert.Equal(t, 5*time.Second, cfg.GetPollInterval())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_FILE", "/var/log/scicalc.log")
	t.Setenv("LOG_CONSOLE", "false")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_TOPICS_LOGS", "audit")
	t.Setenv("WORKER_POLL_INTERVAL", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/var/log/scicalc.log", cfg.Log.File)
	assert.False(t, cfg.Log.Console)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, "audit", cfg.Kafka.Topics.Logs)
	assert.Equal(t, 2*time.Second, cfg.GetPollInterval())
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))

	yaml := []byte(`env: dev
log:
  file: calc-dev.log
server:
  port: "7000"
kafka:
  brokers:
    - kafka-1:9092
    - kafka-2:9092
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "local.yaml"), yaml, 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "calc-dev.log", cfg.Log.File)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Log.Console, "unset keys keep their defaults")
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.yaml"), []byte("env: [unclosed"), 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: "8080"}}
	assert.NoError(t, cfg.Validate())

	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = &Config{
		Server: ServerConfig{Port: "8080"},
		Kafka:  KafkaConfig{Enabled: true},
	}
	assert.Error(t, cfg.Validate())
}
