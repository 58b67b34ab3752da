package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_HOST", "")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "3")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	cfg := Load()

	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.SwaggerEnabled)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, "contacts", cfg.Tracing.ServiceName)
	assert.Equal(t, "collector:4317", cfg.Tracing.Endpoint)
}

func TestLoad_TracesEndpointWins(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "traces:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	assert.Equal(t, "traces:4318", Load().Tracing.Endpoint)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{TimeZone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.TimeZone = "UTC"
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestShutdownTimeout_Default(t *testing.T) {
	cfg := &AppConfig{}
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
