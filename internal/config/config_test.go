package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "instagrow_test")
}

func TestNew_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URL)
	assert.Equal(t, "instagrow_test", cfg.Mongo.Database)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "São Paulo", cfg.Payment.MerchantCity)
	assert.Equal(t, "instagrow", cfg.Observability.ServiceName)
	assert.Equal(t, "/metrics", cfg.Observability.PrometheusPath)
}

func TestNew_MissingMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "instagrow_test")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URL")
}

func TestNew_MissingDatabaseName(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestNew_CORSOriginList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "https://instagrow.app, https://admin.instagrow.app")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://instagrow.app", "https://admin.instagrow.app"}, cfg.CORS.AllowOrigins)
}

func TestNew_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "-1")

	_, err := New()
	require.Error(t, err)
}

func TestNew_NormalizesObservability(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OBS_LOG_LEVEL", " DEBUG ")
	t.Setenv("OBS_PROMETHEUS_PATH", "internal/metrics")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "/internal/metrics", cfg.Observability.PrometheusPath)
}
