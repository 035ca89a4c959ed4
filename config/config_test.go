package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, secrets map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, value := range secrets {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(value), 0644))
	}
	return dir
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for name, value := range map[string]string{
		"SERVER_PORT": "8080",
		"SERVER_HOST": "localhost",
		"DB_HOST":     "localhost",
		"DB_PORT":     "5432",
		"DB_NAME":     "noshheaven",
		"DB_SSL_MODE": "disable",
		"REDIS_HOST":  "localhost",
		"REDIS_PORT":  "6379",
		"REDIS_URL":   "redis://localhost:6379",
	} {
		t.Setenv(name, value)
	}
}

func TestLoadConfigFromSecrets(t *testing.T) {
	dir := writeSecrets(t, map[string]string{
		"db_user":        "postgres",
		"db_password":    "postpass",
		"jwt_secret":     "test-jwt-secret",
		"redis_password": "redispass",
		"db_host":        "localhost",
		"db_port":        "5432",
		"db_name":        "noshheaven",
		"db_ssl_mode":    "disable",
		"redis_host":     "localhost",
		"redis_port":     "6379",
		"redis_url":      "redis://localhost:6379",
		"server_port":    "8080",
		"server_host":    "localhost",
	})
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("ENV", "test")
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postpass", cfg.DBPassword)
	assert.Equal(t, "noshheaven", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "test-jwt-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadConfigMissingSecrets(t *testing.T) {
	// An empty secrets directory fails validation
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("ENV", "test")
	setRequiredEnv(t)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
