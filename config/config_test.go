package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("RABBIT_URL", "")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Empty(t, cfg.RabbitURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8088")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "shareit")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "shareit_prod")
	t.Setenv("DB_SSLMODE", "require")

	cfg := Load()
	assert.Equal(t, "8088", cfg.ServerPort)
	assert.Equal(t,
		"host=db.internal port=5433 user=shareit password=secret dbname=shareit_prod sslmode=require",
		cfg.DSN())
}
