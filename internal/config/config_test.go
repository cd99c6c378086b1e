package config_test

import (
	"strings"
	"testing"

	"gestao-ativos-backend/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=gestao_ativos")
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoadWarnsOnDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	hook := test.NewGlobal()
	defer hook.Reset()

	config.Load()

	var dsnWarned, corsWarned bool
	for _, entry := range hook.Entries {
		if entry.Level != logrus.WarnLevel {
			continue
		}
		if strings.Contains(entry.Message, "DATABASE_DSN") {
			dsnWarned = true
		}
		if strings.Contains(entry.Message, "CORS_ALLOWED_ORIGINS") {
			corsWarned = true
		}
	}
	assert.True(t, dsnWarned)
	assert.True(t, corsWarned)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=ativos")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "host=db user=app dbname=ativos", cfg.DatabaseDSN)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigins)
}
