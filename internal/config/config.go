package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=gestao_ativos port=5432 sslmode=disable"

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string
}

func Load() *Config {
	// .env é opcional; variáveis de ambiente têm precedência
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", defaultDSN),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}

	if cfg.DatabaseDSN == defaultDSN {
		log.Warn("DATABASE_DSN usando valor padrão; em produção defina a conexão do seu Postgres.")
	}
	if cfg.CORSOrigins == "*" {
		log.Warn("CORS_ALLOWED_ORIGINS usando valor padrão; em produção restrinja às origens do seu front-end.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
