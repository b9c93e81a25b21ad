package config

import (
	"os"

	"github.com/dmitrijs2005/usercatalog/internal/flagx"
)

// parseEnv reads ADDRESS, DATABASE_DSN, ALLOWED_ORIGINS and LOG_LEVEL, after
// loading .env from the working directory when present.
func parseEnv(cfg *Config) {
	if err := flagx.LoadDotEnv(); err != nil {
		panic(err)
	}

	if v, ok := os.LookupEnv("ADDRESS"); ok && v != "" {
		cfg.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok && v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
}
