// Package config handles configuration for the users API server,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import (
	"os"
	"strings"
)

// Config holds runtime settings for the users API server.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - AllowedOrigins: CORS origins, "*" allows any.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr   string
	DatabaseDSN    string
	AllowedOrigins []string
	LogLevel       string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DatabaseDSN = ""
	c.AllowedOrigins = []string{"*"}
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the environment (and
// .env), then an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
