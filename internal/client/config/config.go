package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the catalogue CLI.
//
// Fields:
//   - APIURL: base URL of the users API; the "/users" path is resolved against it.
//   - DebounceInterval: quiet period before a search query is sent.
//   - RequestTimeout: per-request timeout, zero leaves the transport default.
//   - Verbose: log at debug level.
type Config struct {
	APIURL           string
	DebounceInterval time.Duration
	RequestTimeout   time.Duration
	Verbose          bool
}

const (
	DefaultAPIURL           = "http://localhost:8000"
	DefaultDebounceInterval = 300 * time.Millisecond
)

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = DefaultAPIURL
	c.DebounceInterval = DefaultDebounceInterval
	c.RequestTimeout = 0
	c.Verbose = false
}

// LoadConfig constructs a Config from defaults, then the environment (and
// .env), then the JSON file, then command-line flags. Later sources take
// precedence over earlier ones. Invalid input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
