package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/usercatalog/internal/flagx"
)

const (
	envAPIURL     = "API_URL"
	envDebounceMs = "DEBOUNCE_MS"
)

// parseEnv overlays cfg with API_URL and DEBOUNCE_MS. A .env file in the
// working directory is loaded first; variables already set take precedence
// over it.
func parseEnv(cfg *Config) {
	if err := flagx.LoadDotEnv(); err != nil {
		panic(err)
	}

	if v := os.Getenv(envAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(envDebounceMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			panic(fmt.Errorf("%s: invalid value %q", envDebounceMs, v))
		}
		cfg.DebounceInterval = time.Duration(ms) * time.Millisecond
	}
}
