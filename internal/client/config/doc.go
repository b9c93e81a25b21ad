// Package config loads runtime configuration for the catalogue CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: API_URL and DEBOUNCE_MS, with an optional .env file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   users API base URL (default http://localhost:8000)
//	-d int      search debounce interval in milliseconds (default 300)
//	-t int      request timeout in seconds (default 0, no timeout)
//	-v          verbose logging
//
// # JSON schema
//
// Durations are strings like "300ms" or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:8000",
//	  "debounce_interval": "300ms",
//	  "request_timeout": "10s"
//	}
package config
