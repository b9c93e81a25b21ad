package config

import "github.com/dmitrijs2005/usercatalog/internal/flagx"

// JsonConfig is the file form of Config. Absent keys leave values untouched.
type JsonConfig struct {
	EndpointAddr   *string  `json:"endpoint_addr"`
	DatabaseDSN    *string  `json:"database_dsn"`
	AllowedOrigins []string `json:"allowed_origins"`
	LogLevel       *string  `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c or -config. Read and
// decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	var jc JsonConfig
	if err := flagx.LoadJSON(path, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddr != nil {
		cfg.EndpointAddr = *jc.EndpointAddr
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.AllowedOrigins != nil {
		cfg.AllowedOrigins = jc.AllowedOrigins
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
