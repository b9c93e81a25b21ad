package config

import (
	"time"

	"github.com/dmitrijs2005/usercatalog/internal/flagx"
)

// JsonConfig is the file form of Config. Absent keys leave the current
// value untouched.
type JsonConfig struct {
	APIURL           *string         `json:"api_url"`
	DebounceInterval *flagx.Duration `json:"debounce_interval"`
	RequestTimeout   *flagx.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the file named by -c or -config in args.
// Without either flag nothing happens. Read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	var jc JsonConfig
	if err := flagx.LoadJSON(path, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != nil {
		cfg.APIURL = *jc.APIURL
	}
	if jc.DebounceInterval != nil {
		cfg.DebounceInterval = time.Duration(*jc.DebounceInterval)
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeout)
	}
}
