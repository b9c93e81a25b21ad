package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usercatalog/internal/flagx"
)

// parseFlags populates cfg from command-line flags:
//
//	-a string   users API base URL
//	-d int      search debounce interval (milliseconds)
//	-t int      request timeout (seconds, 0 = none)
//	-v          verbose logging
//
// Only these flags are looked at, so -c/-config can sit alongside them.
// Flags that are not given leave cfg untouched.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-v"}, "-v")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "users API base URL")
	debounceMs := fs.Int("d", int(cfg.DebounceInterval.Milliseconds()), "search debounce interval (in milliseconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if *debounceMs < 0 || *timeout < 0 {
		panic(fmt.Errorf("negative interval: -d %d -t %d", *debounceMs, *timeout))
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.DebounceInterval = time.Duration(*debounceMs) * time.Millisecond
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
