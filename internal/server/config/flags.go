package config

import (
	"flag"
	"strings"

	"github.com/dmitrijs2005/usercatalog/internal/flagx"
)

// parseFlags populates cfg from command-line flags:
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN, empty for the in-memory store
//	-o string   comma separated CORS origins
//	-l string   log level
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	origins := fs.String("o", strings.Join(cfg.AllowedOrigins, ","), "allowed CORS origins (comma separated)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "o" {
			cfg.AllowedOrigins = splitList(*origins)
		}
	})
}
