package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/flagx"
)

// parseFlags populates cfg from the short flags it owns:
//
//	-a string   API base URL
//	-s string   session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//	-k          skip TLS certificate verification
//
// Other arguments (such as -c) are filtered out before parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-l", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "blogging API base URL")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "session database file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.InsecureTLS, "k", cfg.InsecureTLS, "skip TLS certificate verification")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
