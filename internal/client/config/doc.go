// Package config loads runtime configuration for the gophblog CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. GB_* environment variables (read with cleanenv).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-s string   session database path
//	-t int      request timeout (seconds)
//	-l string   log level
//	-k          skip TLS verification
//
// # JSON schema
//
// Durations accept "10s" strings or integer nanoseconds:
//
//	{
//	  "server_url": "https://localhost:7147",
//	  "storage_path": "blog.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "insecure_tls": false
//	}
package config
