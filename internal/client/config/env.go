package config

import (
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig lists the environment variables understood by the client.
// Unset variables keep their zero value and are ignored.
type EnvConfig struct {
	ServerURL      string        `env:"GB_SERVER_URL" env-description:"blogging API base URL"`
	StoragePath    string        `env:"GB_STORAGE_PATH" env-description:"session database file"`
	RequestTimeout time.Duration `env:"GB_REQUEST_TIMEOUT" env-description:"HTTP request timeout"`
	LogLevel       string        `env:"GB_LOG_LEVEL" env-description:"debug|info|warn|error"`
	InsecureTLS    string        `env:"GB_INSECURE_TLS" env-description:"skip TLS verification"`
}

// parseEnv overlays cfg with GB_* variables. Malformed values panic, like
// the JSON loader.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	if ec.ServerURL != "" {
		cfg.ServerURL = ec.ServerURL
	}
	if ec.StoragePath != "" {
		cfg.StoragePath = ec.StoragePath
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.InsecureTLS != "" {
		v, err := strconv.ParseBool(ec.InsecureTLS)
		if err != nil {
			panic(err)
		}
		cfg.InsecureTLS = v
	}
}
