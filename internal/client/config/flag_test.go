package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"gbcli", "-a", "https://api.local", "-s", "x.db", "-t", "4", "-l", "debug", "-k"},
			expected: &Config{
				ServerURL: "https://api.local", StoragePath: "x.db", RequestTimeout: 4 * time.Second,
				LogLevel: "debug", InsecureTLS: true,
			},
		},
		{
			name:     "config flag is ignored here",
			args:     []string{"gbcli", "-c", "cfg.json", "-t", "2"},
			expected: &Config{RequestTimeout: 2 * time.Second},
		},
		{name: "bad timeout", args: []string{"gbcli", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
