package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Init is guarded by a sync.Once, so the initialization path is exercised
// exactly once per test binary. The env override is set up front so both the
// default and override behavior are observable from that single run.
func TestInit(t *testing.T) {
	os.Setenv("CATALOG_SERVER_HOST", "127.0.0.1")
	defer os.Unsetenv("CATALOG_SERVER_HOST")

	require.NoError(t, Init())

	// Env override wins
	assert.Equal(t, "127.0.0.1", GetString("server.host"))

	// Everything else falls back to defaults
	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "database", GetString("timestamps.store"))
	assert.Equal(t, 60, GetInt("youtube.rate_limit"))
	assert.True(t, GetBool("rate_limiting.enabled"))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "./data/catalog.db", cfg.Database.Path)
	assert.Equal(t, "http://localhost:8080", cfg.Share.BaseURL)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "valid config",
			config: &Config{
				Server:     ServerConfig{Host: "localhost", Port: 8080},
				Database:   DatabaseConfig{Path: "./data/catalog.db"},
				Timestamps: TimestampConfig{Store: "memory"},
				YouTube:    YouTubeConfig{RateLimit: 60},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server: ServerConfig{Host: "localhost", Port: 0},
			},
			wantErr: true,
		},
		{
			name: "unknown store falls back to database",
			config: &Config{
				Server:     ServerConfig{Host: "localhost", Port: 8080},
				Timestamps: TimestampConfig{Store: "scratchpad"},
			},
			wantErr: false,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "database", c.Timestamps.Store)
			},
		},
		{
			name: "zero rate limit auto-corrected",
			config: &Config{
				Server:     ServerConfig{Host: "localhost", Port: 8080},
				Timestamps: TimestampConfig{Store: "database"},
			},
			wantErr: false,
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 60, c.YouTube.RateLimit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, tt.config)
			}
		})
	}
}
