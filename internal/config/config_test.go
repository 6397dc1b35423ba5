package config

import (
	"testing"

	"github.com/flexprice/rewardengine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, types.ModeLocal, cfg.Deployment.Mode)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, types.LogLevelDebug, cfg.Logging.Level)
	assert.False(t, cfg.Sentry.Enabled)
	assert.Equal(t, 0.1, cfg.Sentry.SampleRate)
}

func TestNewConfig_EnvOverride(t *testing.T) {
	t.Setenv("REWARDENGINE_LOGGING_LEVEL", "warn")
	t.Setenv("REWARDENGINE_SERVER_ADDRESS", ":9090")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, types.LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, ":9090", cfg.Server.Address)
}

func TestConfiguration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Configuration)
		wantErr bool
	}{
		{
			name:   "default",
			mutate: func(c *Configuration) {},
		},
		{
			name: "unknown_log_level",
			mutate: func(c *Configuration) {
				c.Logging.Level = "trace"
			},
			wantErr: true,
		},
		{
			name: "unknown_mode",
			mutate: func(c *Configuration) {
				c.Deployment.Mode = "worker"
			},
			wantErr: true,
		},
		{
			name: "missing_address",
			mutate: func(c *Configuration) {
				c.Server.Address = ""
			},
			wantErr: true,
		},
		{
			name: "sentry_enabled_without_dsn",
			mutate: func(c *Configuration) {
				c.Sentry.Enabled = true
			},
			wantErr: true,
		},
		{
			name: "sentry_enabled_with_dsn",
			mutate: func(c *Configuration) {
				c.Sentry.Enabled = true
				c.Sentry.DSN = "https://key@sentry.example.com/1"
				c.Sentry.SampleRate = 0.5
			},
		},
		{
			name: "sample_rate_out_of_range",
			mutate: func(c *Configuration) {
				c.Sentry.SampleRate = 2
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
