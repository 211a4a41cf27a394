package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	clearEnvVars(t)
	setRequired(t)
	t.Setenv("S3_ACCESS_KEY", "access")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("JWT_SECRET", "a-project-secret-that-is-long-enough!")
	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Warnings())
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := validConfig(t)
	cfg.Port = 70000
	cfg.MaxRequestBytes = 0
	cfg.CanvasMaxWidth = -1

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT out of range")
	assert.Contains(t, err.Error(), "MAX_REQUEST_BYTES")
	assert.Contains(t, err.Error(), "canvas bounds")
	assert.NotContains(t, err.Error(), "DB_MAX_CONNS")
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"example db password", func(c *Config) { c.DBPassword = exampleDBPassword }, "DB_PASSWORD"},
		{"example jwt secret", func(c *Config) { c.JWTSecret = exampleJWTSecret }, "example value"},
		{"short jwt secret", func(c *Config) { c.JWTSecret = "short" }, "shorter than"},
		{"missing s3 keys", func(c *Config) { c.S3SecretKey = "" }, "uploads will fail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			warnings := cfg.Warnings()
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], tt.want)
		})
	}
}
