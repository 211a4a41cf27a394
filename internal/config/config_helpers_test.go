package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	const key = "TEST_CONFIG_INT"
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset", nil, 42},
		{"valid", strp("100"), 100},
		{"negative", strp("-7"), -7},
		{"zero", strp("0"), 0},
		{"garbage", strp("lots"), 42},
		{"float", strp("3.5"), 42},
		{"empty", strp(""), 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != nil {
				t.Setenv(key, *tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsInt(key, 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const key = "TEST_CONFIG_DURATION"
	def := 5 * time.Minute
	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{"unset", nil, def},
		{"minutes", strp("15m"), 15 * time.Minute},
		{"compound", strp("1h30m15s"), time.Hour + 30*time.Minute + 15*time.Second},
		{"milliseconds", strp("250ms"), 250 * time.Millisecond},
		{"no unit", strp("30"), def},
		{"garbage", strp("soon"), def},
		{"empty", strp(""), def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != nil {
				t.Setenv(key, *tt.value)
			}
			assert.Equal(t, tt.want, getEnvAsDuration(key, def))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitList("a, b,"))
}

func strp(s string) *string { return &s }

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("loads default database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		setRequired(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should use default max connections")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should use default idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should use default lifetime")
	})

	t.Run("loads custom database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		setRequired(t)
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns, "Should use custom max connections")
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime, "Should use custom idle time")
		assert.Equal(t, 1*time.Hour, cfg.DBMaxConnLifetime, "Should use custom lifetime")
	})

	t.Run("uses defaults for invalid pool config values", func(t *testing.T) {
		clearEnvVars(t)
		setRequired(t)
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("DB_MAX_CONN_LIFETIME", "bad-duration")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should fallback to default for invalid max conns")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should fallback to default for invalid idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should fallback to default for invalid lifetime")
	})
}

// TestLoad_ProgressionDefaults verifies cache and retry knobs
func TestLoad_ProgressionDefaults(t *testing.T) {
	clearEnvVars(t)
	setRequired(t)
	t.Setenv("MISSION_CACHE_TTL", "30s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultMissionCacheSize, cfg.MissionCacheSize)
	assert.Equal(t, 30*time.Second, cfg.MissionCacheTTL)
	assert.Equal(t, DefaultUnlockMaxRetries, cfg.UnlockMaxRetries)
	assert.Equal(t, 450, cfg.CanvasMaxWidth)
	assert.Equal(t, 350, cfg.CanvasMaxHeight)
}

func TestLoad_TrustedProxies(t *testing.T) {
	clearEnvVars(t)
	setRequired(t)
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,10.0.0.2 ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, int64(DefaultMaxRequestBytes), cfg.MaxRequestBytes)
}
