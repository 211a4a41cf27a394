package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StarSailors_Go/internal/config"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/progression"
)

type fakeServer struct {
	stopped bool
	err     error
}

func (f *fakeServer) Stop(context.Context) error {
	f.stopped = true
	return f.err
}

type fakePool struct {
	closed bool
}

func (f *fakePool) Ping(context.Context) error { return nil }
func (f *fakePool) Close()                     { f.closed = true }

type fakeProgression struct {
	progression.Service
	registered bool
}

func (f *fakeProgression) Register(event.Bus) { f.registered = true }

func TestGracefulShutdown(t *testing.T) {
	srv := &fakeServer{err: errors.New("deadline exceeded")}
	pool := &fakePool{}

	GracefulShutdown(context.Background(), ShutdownComponents{Server: srv, DB: pool})

	assert.True(t, srv.stopped)
	assert.True(t, pool.closed, "Pool is closed even when the server stop fails")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
		"notes.txt",
	}, names)
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{LogLevel: "info", LogFormat: "json", Environment: "test", LogDir: dir}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { f.Close() })

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	f, err := SetupLogger(&config.Config{LogLevel: "warn", LogFormat: "text"})
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestRegisterEventHandlers(t *testing.T) {
	t.Run("without webhook", func(t *testing.T) {
		prog := &fakeProgression{}
		err := RegisterEventHandlers(EventHandlerDependencies{
			EventBus:           event.NewMemoryBus(),
			ProgressionService: prog,
			Config:             &config.Config{},
		})
		require.NoError(t, err)
		assert.True(t, prog.registered)
	})

	t.Run("bad webhook url", func(t *testing.T) {
		err := RegisterEventHandlers(EventHandlerDependencies{
			EventBus:           event.NewMemoryBus(),
			ProgressionService: &fakeProgression{},
			Config:             &config.Config{DiscordWebhookURL: "https://example.com/not-a-hook"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedCreateNotifier)
	})
}

func TestLoadGameData(t *testing.T) {
	data, err := LoadGameData()
	require.NoError(t, err)
	assert.NotEmpty(t, data.Catalog.Entries())
	assert.NotNil(t, data.Forms)
}
