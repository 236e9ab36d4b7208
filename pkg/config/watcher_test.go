package config

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edu2job/edu2job/pkg/logging"
)

func TestNewWatcher_Validation(t *testing.T) {
	logger := logging.Nop{}

	_, err := NewWatcher(WatcherConfig{ConfigPath: "c.yaml", OnChange: func(*Config) {}, Logger: logger})
	assert.ErrorContains(t, err, "loader is required")

	_, err = NewWatcher(WatcherConfig{Loader: DefaultLoader{}, ConfigPath: "c.yaml", Logger: logger})
	assert.ErrorContains(t, err, "onChange callback is required")

	_, err = NewWatcher(WatcherConfig{Loader: DefaultLoader{}, OnChange: func(*Config) {}, Logger: logger})
	assert.ErrorContains(t, err, "config path is required")
}

func TestWatcher_ReloadOnChange(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", "server:\n  port: 5000\n")
	loader := NewFileLoader(path)

	current, err := loader.Load()
	require.NoError(t, err)

	var mu sync.Mutex
	var reloaded *Config
	notify := make(chan struct{}, 1)

	w, err := NewWatcher(WatcherConfig{
		Loader:     loader,
		ConfigPath: path,
		Current:    current,
		OnChange: func(cfg *Config) {
			mu.Lock()
			reloaded = cfg
			mu.Unlock()
		},
		Logger:       logging.Nop{},
		ReloadNotify: notify,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Watch(ctx)
	}()

	// Give the watcher time to register the file before writing
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 5001\n"), 0600))

	select {
	case <-notify:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not attempt a reload")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, reloaded, "callback should run for a changed config")
	assert.Equal(t, 5001, reloaded.Server.Port)

	cancel()
	<-done
}

func TestWatcher_KeepsConfigOnLoadError(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", "server:\n  port: 5000\n")
	loader := NewFileLoader(path)

	current, err := loader.Load()
	require.NoError(t, err)

	called := false
	notify := make(chan struct{}, 1)

	w, err := NewWatcher(WatcherConfig{
		Loader:       loader,
		ConfigPath:   path,
		Current:      current,
		OnChange:     func(*Config) { called = true },
		Logger:       logging.Nop{},
		ReloadNotify: notify,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Watch(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 99999\n"), 0600))

	select {
	case <-notify:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not attempt a reload")
	}

	assert.False(t, called, "invalid config must not reach the callback")

	cancel()
	<-done
}
