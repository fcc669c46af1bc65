package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samber/headerstamp/internal/engine"
	"github.com/samber/headerstamp/internal/runner"
)

func TestWatcher_FixesOnWrite(t *testing.T) {
	if testing.Short() {
		t.Skip("short mode")
	}
	dir := t.TempDir()
	r := runner.New(runner.Options{Root: dir, Config: engine.DefaultConfig()})
	w := New(r, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, []string{dir})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o666))

	assert.Eventually(t, func() bool {
		b, err := os.ReadFile(path)
		return err == nil && strings.HasPrefix(string(b), "/* Copyright (c) ")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	<-done
}

func TestWatcher_DefaultInterval(t *testing.T) {
	r := runner.New(runner.Options{Config: engine.DefaultConfig()})
	w := New(r, 0)
	assert.Equal(t, DefaultInterval, w.interval)
}
