package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_FirstRunAlwaysAllowed(t *testing.T) {
	d := New(time.Second)
	assert.True(t, d.ShouldRun(time.Now()))
}

func TestDebouncer_SuppressesWithinInterval(t *testing.T) {
	d := New(2 * time.Second)
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, d.ShouldRun(start))
	d.RecordRun(start)

	assert.False(t, d.ShouldRun(start.Add(500*time.Millisecond)))
	assert.False(t, d.ShouldRun(start.Add(1900*time.Millisecond)))
	assert.True(t, d.ShouldRun(start.Add(2*time.Second)))
}

func TestDebouncer_RecordMovesTheWindow(t *testing.T) {
	d := New(time.Second)
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	d.RecordRun(start)
	d.RecordRun(start.Add(3 * time.Second))
	assert.False(t, d.ShouldRun(start.Add(3500*time.Millisecond)))
	assert.True(t, d.ShouldRun(start.Add(4*time.Second)))
}

func TestDebouncer_ZeroIntervalNeverSuppresses(t *testing.T) {
	d := New(0)
	now := time.Now()
	d.RecordRun(now)
	assert.True(t, d.ShouldRun(now))
}
