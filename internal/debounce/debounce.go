// Package debounce rate-limits reactive pipeline runs. The debouncer holds
// no clock of its own; callers pass the current time in, which keeps it
// trivially testable.
package debounce

import "time"

// Debouncer allows at most one run per interval.
type Debouncer struct {
	interval time.Duration
	last     time.Time
}

// New creates a debouncer with the given minimum interval between runs.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// ShouldRun reports whether enough time has passed since the last recorded
// run. The first call always reports true.
func (d *Debouncer) ShouldRun(now time.Time) bool {
	return d.last.IsZero() || now.Sub(d.last) >= d.interval
}

// RecordRun marks a run as having happened at now.
func (d *Debouncer) RecordRun(now time.Time) {
	d.last = now
}
