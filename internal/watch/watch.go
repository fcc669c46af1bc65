// Package watch runs the header pipeline reactively on file-system events.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/samber/headerstamp/internal/debounce"
	"github.com/samber/headerstamp/internal/runner"
)

// DefaultInterval is the minimum gap between two pipeline runs on the same
// file.
const DefaultInterval = 2 * time.Second

// Watcher subscribes to write events under a set of paths and hands each
// changed file to the runner in fix mode. Events are handled on a single
// goroutine, so the pipeline only ever sees one snapshot at a time; a
// per-file debouncer throttles editors that fire bursts of writes.
type Watcher struct {
	runner     *runner.Runner
	interval   time.Duration
	debouncers map[string]*debounce.Debouncer
	now        func() time.Time
}

// New creates a watcher. A non-positive interval falls back to
// DefaultInterval.
func New(r *runner.Runner, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		runner:     r,
		interval:   interval,
		debouncers: make(map[string]*debounce.Debouncer),
		now:        time.Now,
	}
}

// Run blocks, processing events until ctx is cancelled or the underlying
// watcher closes.
func (w *Watcher) Run(ctx context.Context, paths []string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, p := range paths {
		if err := addRecursive(fw, p); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, fw, ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, fw *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	info, err := os.Stat(ev.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		// Newly created directories join the watch set.
		if ev.Op&fsnotify.Create != 0 {
			if err := addRecursive(fw, ev.Name); err != nil {
				log.Warn().Err(err).Str("path", ev.Name).Msg("watch dir")
			}
		}
		return
	}

	now := w.now()
	d := w.debouncers[ev.Name]
	if d == nil {
		d = debounce.New(w.interval)
		w.debouncers[ev.Name] = d
	}
	if !d.ShouldRun(now) {
		return
	}

	res := w.runner.ProcessFile(ctx, ev.Name, true)
	d.RecordRun(now)
	switch {
	case res.Err != nil:
		log.Error().Err(res.Err).Str("path", res.Path).Msg("process")
	case res.Action != runner.ActionNone:
		log.Info().Str("path", res.Path).Str("action", string(res.Action)).Msg("fixed")
	}
}

func addRecursive(fw *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fw.Add(root)
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (name == ".git" || name == "vendor" || name == "node_modules") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}
