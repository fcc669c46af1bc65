// Package runner walks files on disk and feeds them through the header
// pipeline, reporting or applying the resulting edits.
package runner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/headerstamp/internal/engine"
)

// GitMetadata describes the git queries the runner relies on.
type GitMetadata interface {
	Author(path string) (string, error)
	CreationTime(path string) (time.Time, bool, error)
	// Touched reports if file has changes compared to HEAD (or if newly
	// added/unstaged).
	Touched(ctx context.Context, path string) (bool, error)
}

// Options configures a Runner.
type Options struct {
	Root        string
	Config      engine.Config
	Git         GitMetadata
	Force       bool
	RespectGit  bool
	StripEmojis bool
	// Now is the clock used for template expansion; defaults to time.Now.
	Now func() time.Time
}

// Runner applies the header pipeline to files and directories.
type Runner struct {
	opts Options
}

// New creates a runner.
func New(opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{opts: opts}
}

// Action describes what happened (or would happen) to a file.
type Action string

const (
	// ActionNone indicates that no change is required for the file.
	ActionNone Action = "none"
	// ActionInsert indicates that a header was (or would be) inserted.
	ActionInsert Action = "insert"
	// ActionReplace indicates that a malformed header was (or would be)
	// replaced.
	ActionReplace Action = "replace"
	// ActionUpdate indicates that only the Last Updated field changed.
	ActionUpdate Action = "update"
	// ActionStrip indicates that only emoji were removed.
	ActionStrip Action = "strip"
)

// FileResult describes the action taken or required for a file.
type FileResult struct {
	Path    string
	Action  Action
	Err     error
	Warning string
}

var skippedDirs = map[string]bool{
	".git":         true,
	".idea":        true,
	".vscode":      true,
	"vendor":       true,
	"node_modules": true,
}

// Process checks (and with fix, rewrites) the headers for the given paths.
// Directories are walked recursively. Per-file errors land in the result
// list and never abort the walk.
func (r *Runner) Process(ctx context.Context, paths []string, fix bool) ([]FileResult, error) {
	var results []FileResult
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			results = append(results, FileResult{Path: p, Err: err})
			continue
		}
		if !info.IsDir() {
			results = append(results, r.processFile(ctx, p, fix))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				results = append(results, FileResult{Path: path, Err: err})
				return nil
			}
			if d.IsDir() {
				if skippedDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			results = append(results, r.processFile(ctx, path, fix))
			return nil
		})
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ProcessFile runs the pipeline on a single file.
func (r *Runner) ProcessFile(ctx context.Context, path string, fix bool) FileResult {
	return r.processFile(ctx, path, fix)
}

func (r *Runner) processFile(ctx context.Context, path string, fix bool) FileResult {
	name := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !engine.IsEligible(name, LanguageID(ext), ext, r.opts.Config) {
		return FileResult{Path: path, Action: ActionNone}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	if !utf8.Valid(content) {
		if r.opts.Force {
			return FileResult{Path: path, Warning: "non-UTF8/binary file, forced to check", Action: ActionNone}
		}
		return FileResult{Path: path, Action: ActionNone}
	}

	original := string(content)
	text := original
	if r.opts.StripEmojis {
		text = engine.RemoveEmojis(text)
	}

	cfg := r.expandGitPlaceholders(path, r.opts.Config)
	res := engine.Apply(text, cfg, r.opts.Now())

	if res.Outcome == engine.OutcomeTimestampUpdated && r.shouldSkipDueToGit(ctx, path) {
		// A pure timestamp refresh on an untouched file is churn.
		res = engine.Result{Text: text, Outcome: engine.OutcomeNoop}
	}

	action := actionFor(res.Outcome)
	if action == ActionNone && res.Text != original {
		action = ActionStrip
	}
	if action == ActionNone {
		return FileResult{Path: path, Action: ActionNone}
	}
	if fix {
		if err := os.WriteFile(path, []byte(res.Text), 0o666); err != nil {
			return FileResult{Path: path, Err: err}
		}
	}
	return FileResult{Path: path, Action: action}
}

// expandGitPlaceholders substitutes the history-derived placeholders the
// core renderer does not know about. Unknown values leave the placeholder
// literal, mirroring the renderer's own rule.
func (r *Runner) expandGitPlaceholders(path string, cfg engine.Config) engine.Config {
	if r.opts.Git == nil {
		return cfg
	}
	if strings.Contains(cfg.Template, "{author}") {
		if author, err := r.opts.Git.Author(path); err == nil && author != "" {
			cfg.Template = strings.ReplaceAll(cfg.Template, "{author}", author)
		}
	}
	if strings.Contains(cfg.Template, "{created}") {
		if created, ok, err := r.opts.Git.CreationTime(path); err == nil && ok {
			stamp := engine.FormatTimestamp(created, cfg.TimestampFormat)
			cfg.Template = strings.ReplaceAll(cfg.Template, "{created}", stamp)
		}
	}
	return cfg
}

func (r *Runner) shouldSkipDueToGit(ctx context.Context, path string) bool {
	if !r.opts.RespectGit || r.opts.Git == nil {
		return false
	}
	touched, _ := r.opts.Git.Touched(ctx, path)
	return !touched
}

func actionFor(o engine.Outcome) Action {
	switch o {
	case engine.OutcomeInserted:
		return ActionInsert
	case engine.OutcomeReplaced:
		return ActionReplace
	case engine.OutcomeTimestampUpdated:
		return ActionUpdate
	default:
		return ActionNone
	}
}
