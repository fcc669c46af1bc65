// Package gitmeta answers questions about a file's git history that the
// header templates and the churn-avoidance rule need.
package gitmeta

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Git struct {
	root     string
	disabled bool
}

// New verifies that root sits inside a git work tree.
func New(ctx context.Context, root string) (*Git, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", root, "rev-parse", "--is-inside-work-tree")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git not available or not a repo: %w", err)
	}
	if strings.TrimSpace(string(out)) != "true" {
		return nil, fmt.Errorf("not a git work tree")
	}
	return &Git{root: root}, nil
}

// Disabled returns a Git whose queries all report "unknown". Every file is
// considered touched so nothing is skipped.
func Disabled() *Git { return &Git{disabled: true} }

// Author returns the author of the first commit touching the file, empty
// when unknown.
func (g *Git) Author(path string) (string, error) {
	if g.disabled {
		return "", nil
	}
	return g.firstLogLine(path, "%an")
}

// CreationTime returns the author date of the first commit touching the
// file. ok is false when the file has no history or git is disabled.
func (g *Git) CreationTime(path string) (time.Time, bool, error) {
	if g.disabled {
		return time.Time{}, false, nil
	}
	out, err := g.firstLogLine(path, "%at")
	if err != nil {
		return time.Time{}, false, err
	}
	if out == "" {
		return time.Time{}, false, nil
	}
	epoch, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse author date %q: %w", out, err)
	}
	return time.Unix(epoch, 0), true, nil
}

// Touched reports whether the file differs from HEAD (staged, unstaged or
// untracked).
func (g *Git) Touched(ctx context.Context, path string) (bool, error) {
	if g.disabled {
		return true, nil
	}
	rel, _ := filepath.Rel(g.root, path)
	out, err := exec.CommandContext(ctx, "git", "-C", g.root, "status", "--porcelain", "--", rel).Output()
	if err != nil {
		return false, err
	}
	return len(bytes.TrimSpace(out)) > 0, nil
}

// firstLogLine runs git log in --reverse order with the given format and
// returns the first line of output.
func (g *Git) firstLogLine(path, format string) (string, error) {
	rel, _ := filepath.Rel(g.root, path)
	out, err := exec.Command("git", "-C", g.root, "log", "--format="+format, "--reverse", "--", rel).Output()
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s, nil
}
