package repair

import (
	"context"
	"errors"
	"fmt"

	"dedupfix/internal/console"
	"dedupfix/internal/document"
	"dedupfix/internal/gitutil"
	"dedupfix/internal/preview"
	"dedupfix/internal/rewrite"
)

var (
	// ErrAborted is returned when the user declines the interactive prompt.
	ErrAborted = errors.New("aborted by user")
	// ErrRefused is returned when the work tree check blocks the write.
	ErrRefused = errors.New("refusing to modify file")
)

// diffContext is the number of unchanged lines shown around a removal.
const diffContext = 3

// Config is everything a single run needs, usually filled from flags.
type Config struct {
	Path   string
	Marker string

	WholeLines   bool
	DryRun       bool
	ShowDiff     bool
	Backup       bool
	InPlace      bool
	Interactive  bool
	RequireClean bool
}

// ConfirmFunc asks whether plan should be written to path.
type ConfirmFunc func(ctx context.Context, path string, plan *Plan) (bool, error)

// Runner performs one repair against the filesystem.
type Runner struct {
	Printer *console.Printer
	Confirm ConfirmFunc
}

// Run loads cfg.Path, plans the removal and writes the result. The file is
// only written after locating and scanning succeeded and every check passed.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Plan, error) {
	doc, err := document.Load(cfg.Path)
	if err != nil {
		return nil, err
	}

	plan, err := NewPlan(doc.Text, PlanOptions{Marker: cfg.Marker, WholeLines: cfg.WholeLines})
	if err != nil {
		return nil, err
	}

	r.Printer.Infof("Found duplicate %q at offset %d (line %d); first at offset %d (line %d)",
		plan.Marker, plan.Second, plan.SecondLine, plan.First, plan.FirstLine)
	r.Printer.Infof("Removing offsets %d to %d (lines %d-%d)", plan.Start, plan.End, plan.SecondLine, plan.EndLine)

	if cfg.ShowDiff || cfg.DryRun {
		r.Printer.Diff(preview.Unified(doc.Text, plan.Output, diffContext))
	}

	if cfg.DryRun {
		r.Printer.Successf("Dry run: %s left unchanged", cfg.Path)
		return plan, nil
	}

	if cfg.RequireClean {
		dirty, err := gitutil.HasUncommittedChanges(ctx, cfg.Path)
		if err != nil {
			return plan, fmt.Errorf("%w: cannot check git status of %s: %w", ErrRefused, cfg.Path, err)
		}
		if dirty {
			return plan, fmt.Errorf("%w: %s has uncommitted changes", ErrRefused, cfg.Path)
		}
	}

	if cfg.Interactive {
		if r.Confirm == nil {
			return plan, errors.New("interactive confirmation is not available")
		}
		ok, err := r.Confirm(ctx, cfg.Path, plan)
		if err != nil {
			return plan, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			return plan, ErrAborted
		}
	}

	opts := rewrite.WriteOptions{Backup: cfg.Backup, InPlace: cfg.InPlace}
	if err := rewrite.WriteFile(cfg.Path, []byte(plan.Output), opts); err != nil {
		return plan, err
	}
	if cfg.Backup {
		r.Printer.Infof("Original saved to %s", rewrite.BackupPath(cfg.Path))
	}
	r.Printer.Successf("Fixed %s", cfg.Path)
	return plan, nil
}
