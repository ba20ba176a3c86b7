package gitutil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotRepository is returned when the file does not live in a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// CommandRunner is an interface for running external commands.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}

// DefaultRunner implements CommandRunner using os/exec.Command.
type DefaultRunner struct{}

func (r DefaultRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).CombinedOutput()
}

// We'll use a package-level variable for the runner
var runner CommandRunner = DefaultRunner{}

// HasUncommittedChanges reports whether git sees staged, unstaged or
// untracked changes to path.
func HasUncommittedChanges(ctx context.Context, path string) (bool, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	outputBytes, err := runner.CombinedOutput(ctx, "git", "-C", dir, "status", "--porcelain", "--", base)
	output := string(outputBytes)
	if strings.Contains(strings.ToLower(output), "not a git repository") {
		return false, fmt.Errorf("%w: %s", ErrNotRepository, strings.TrimSpace(output))
	}
	if err != nil {
		return false, fmt.Errorf("error running git status: %w, output: %s", err, output)
	}

	return strings.TrimSpace(output) != "", nil
}

// For testing, we'll add a function to set a mock runner
func SetRunner(r CommandRunner) {
	runner = r
}
