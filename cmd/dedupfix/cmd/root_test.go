package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dedupfix/internal/gitutil"
)

const source = "void foo(){a}\nvoid foo(){b;c}\nvoid bar(){d}"

// Helper to create a temporary source file with given content
func createTempSourceFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "Foo.java")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp source file: %v", err)
	}
	return tmpFile
}

// Helper to read file content as string
func readFileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(data)
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	code = run(context.Background(), rootCmd, args)
	return code, out.String(), errOut.String()
}

func TestRoot_RemovesDuplicate(t *testing.T) {
	path := createTempSourceFile(t, source)

	code, out, stderr := execute(t, path, "--marker", "void foo(")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if got := readFileContent(t, path); got != "void foo(){a}\n\nvoid bar(){d}" {
		t.Errorf("file = %q", got)
	}
	for _, want := range []string{
		`Found duplicate "void foo(" at offset 14 (line 2); first at offset 0 (line 1)`,
		"Removing offsets 14 to 29 (lines 2-2)",
		"Fixed " + path,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q: %q", want, out)
		}
	}
}

func TestRoot_WholeLines(t *testing.T) {
	path := createTempSourceFile(t, source)

	code, _, stderr := execute(t, path, "-m", "void foo(", "-w")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if got := readFileContent(t, path); got != "void foo(){a}\nvoid bar(){d}" {
		t.Errorf("file = %q", got)
	}
}

func TestRoot_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "marker not found",
			content:    "void bar(){}",
			args:       []string{"-m", "void foo("},
			wantCode:   exitMarkerNotDuplicated,
			wantStderr: `error: marker "void foo(" not found`,
		},
		{
			name:       "marker once",
			content:    "void foo(){}",
			args:       []string{"-m", "void foo("},
			wantCode:   exitMarkerNotDuplicated,
			wantStderr: `error: only one occurrence of "void foo("`,
		},
		{
			name:       "unbalanced block",
			content:    "void foo(){}\nvoid foo(){\n",
			args:       []string{"-m", "void foo("},
			wantCode:   exitUnbalancedBlock,
			wantStderr: "error: could not find closing brace for block at line 2",
		},
		{
			name:       "empty marker",
			content:    source,
			args:       []string{"-m", ""},
			wantCode:   exitError,
			wantStderr: "error: --marker must not be empty",
		},
		{
			name:       "too many arguments",
			content:    source,
			args:       []string{"extra.java"},
			wantCode:   exitError,
			wantStderr: "error: accepts at most 1 arg(s), received 2",
		},
		{
			name:       "dry run with interactive",
			content:    source,
			args:       []string{"-n", "-i"},
			wantCode:   exitError,
			wantStderr: "error: if any flags in the group [dry-run interactive] are set none of the others can be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempSourceFile(t, tt.content)

			code, _, stderr := execute(t, append([]string{path}, tt.args...)...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
			if got := readFileContent(t, path); got != tt.content {
				t.Errorf("file changed: %q", got)
			}
		})
	}
}

func TestRoot_MissingFile(t *testing.T) {
	code, _, stderr := execute(t, filepath.Join(t.TempDir(), "Missing.java"))
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	if !strings.Contains(stderr, "failed to read file") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRoot_DefaultMarkerAndPath(t *testing.T) {
	// The default target is relative to the working directory.
	dir := t.TempDir()
	target := filepath.Join(dir, filepath.FromSlash(defaultFile))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	content := "class GameWindow {\n" +
		"    private void drawSaveLoadContent(Graphics2D g) { a(); }\n" +
		"    private void drawSaveLoadContent(Graphics2D g) { b(); }\n" +
		"}\n"
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer os.Chdir(wd)

	code, _, stderr := execute(t, "--whole-lines")
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	want := "class GameWindow {\n    private void drawSaveLoadContent(Graphics2D g) { a(); }\n}\n"
	if got := readFileContent(t, target); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestRoot_DryRunAndQuiet(t *testing.T) {
	path := createTempSourceFile(t, source)

	code, out, _ := execute(t, path, "-m", "void foo(", "--dry-run")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	if readFileContent(t, path) != source {
		t.Error("dry run modified the file")
	}
	if !strings.Contains(out, "-void foo(){b;c}") {
		t.Errorf("dry run output missing diff: %q", out)
	}

	code, out, _ = execute(t, path, "-m", "void foo(", "-q")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	if out != "" {
		t.Errorf("quiet run printed %q", out)
	}
	if readFileContent(t, path) == source {
		t.Error("quiet run did not fix the file")
	}
}

type dirtyGit struct{}

func (dirtyGit) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return []byte(" M Foo.java\n"), nil
}

func TestRoot_RequireClean(t *testing.T) {
	gitutil.SetRunner(dirtyGit{})
	defer gitutil.SetRunner(gitutil.DefaultRunner{})

	path := createTempSourceFile(t, source)
	code, _, stderr := execute(t, path, "-m", "void foo(", "--require-clean")
	if code != exitRefused {
		t.Errorf("exit code = %d, want %d", code, exitRefused)
	}
	if !strings.Contains(stderr, "has uncommitted changes") {
		t.Errorf("stderr = %q", stderr)
	}
	if readFileContent(t, path) != source {
		t.Error("file modified despite dirty work tree")
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(errors.New("boom")); got != exitError {
		t.Errorf("exitCode(plain error) = %d, want %d", got, exitError)
	}
	if got := exitCode(nil); got != exitOK {
		t.Errorf("exitCode(nil) = %d, want %d", got, exitOK)
	}
}
