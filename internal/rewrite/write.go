package rewrite

import (
	"fmt"
	"os"
)

// WriteOptions controls how WriteFile replaces the target.
type WriteOptions struct {
	// Backup copies the current contents to BackupPath(path) first.
	Backup bool
	// InPlace truncates and rewrites the file directly instead of writing a
	// temporary file and renaming it over the original.
	InPlace bool
}

// BackupPath is where WriteFile keeps the original contents when asked to.
func BackupPath(path string) string {
	return path + ".bak"
}

// WriteFile replaces the contents of the existing file at path with data,
// keeping its permission bits.
func WriteFile(path string, data []byte, opts WriteOptions) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	perm := info.Mode().Perm()

	if opts.Backup {
		original, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s for backup: %w", path, err)
		}
		if err := os.WriteFile(BackupPath(path), original, perm); err != nil {
			return fmt.Errorf("failed to write backup %s: %w", BackupPath(path), err)
		}
	}

	if opts.InPlace {
		if err := os.WriteFile(path, data, perm); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}

	if err := replaceFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
