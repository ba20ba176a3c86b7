//go:build windows

package rewrite

import "os"

// renameio has no Windows support; fall back to a direct overwrite.
func replaceFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
