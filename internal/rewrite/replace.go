//go:build !windows

package rewrite

import (
	"os"

	"github.com/google/renameio/v2"
)

// replaceFile writes data to a temporary file next to path and renames it
// into place, so readers see either the old or the new contents.
func replaceFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
