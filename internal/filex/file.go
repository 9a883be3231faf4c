// Package filex has small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold the file at path,
// so a store file can be opened in a directory that does not exist yet.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
