package pkg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DirExists reports whether path exists and is a directory.
func DirExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stat.IsDir(), nil
}

// EnsureDir creates path, with its parents, when it is missing.
func EnsureDir(path string) error {
	exists, err := DirExists(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if exists {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s exists and is not a directory", path)
	}
	return os.MkdirAll(path, 0o755)
}
