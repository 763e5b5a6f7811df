// File: pkg/sync/path.go
package sync

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const cacheDirName = "s3lync"

// NormalizePath expands a leading "~", resolves the path to an absolute one and
// cleans it. Symlinks are left for the OS to resolve.
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("failed to retrieve home directory")
		}
		path = strings.Replace(path, "~", homeDir, 1)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.Clean(absPath), nil
}

// CacheRoot returns the local mirror root: $XDG_CACHE_HOME/s3lync, else
// ~/.cache/s3lync, else the system temp directory. The directory is created if
// absent.
func CacheRoot() (string, error) {
	var root string
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		root = filepath.Join(cacheHome, cacheDirName)
	} else if home, err := os.UserHomeDir(); err == nil && home != "" {
		root = filepath.Join(home, ".cache", cacheDirName)
	} else {
		root = filepath.Join(os.TempDir(), cacheDirName)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", err
	}
	return root, nil
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
