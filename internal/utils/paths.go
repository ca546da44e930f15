package utils

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ExpandUser replaces a leading "~" with the user's home directory.
// If the home directory cannot be determined the path is returned
// unchanged.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// GetSkipPatterns returns directory patterns to skip based on the OS.
func GetSkipPatterns() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			".Trash", ".Trashes",
			".fseventsd",
			".Spotlight-V100",
			".DocumentRevisions-V100",
			".TemporaryItems",
			".DS_Store",
			"Library/Caches",
		}
	case "linux":
		return []string{
			".cache", ".local/share/Trash",
			"proc", "sys", "dev",
			"run", "mnt",
		}
	case "windows":
		return []string{
			"$Recycle.Bin",
			"System Volume Information",
		}
	default:
		return []string{".Trash", ".cache", "tmp"}
	}
}

// ShouldSkipPath checks if a path should be skipped based on patterns.
func ShouldSkipPath(path string, skipPatterns []string) bool {
	pathBase := filepath.Base(path)

	for _, pattern := range skipPatterns {
		if strings.Contains(path, pattern) || pathBase == pattern {
			return true
		}
	}

	return false
}

// IsPermissionError checks if an error is a permission error.
func IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	return strings.Contains(err.Error(), "permission denied")
}
