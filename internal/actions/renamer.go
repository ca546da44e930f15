package actions

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/AlienHub/file-organizer/internal/rules"
)

// Patterns for stripping numeric copy suffixes like "file (1)",
// "file[2]" and the full-width "file（3）" variant.
var numericSuffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`（(\d+)）|\((\d+)\)`),
	regexp.MustCompile(`\s*\(\d+\)\s*`),
	regexp.MustCompile(`\s*\[\d+\]\s*`),
}

// Renamer derives new filenames from rename actions and applies them.
type Renamer struct {
	fs afero.Fs
}

// NewRenamer creates a Renamer over the given filesystem.
func NewRenamer(fs afero.Fs) *Renamer {
	return &Renamer{fs: fs}
}

// Rename applies the action to the file's name and renames it in
// place, returning the final path. A no-op rename (name unchanged)
// does not touch the filesystem.
func (r *Renamer) Rename(path string, action rules.RenameAction) (string, error) {
	if exists, _ := afero.Exists(r.fs, path); !exists {
		return "", fmt.Errorf("file not found: %s", path)
	}

	newName := NewName(filepath.Base(path), action)
	newPath := filepath.Join(filepath.Dir(path), newName)

	if newPath == path {
		return path, nil
	}

	if exists, _ := afero.Exists(r.fs, newPath); exists {
		return "", fmt.Errorf("destination already exists: %s", newPath)
	}

	if err := r.fs.Rename(path, newPath); err != nil {
		return "", fmt.Errorf("failed to rename file: %w", err)
	}

	return newPath, nil
}

// NewName computes the renamed filename without touching the
// filesystem. The extension is preserved; replace, prefix and suffix
// apply to the stem, and runs of the separator are collapsed and
// trimmed afterwards.
func NewName(filename string, action rules.RenameAction) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	if action.Replace != "" {
		for _, pattern := range numericSuffixPatterns {
			stem = pattern.ReplaceAllString(stem, action.Replace)
		}
	}

	separator := action.Separator
	if separator == "" {
		separator = rules.DefaultSeparator
	}

	if action.Prefix != "" {
		stem = action.Prefix + separator + stem
	}
	if action.Suffix != "" {
		stem = stem + separator + action.Suffix
	}

	collapse := regexp.MustCompile(regexp.QuoteMeta(separator) + "+")
	stem = collapse.ReplaceAllString(stem, separator)
	stem = strings.Trim(stem, separator)
	stem = strings.TrimSpace(stem)

	return stem + ext
}
