package scanner

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/AlienHub/file-organizer/internal/utils"
)

// Scanner lists regular files under a directory tree. It is the only
// component that walks the filesystem; planning consumes its output.
type Scanner struct {
	fs           afero.Fs
	logger       zerolog.Logger
	skipPatterns []string
}

// New creates a Scanner over the given filesystem.
func New(fs afero.Fs, logger zerolog.Logger) *Scanner {
	return &Scanner{
		fs:           fs,
		logger:       logger,
		skipPatterns: utils.GetSkipPatterns(),
	}
}

// ListFiles returns all regular files under path, recursively, in walk
// order. The path's leading "~" is expanded. A missing path yields an
// empty list; a path that is itself a regular file yields a
// one-element list. Permission errors and OS junk directories are
// skipped, never fatal.
func (s *Scanner) ListFiles(path string) []string {
	root := utils.ExpandUser(path)

	info, err := s.fs.Stat(root)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return []string{root}
	}

	var files []string
	err = afero.Walk(s.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if utils.IsPermissionError(err) {
				s.logger.Debug().Str("path", p).Msg("permission denied, skipping")
				return nil
			}
			return err
		}

		if info.IsDir() {
			if p != root && utils.ShouldSkipPath(p, s.skipPatterns) {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn().Str("path", root).Err(err).Msg("directory walk aborted")
	}

	return files
}
