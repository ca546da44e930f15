package actions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Mover relocates and copies files.
type Mover struct {
	fs afero.Fs
}

// NewMover creates a Mover over the given filesystem.
func NewMover(fs afero.Fs) *Mover {
	return &Mover{fs: fs}
}

// Move relocates a file and returns its final path. If destination is
// an existing directory the file lands inside it under its original
// name. Missing parent directories are created. Moving onto an
// existing file is an error; nothing is overwritten.
func (m *Mover) Move(source, destination string) (string, error) {
	target, err := m.resolveTarget(source, destination)
	if err != nil {
		return "", err
	}

	if err := m.fs.Rename(source, target); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if copyErr := m.copyFile(source, target); copyErr != nil {
			return "", fmt.Errorf("failed to move file: %w", err)
		}
		if err := m.fs.Remove(source); err != nil {
			return "", fmt.Errorf("failed to remove source after copy: %w", err)
		}
	}

	return target, nil
}

// Copy duplicates a file and returns the new path, with the same
// destination semantics as Move.
func (m *Mover) Copy(source, destination string) (string, error) {
	target, err := m.resolveTarget(source, destination)
	if err != nil {
		return "", err
	}

	if err := m.copyFile(source, target); err != nil {
		return "", err
	}
	return target, nil
}

func (m *Mover) resolveTarget(source, destination string) (string, error) {
	if exists, _ := afero.Exists(m.fs, source); !exists {
		return "", fmt.Errorf("source file not found: %s", source)
	}

	if isDir, _ := afero.IsDir(m.fs, destination); isDir {
		destination = filepath.Join(destination, filepath.Base(source))
	}

	if err := m.fs.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return "", fmt.Errorf("failed to create destination directory: %w", err)
	}

	if exists, _ := afero.Exists(m.fs, destination); exists {
		return "", fmt.Errorf("destination already exists: %s", destination)
	}

	return destination, nil
}

func (m *Mover) copyFile(source, destination string) error {
	src, err := m.fs.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	dst, err := m.fs.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy contents: %w", err)
	}
	return nil
}
