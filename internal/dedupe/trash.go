package dedupe

import (
	"fmt"
	"os/exec"

	"github.com/spf13/afero"
)

// Trasher disposes of a file. Disposal is irrecoverable from the
// organizer's point of view even when the backend is a trash can.
type Trasher interface {
	Remove(path string) error
}

// NewTrasher selects the disposal backend for the given GOOS: the
// Finder trash on macOS, plain removal elsewhere.
func NewTrasher(goos string, fs afero.Fs) Trasher {
	if goos == "darwin" {
		return NewFinderTrash()
	}
	return RemoveTrash{fs: fs}
}

// RemoveTrash deletes files directly.
type RemoveTrash struct {
	fs afero.Fs
}

func (t RemoveTrash) Remove(path string) error {
	if err := t.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// FinderTrash moves files to the macOS trash via Finder so they stay
// recoverable by the user.
type FinderTrash struct {
	run func(name string, args ...string) error
}

// NewFinderTrash creates the macOS trash backend.
func NewFinderTrash() *FinderTrash {
	return &FinderTrash{
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

func (t *FinderTrash) Remove(path string) error {
	script := fmt.Sprintf(`tell application "Finder"
	delete POSIX file %q
end tell`, path)

	if err := t.run("osascript", "-e", script); err != nil {
		return fmt.Errorf("failed to trash %s: %w", path, err)
	}
	return nil
}
