package scanner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestScanner_ListFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/home/user/Downloads/a.txt", []byte("a"), 0o644)
	afero.WriteFile(fs, "/home/user/Downloads/sub/b.txt", []byte("b"), 0o644)
	afero.WriteFile(fs, "/home/user/Downloads/sub/deep/c.txt", []byte("c"), 0o644)

	s := New(fs, zerolog.Nop())
	files := s.ListFiles("/home/user/Downloads")

	assert.Len(t, files, 3)
	assert.Contains(t, files, "/home/user/Downloads/a.txt")
	assert.Contains(t, files, "/home/user/Downloads/sub/deep/c.txt")
}

func TestScanner_MissingPathYieldsEmpty(t *testing.T) {
	s := New(afero.NewMemMapFs(), zerolog.Nop())

	assert.Empty(t, s.ListFiles("/nope"))
}

func TestScanner_SingleFilePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/home/user/one.txt", []byte("x"), 0o644)

	s := New(fs, zerolog.Nop())

	assert.Equal(t, []string{"/home/user/one.txt"}, s.ListFiles("/home/user/one.txt"))
}

func TestScanner_SkipsJunkDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/data/keep.txt", []byte("x"), 0o644)
	afero.WriteFile(fs, "/data/.Trash/gone.txt", []byte("x"), 0o644)
	afero.WriteFile(fs, "/data/.cache/gone.txt", []byte("x"), 0o644)

	s := New(fs, zerolog.Nop())
	s.skipPatterns = []string{".Trash", ".cache"}

	files := s.ListFiles("/data")

	assert.Equal(t, []string{"/data/keep.txt"}, files)
}

func TestScanner_ExpandsHome(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, tempHome+"/Downloads/file.txt", []byte("x"), 0o644)

	s := New(fs, zerolog.Nop())
	files := s.ListFiles("~/Downloads")

	assert.Len(t, files, 1)
}
