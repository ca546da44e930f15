package actions

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestMover_MoveIntoDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/report.pdf", []byte("data"), 0o644)
	fs.MkdirAll("/dst", 0o755)

	m := NewMover(fs)
	target, err := m.Move("/src/report.pdf", "/dst")

	assert.NoError(t, err)
	assert.Equal(t, "/dst/report.pdf", target)

	exists, _ := afero.Exists(fs, "/src/report.pdf")
	assert.False(t, exists)
	content, _ := afero.ReadFile(fs, "/dst/report.pdf")
	assert.Equal(t, []byte("data"), content)
}

func TestMover_MoveToExplicitPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/a.txt", []byte("x"), 0o644)

	m := NewMover(fs)
	target, err := m.Move("/src/a.txt", "/archive/2026/a.txt")

	assert.NoError(t, err)
	assert.Equal(t, "/archive/2026/a.txt", target, "missing parents are created")

	exists, _ := afero.Exists(fs, "/archive/2026/a.txt")
	assert.True(t, exists)
}

func TestMover_MissingSource(t *testing.T) {
	m := NewMover(afero.NewMemMapFs())

	_, err := m.Move("/nope.txt", "/dst")
	assert.Error(t, err)
}

func TestMover_NeverOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/a.txt", []byte("new"), 0o644)
	afero.WriteFile(fs, "/dst/a.txt", []byte("old"), 0o644)

	m := NewMover(fs)
	_, err := m.Move("/src/a.txt", "/dst")

	assert.Error(t, err)

	// Both files are untouched.
	content, _ := afero.ReadFile(fs, "/dst/a.txt")
	assert.Equal(t, []byte("old"), content)
	exists, _ := afero.Exists(fs, "/src/a.txt")
	assert.True(t, exists)
}

func TestMover_Copy(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/a.txt", []byte("data"), 0o644)

	m := NewMover(fs)
	target, err := m.Copy("/src/a.txt", "/backup/a.txt")

	assert.NoError(t, err)
	assert.Equal(t, "/backup/a.txt", target)

	// The source stays in place.
	for _, path := range []string{"/src/a.txt", "/backup/a.txt"} {
		content, _ := afero.ReadFile(fs, path)
		assert.Equal(t, []byte("data"), content, path)
	}
}
