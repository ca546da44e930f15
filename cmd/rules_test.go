package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestRunRules(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/rules/move.yaml", []byte(`
rules:
  - name: "PDFs"
    condition:
      path: "~/Downloads"
    action:
      move: "~/Documents/PDFs"
`), 0o644)
	afero.WriteFile(fs, "/rules/duplicate.yaml", []byte(`
rules:
  - name: "Dedup"
    action:
      keep: "oldest"
`), 0o644)

	cmd, out := newTestCmd()
	err := runRules(cmd, fs, "/rules")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Enabled rules: 2")
	assert.Contains(t, out.String(), "PDFs")
	assert.Contains(t, out.String(), "-> ~/Documents/PDFs")
	assert.Contains(t, out.String(), "check_by=content keep=oldest")
}

func TestRunRules_EmptyDirectory(t *testing.T) {
	cmd, out := newTestCmd()
	err := runRules(cmd, afero.NewMemMapFs(), "/rules")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Enabled rules: 0")
}
