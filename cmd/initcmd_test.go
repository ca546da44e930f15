package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/AlienHub/file-organizer/internal/config"
	"github.com/AlienHub/file-organizer/internal/rules"
)

func TestRunInit(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &config.Config{
		ConfigDir: "/home/u/.file-organizer",
		RulesDir:  "/home/u/.file-organizer/rules",
	}

	cmd, out := newTestCmd()
	err := runInit(cmd, fs, cfg)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "3 example rule file(s) installed")

	for filename := range exampleRuleFiles {
		exists, _ := afero.Exists(fs, cfg.RulesDir+"/"+filename)
		assert.True(t, exists, filename)
	}

	// Examples ship disabled.
	content, _ := afero.ReadFile(fs, cfg.RulesDir+"/"+rules.MoveRulesFile)
	assert.Contains(t, string(content), "enabled: false")
}

func TestRunInit_NeverOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &config.Config{
		ConfigDir: "/home/u/.file-organizer",
		RulesDir:  "/home/u/.file-organizer/rules",
	}
	custom := []byte("rules: []\n")
	afero.WriteFile(fs, cfg.RulesDir+"/"+rules.MoveRulesFile, custom, 0o644)

	cmd, out := newTestCmd()
	err := runInit(cmd, fs, cfg)

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "2 example rule file(s) installed")

	content, _ := afero.ReadFile(fs, cfg.RulesDir+"/"+rules.MoveRulesFile)
	assert.Equal(t, custom, content)
}
