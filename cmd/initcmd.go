package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AlienHub/file-organizer/internal/config"
	"github.com/AlienHub/file-organizer/internal/rules"
)

// Example rule files installed by init. Disabled by default so a
// fresh install never plans anything until the user opts in.
var exampleRuleFiles = map[string]string{
	rules.MoveRulesFile: `# Move rules scan the condition path recursively.
rules:
  - name: "PDFs to Documents"
    enabled: false
    condition:
      path: "~/Downloads"
      extension: ["pdf"]
    action:
      move: "~/Documents/PDFs"
      create_if_missing: true
`,
	rules.RenameRulesFile: `# Rename rules scan the default directories and filter by condition.
rules:
  - name: "Strip copy suffixes"
    enabled: false
    condition:
      pattern: "\\(\\d+\\)"
    action:
      replace: ""
`,
	rules.DuplicateRulesFile: `# Duplicate rules scan the duplicate directories for identical files.
rules:
  - name: "Deduplicate downloads"
    enabled: false
    check_by: "content"
    action:
      keep: "newest"
      tag_duplicates: true
      duplicate_label: "duplicate"
`,
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory with example rule files",
	Long: `Creates ~/.file-organizer with a rules directory and example rule
files. Existing files are never overwritten, so running init again is
always safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runInit(cmd, fileSystem, cfg)
	},
}

func runInit(cmd *cobra.Command, fs afero.Fs, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	if err := cfg.EnsureDirectories(fs); err != nil {
		return err
	}

	installed := 0
	for filename, content := range exampleRuleFiles {
		path := filepath.Join(cfg.RulesDir, filename)
		if exists, _ := afero.Exists(fs, path); exists {
			continue
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		installed++
	}

	fmt.Fprintf(out, "Initialized %s (%d example rule file(s) installed).\n", cfg.ConfigDir, installed)
	fmt.Fprintln(out, "Enable the examples in the rules directory, then preview with 'file-organizer run'.")
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
