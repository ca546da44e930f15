package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AlienHub/file-organizer/internal/config"
	"github.com/AlienHub/file-organizer/internal/rules"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the enabled rules loaded from the rules directory",
	Long: `Loads all four rule files (move.yaml, rename.yaml, tag.yaml,
duplicate.yaml) and lists the enabled rules per category. Malformed
entries are reported and skipped, which makes this a cheap way to
validate rule files before a run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runRules(cmd, fileSystem, cfg.RulesDir)
	},
}

func runRules(cmd *cobra.Command, fs afero.Fs, rulesDir string) error {
	logger := buildLogger(cmd)
	out := cmd.OutOrStdout()

	set, err := rules.NewParser(fs, rulesDir, logger).LoadAll()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Rules directory: %s\n", rulesDir)
	fmt.Fprintf(out, "Enabled rules: %d\n", set.Count())

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	printRuleHeader(w, "move", len(set.Move))
	for _, r := range set.Move {
		fmt.Fprintf(w, "  %s\t-> %s\n", r.Name, r.Action.Destination)
	}

	printRuleHeader(w, "rename", len(set.Rename))
	for _, r := range set.Rename {
		fmt.Fprintf(w, "  %s\tprefix=%q suffix=%q\n", r.Name, r.Action.Prefix, r.Action.Suffix)
	}

	printRuleHeader(w, "tag", len(set.Tag))
	for _, r := range set.Tag {
		fmt.Fprintf(w, "  %s\tcolor=%s label=%s\n", r.Name, r.Action.Color, r.Action.Label)
	}

	printRuleHeader(w, "duplicate", len(set.Duplicate))
	for _, r := range set.Duplicate {
		fmt.Fprintf(w, "  %s\tcheck_by=%s keep=%s\n", r.Name, r.CheckBy, r.Action.Keep)
	}

	return w.Flush()
}

func printRuleHeader(w io.Writer, category string, count int) {
	fmt.Fprintf(w, "\n[%s]\t%d rule(s)\n", category, count)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
