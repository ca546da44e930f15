package cmd

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AlienHub/file-organizer/internal/actions"
	"github.com/AlienHub/file-organizer/internal/config"
	"github.com/AlienHub/file-organizer/internal/dedupe"
	"github.com/AlienHub/file-organizer/internal/journal"
	"github.com/AlienHub/file-organizer/internal/organizer"
	"github.com/AlienHub/file-organizer/internal/rules"
	"github.com/AlienHub/file-organizer/internal/scanner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Plan file operations from your rules, and optionally execute them",
	Long: `Loads the rule files from the rules directory, scans the relevant
directories and plans move, rename, tag and duplicate operations.

Without --execute this is a dry run: the full plan is printed and
nothing on disk is touched. With --execute the planned operations are
applied and each result is recorded in the journal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		execute, _ := cmd.Flags().GetBool("execute")
		return runRun(cmd, fileSystem, execute)
	},
}

func runRun(cmd *cobra.Command, fs afero.Fs, execute bool) error {
	logger := buildLogger(cmd)
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	set, err := rules.NewParser(fs, cfg.RulesDir, logger).LoadAll()
	if err != nil {
		return err
	}
	if set.Empty() {
		fmt.Fprintf(out, "No rules found in %s.\n\n", cfg.RulesDir)
		fmt.Fprintln(out, "Create rule files (move.yaml, rename.yaml, tag.yaml, duplicate.yaml)")
		fmt.Fprintln(out, "or run 'file-organizer init' to install examples, or")
		fmt.Fprintln(out, "'file-organizer insights <dir>' to analyze a directory first.")
		return fmt.Errorf("no rules to run")
	}

	tagger := actions.NewTagger(runtime.GOOS)
	deduper := dedupe.New(fs, logger, tagger, dedupe.NewTrasher(runtime.GOOS, fs))
	planner := organizer.NewPlanner(fs, logger, scanner.New(fs, logger), deduper,
		cfg.DefaultScanPaths, cfg.DuplicateScanPaths)

	ops := planner.Plan(set)
	printPlan(out, ops)

	if !execute {
		fmt.Fprintln(out, "\nPreview mode: nothing was changed. Use --execute to apply.")
		return nil
	}

	var recorder organizer.Recorder
	j := journal.New(cfg.JournalPath, nil)
	if err := j.Init(); err != nil {
		logger.Warn().Err(err).Msg("journal unavailable, results will not be recorded")
	} else {
		recorder = j
		defer j.Close()
	}

	executor := organizer.NewExecutor(fs, logger, false,
		actions.NewMover(fs), actions.NewRenamer(fs), tagger, deduper, recorder)

	results := executor.Execute(ops)

	success := 0
	for _, res := range results {
		if res.Operation.Succeeded {
			success++
		}
	}
	fmt.Fprintf(out, "\nDone: %d/%d operations succeeded.\n", success, len(results))
	return nil
}

// printPlan renders the per-kind summary and the grouped preview.
func printPlan(out io.Writer, ops []*organizer.Operation) {
	summary := organizer.Summarize(ops)

	fmt.Fprintln(out, "=== Plan summary ===")
	fmt.Fprintf(out, "Total operations: %d\n", summary.Total)
	fmt.Fprintf(out, "  move: %d\n", summary.Move)
	fmt.Fprintf(out, "  rename: %d\n", summary.Rename)
	fmt.Fprintf(out, "  tag: %d\n", summary.Tag)
	fmt.Fprintf(out, "  duplicate: %d\n", summary.Duplicate)

	if summary.Total == 0 {
		return
	}

	for _, kind := range []organizer.Kind{
		organizer.KindMove, organizer.KindRename, organizer.KindTag, organizer.KindDuplicate,
	} {
		var matching []*organizer.Operation
		for _, op := range ops {
			if op.Kind == kind {
				matching = append(matching, op)
			}
		}
		if len(matching) == 0 {
			continue
		}

		fmt.Fprintf(out, "\n=== %s ===\n", kind)
		w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
		for _, op := range matching {
			fmt.Fprintf(w, "%s\t%s\n", op.RuleName, op.Describe())
		}
		w.Flush()
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("execute", "e", false, "Execute operations (default is preview mode)")
}
