package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlienHub/file-organizer/internal/ai"
	"github.com/AlienHub/file-organizer/internal/insights"
)

// insightsCmd represents the insights command
var insightsCmd = &cobra.Command{
	Use:   "insights <directory>",
	Short: "Profile a directory to help with rule authoring",
	Long: `Scans the immediate contents of a directory and reports file counts,
sizes, an extension histogram, subfolder counts and the largest files.

With --suggest the profile is sent to the configured AI provider
(gemini or ollama) which returns suggested YAML organization rules.
This command is read-only and never modifies anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suggest, _ := cmd.Flags().GetBool("suggest")
		return runInsights(cmd, fileSystem, args[0], suggest)
	},
}

func runInsights(cmd *cobra.Command, fs afero.Fs, dir string, suggest bool) error {
	out := cmd.OutOrStdout()

	report, err := insights.Analyze(fs, dir)
	if err != nil {
		return err
	}

	fmt.Fprint(out, report.Render())

	if !suggest {
		return nil
	}

	providerName := viper.GetString("ai_provider")
	provider, err := ai.NewProvider(providerName)
	if err != nil {
		return fmt.Errorf("%w. Please check your config file", err)
	}

	fmt.Fprintf(out, "\nAsking %s for rule suggestions...\n\n", providerName)

	suggestion, err := provider.SuggestRules(cmd.Context(), report.Prompt())
	if err != nil {
		return fmt.Errorf("failed to get suggestions from AI provider: %w", err)
	}

	fmt.Fprintln(out, suggestion)
	return nil
}

func init() {
	rootCmd.AddCommand(insightsCmd)

	insightsCmd.Flags().Bool("suggest", false, "Ask the configured AI provider for rule suggestions")
}
