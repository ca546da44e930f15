package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlienHub/file-organizer/internal/config"
)

// fileSystem is the filesystem abstraction, defaults to the OS fs.
var fileSystem = afero.NewOsFs()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-organizer",
	Short: "Rule-driven file organization: move, rename, tag and deduplicate.",
	Long: `file-organizer scans your directories, evaluates declarative YAML rules
and plans file operations (move, rename, tag, duplicate resolution).
By default nothing is touched: 'run' previews the plan, and only
'run --execute' applies it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// buildLogger constructs the structured event sink handed to the
// planner and executor.
func buildLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	configPath := filepath.Join(home, config.ConfigDirName)
	configFile := filepath.Join(configPath, config.ConfigFileName)

	viper.AddConfigPath(configPath)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := os.MkdirAll(configPath, os.ModePerm); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating config directory: %s\n", err)
				os.Exit(1)
			}

			defaultConfig := `# ~/.file-organizer/config.yml
# AI provider used by 'insights --suggest'. (gemini or ollama)
ai_provider: "gemini"

gemini:
  api_key: "YOUR_GEMINI_API_KEY"
  model: "gemini-1.5-flash"

ollama:
  base_url: "http://localhost:11434"
  model: "llama3"

# Directories scanned by rename/tag rules and duplicate rules.
# Move rules always scan their own condition path instead.
#scan:
#  default_paths: ["~/Downloads", "~/Documents", "~/Desktop"]
#  duplicate_paths: ["~/Downloads", "~/Documents"]
`
			if err := os.WriteFile(configFile, []byte(defaultConfig), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating config file: %s\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}
