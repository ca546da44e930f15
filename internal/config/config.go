package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Default locations under the user's config directory.
const (
	ConfigDirName   = ".file-organizer"
	RulesDirName    = "rules"
	ConfigFileName  = "config.yml"
	JournalFileName = "journal.db"
)

// Config carries every path and setting the planner, executor and
// commands need. It is built once at startup and passed explicitly;
// nothing in the core reads viper or globals.
type Config struct {
	ConfigDir   string
	RulesDir    string
	JournalPath string

	// Directories scanned by rename and tag rules. Move rules scope
	// scanning to their own condition path instead; duplicate rules
	// use DuplicateScanPaths. The asymmetry is deliberate.
	DefaultScanPaths   []string
	DuplicateScanPaths []string

	AIProvider string
}

// Load resolves the configuration from viper, falling back to the
// defaults of the original layout (~/.file-organizer).
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := viper.GetString("config_dir")
	if configDir == "" {
		configDir = filepath.Join(home, ConfigDirName)
	}

	rulesDir := viper.GetString("rules_dir")
	if rulesDir == "" {
		rulesDir = filepath.Join(configDir, RulesDirName)
	}

	cfg := &Config{
		ConfigDir:          configDir,
		RulesDir:           rulesDir,
		JournalPath:        filepath.Join(configDir, JournalFileName),
		DefaultScanPaths:   viper.GetStringSlice("scan.default_paths"),
		DuplicateScanPaths: viper.GetStringSlice("scan.duplicate_paths"),
		AIProvider:         viper.GetString("ai_provider"),
	}

	if len(cfg.DefaultScanPaths) == 0 {
		cfg.DefaultScanPaths = []string{
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Desktop"),
		}
	}
	if len(cfg.DuplicateScanPaths) == 0 {
		cfg.DuplicateScanPaths = []string{
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Documents"),
		}
	}

	return cfg, nil
}

// EnsureDirectories creates the config and rules directories if missing.
func (c *Config) EnsureDirectories(fs afero.Fs) error {
	for _, dir := range []string{c.ConfigDir, c.RulesDir} {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
