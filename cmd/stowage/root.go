// Root command for the stowage CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stowage/internal/paths"
	"github.com/mesh-intelligence/stowage/pkg/stowage"
	"github.com/mesh-intelligence/stowage/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir and configDefaults hold values loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir  string
	configDefaults types.Config
)

var rootCmd = &cobra.Command{
	Use:     "stowage",
	Short:   "Stowage computes cost-minimal item-to-bin assignments",
	Version: stowage.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDefaults = types.Config{
			Strategy:         cfg.GetString(cfgKeyStrategy),
			AllowUnassigned:  cfg.GetBool(cfgKeyAllowUnassigned),
			DefaultDeny:      cfg.GetBool(cfgKeyDefaultDeny),
			TimeLimitSeconds: cfg.GetFloat64(cfgKeyTimeLimitSeconds),
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stowage-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runsCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > STOWAGE_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > STOWAGE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
