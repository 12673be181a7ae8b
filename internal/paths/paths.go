// Package paths decides where stowage keeps its configuration and run
// database. Every location can be overridden; the resolution helpers apply
// a fixed precedence chain and only fall back to platform conventions when
// nothing else is set.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// DefaultConfigDirName is the project-local configuration directory.
	DefaultConfigDirName = ".stowage"
	// DefaultDataDirName is the project-local run database directory.
	DefaultDataDirName = ".stowage-db"

	// EnvConfigDir and EnvDataDir override the respective directories.
	EnvConfigDir = "STOWAGE_CONFIG_DIR"
	EnvDataDir   = "STOWAGE_DATA_DIR"

	appDirName = "stowage"
)

// ResolveConfigDir picks the configuration directory. An explicit flag
// value wins, then STOWAGE_CONFIG_DIR, then the platform default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the directory holding the run database. Precedence:
// flag, config.yaml data_dir, STOWAGE_DATA_DIR, then .stowage-db under the
// current working directory so run data stays next to the project.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// DefaultConfigDir follows the platform convention: $XDG_CONFIG_HOME/stowage
// (falling back to ~/.config/stowage) on linux, os.UserConfigDir elsewhere,
// which yields ~/Library/Application Support on macOS and %APPDATA% on
// Windows.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
	return userDir()
}

// DefaultDataDir is the platform data directory: $XDG_DATA_HOME/stowage
// (falling back to ~/.local/share/stowage) on linux. macOS and Windows do
// not separate data from config, so it matches DefaultConfigDir there.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		return xdgDir("XDG_DATA_HOME", ".local", "share")
	}
	return userDir()
}

func xdgDir(envVar string, homeFallback ...string) (string, error) {
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, homeFallback...)
	return filepath.Join(append(parts, appDirName)...), nil
}

func userDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}
