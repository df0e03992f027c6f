package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"fasguide/internal/config"
	"fasguide/internal/telemetry"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook. ConfigErr holds the load failure so
	// that `config validate` can still report it.
	Config    *config.Config
	ConfigErr error

	// Tracer is built in the Before hook and shut down in After.
	Tracer *telemetry.Provider
}

// RequireConfig returns the loaded config, or the error that prevented loading.
func (f *Flags) RequireConfig() (*config.Config, error) {
	if f.ConfigErr != nil {
		return nil, fmt.Errorf("load config: %w", f.ConfigErr)
	}
	if f.Config == nil {
		cfg := config.DefaultConfig()
		return &cfg, nil
	}
	return f.Config, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "fasguide", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/fasguide/fasguide.log
// On Linux: $XDG_STATE_HOME/fasguide/fasguide.log (defaults to ~/.local/state/fasguide/fasguide.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "fasguide", "fasguide.log")
	}

	home, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "fasguide", "fasguide.log")
	}
	return filepath.Join(home, ".local", "state", "fasguide", "fasguide.log")
}
