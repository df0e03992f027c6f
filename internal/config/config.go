// Package config handles configuration loading and validation for fasguide.
package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// MinWidth is the narrowest content width the layout supports.
const MinWidth = 40

// Config holds the application configuration.
type Config struct {
	TUI       TUIConfig       `yaml:"tui"`
	Browser   BrowserConfig   `yaml:"browser"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TUIConfig controls the interactive view.
type TUIConfig struct {
	AltScreen *bool `yaml:"alt_screen"` // nil = default (true)
	MaxWidth  int   `yaml:"max_width"`  // cap on rendered content width
}

// BrowserConfig overrides how the application link is opened.
type BrowserConfig struct {
	// Command is an argv prefix; the URL is appended. Empty uses the OS default.
	Command []string `yaml:"command"`
}

// TelemetryConfig names the service reported to the OTLP collector.
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	altScreen := true
	return Config{
		TUI: TUIConfig{
			AltScreen: &altScreen,
			MaxWidth:  100,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "fasguide",
		},
	}
}

// Load reads configuration from path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.AltScreen == nil {
		c.TUI.AltScreen = defaults.TUI.AltScreen
	}
	if c.TUI.MaxWidth == 0 {
		c.TUI.MaxWidth = defaults.TUI.MaxWidth
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = defaults.Telemetry.ServiceName
	}
}

// UseAltScreen reports whether the TUI should take over the alternate screen.
func (c *Config) UseAltScreen() bool {
	return c.TUI.AltScreen == nil || *c.TUI.AltScreen
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.max_width", c.TUI.MaxWidth, atLeastMinWidth),
		criterio.Run("browser.command", c.Browser.Command, browserCommandExists),
	)
}

func atLeastMinWidth(w int) error {
	if w < MinWidth {
		return fmt.Errorf("must be at least %d, got %d", MinWidth, w)
	}
	return nil
}

func browserCommandExists(argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	if argv[0] == "" {
		return fmt.Errorf("executable cannot be empty")
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("executable not found: %s", argv[0])
	}
	return nil
}
