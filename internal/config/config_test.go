package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.UseAltScreen())
	assert.Equal(t, 100, cfg.TUI.MaxWidth)
	assert.Equal(t, "fasguide", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Browser.Command)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().TUI.MaxWidth, cfg.TUI.MaxWidth)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
tui:
  alt_screen: false
  max_width: 72
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.UseAltScreen())
	assert.Equal(t, 72, cfg.TUI.MaxWidth)
	assert.Equal(t, "fasguide", cfg.Telemetry.ServiceName, "unset fields keep defaults")
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "tui: [not, a, map")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidMaxWidth(t *testing.T) {
	path := writeConfig(t, "tui:\n  max_width: 20\n")
	_, err := Load(path)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "tui.max_width", fieldErrs[0].Field)
}

func TestValidate_BrowserCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browser.Command = []string{"fasguide-no-such-browser"}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "browser.command", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "executable not found")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}
