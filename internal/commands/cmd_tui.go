package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"fasguide/internal/browser"
	"fasguide/internal/ui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg, err := cmd.flags.RequireConfig()
	if err != nil {
		return err
	}

	logger := log.Logger
	model := ui.NewAppModel(ui.Options{
		Opener:   browser.NewCommandOpener(cfg.Browser.Command),
		Tracer:   cmd.flags.Tracer.Tracer(),
		Logger:   &logger,
		MaxWidth: cfg.TUI.MaxWidth,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Info().Bool("alt_screen", cfg.UseAltScreen()).Msg("starting tui")
	if _, err := tea.NewProgram(model.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
