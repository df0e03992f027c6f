package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"fasguide/internal/ui"
	"fasguide/internal/viewselect"
)

const (
	defaultPrintWidth = 80
	viewAll           = "all"
)

type PrintCmd struct {
	flags *Flags
	view  string
	raw   bool
	width int
}

// NewPrintCmd creates a new print command.
func NewPrintCmd(flags *Flags) *PrintCmd {
	return &PrintCmd{flags: flags}
}

// Register adds the print command to the application.
func (cmd *PrintCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "print",
		Usage:       "Print the guide as Markdown",
		UsageText:   "fasguide print [options]",
		Description: "Writes the overview, the application steps, or both to stdout. Output is styled when stdout is a terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "view",
				Usage:       "view to print (overview, procedure, all)",
				Value:       viewAll,
				Destination: &cmd.view,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print plain Markdown without styling",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width (defaults to the terminal width)",
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *PrintCmd) run(_ context.Context, c *cli.Command) error {
	projections, err := selectProjections(cmd.view)
	if err != nil {
		return err
	}

	md := ui.MarkdownDocument(projections...)
	w := c.Root().Writer
	if cmd.raw {
		_, err := io.WriteString(w, md)
		return err
	}

	tty := isTerminal(w)
	out, err := renderGlamour(md, tty, cmd.wrapWidth(w))
	if err != nil {
		log.Debug().Err(err).Msg("glamour render failed, writing raw markdown")
		out = md
	}
	_, err = io.WriteString(w, out)
	return err
}

func (cmd *PrintCmd) wrapWidth(w io.Writer) int {
	if cmd.width > 0 {
		return cmd.width
	}
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return defaultPrintWidth
}

// selectProjections maps the --view value to the projections to print.
func selectProjections(view string) ([]viewselect.Projection, error) {
	var modes []viewselect.ViewMode
	if view == viewAll || view == "" {
		modes = viewselect.Modes()
	} else {
		m, err := viewselect.ParseViewMode(view)
		if err != nil {
			return nil, fmt.Errorf("--view: %w", err)
		}
		modes = []viewselect.ViewMode{m}
	}

	out := make([]viewselect.Projection, 0, len(modes))
	for _, m := range modes {
		p, err := viewselect.Project(m)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func renderGlamour(md string, tty bool, width int) (string, error) {
	style := "notty"
	if tty {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	return r.Render(md)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
