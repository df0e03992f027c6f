package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"fasguide/internal/browser"
	"fasguide/internal/scheme"
)

type ApplyCmd struct {
	flags  *Flags
	opener browser.Opener
	yes    bool
}

// NewApplyCmd creates a new apply command. A nil opener uses the configured
// browser command.
func NewApplyCmd(flags *Flags, opener browser.Opener) *ApplyCmd {
	return &ApplyCmd{flags: flags, opener: opener}
}

// Register adds the apply command to the application.
func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "apply",
		Usage:       "Show or open the online application form",
		UsageText:   "fasguide apply [options]",
		Description: "Prints the application URL. With --yes the URL is also opened in the browser.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "open the form in the browser",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ApplyCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer
	cta := scheme.Apply()
	fmt.Fprintf(w, "%s %s: %s\n", cta.Prompt, cta.Label, cta.URL)

	if !cmd.yes {
		return nil
	}

	opener := cmd.opener
	if opener == nil {
		cfg, err := cmd.flags.RequireConfig()
		if err != nil {
			return err
		}
		opener = browser.NewCommandOpener(cfg.Browser.Command)
	}

	if err := opener.Open(ctx, cta.URL); err != nil {
		log.Error().Err(err).Str("url", cta.URL).Msg("failed to open browser")
		return fmt.Errorf("open browser: %w", err)
	}
	log.Info().Str("url", cta.URL).Msg("opened application link")
	fmt.Fprintln(w, "Opened in your browser.")
	return nil
}
