package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"fasguide/internal/commands"
	"fasguide/internal/config"
	"fasguide/internal/scheme"
	"fasguide/internal/telemetry"
	"fasguide/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

// validateScheme checks the built-in guide content before any command runs.
var validateScheme = scheme.Validate

func main() {
	app := newApp(&commands.Flags{})

	exitCode := 0
	runErr := app.Run(context.Background(), os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

// newApp builds the root command. Before and After share flags.
func newApp(flags *commands.Flags) *cli.Command {
	var logCloser func()

	app := &cli.Command{
		Name:      "fasguide",
		Usage:     "Browse the NSF financial assistance guide",
		UsageText: "fasguide [global options] command [command options]",
		Description: `fasguide shows the Term FA tiers, Bridging FA and the steps to apply.

Run 'fasguide' with no arguments to open the interactive guide.
Run 'fasguide print' to write the guide as Markdown.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FASGUIDE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("FASGUIDE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FASGUIDE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// The TUI owns stdout, so logs always go to a file.
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer
			telemetry.SetErrorLogger(log.With().Str("component", "otel").Logger())

			// Load errors are kept on flags; `config validate` reports them
			// and every other command refuses to run.
			flags.Config, flags.ConfigErr = config.Load(flags.ConfigPath)
			if flags.ConfigErr != nil {
				log.Warn().Err(flags.ConfigErr).Str("path", flags.ConfigPath).Msg("config not loaded")
			}

			if err := validateScheme(); err != nil {
				return ctx, fmt.Errorf("scheme data: %w", err)
			}

			serviceName := telemetry.DefaultServiceName
			if flags.Config != nil {
				serviceName = flags.Config.Telemetry.ServiceName
			}
			flags.Tracer, err = telemetry.NewTracerProvider(ctx, serviceName)
			if err != nil {
				return ctx, fmt.Errorf("setup tracing: %w", err)
			}
			log.Info().Bool("tracing", flags.Tracer.Enabled()).Str("service", serviceName).Msg("telemetry configured")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := flags.Tracer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown tracer provider")
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewPrintCmd(flags).Register(app)
	app = commands.NewApplyCmd(flags, nil).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'fasguide --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
