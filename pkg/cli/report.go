package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anubisss/slack-user-presence-saver/pkg/cli/config"
	"github.com/Anubisss/slack-user-presence-saver/pkg/service/report"
	"github.com/Anubisss/slack-user-presence-saver/pkg/usecase"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/safe"
)

func cmdReport() *cli.Command {
	var noColor bool
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable ANSI colors in the report output",
			Sources:     cli.EnvVars("SLACK_PRESENCE_NO_COLOR"),
			Destination: &noColor,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Analyze all stored samples and print the daily work-session report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			opts := []report.Option{}
			if noColor {
				opts = append(opts, report.WithColor(false))
			}
			renderer := report.New(os.Stdout, opts...)

			uc := usecase.New(repo)
			if err := uc.Report(ctx, renderer); err != nil {
				return goerr.Wrap(err, "failed to build presence report")
			}

			return nil
		},
	}
}
