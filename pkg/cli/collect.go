package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anubisss/slack-user-presence-saver/pkg/cli/config"
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
	"github.com/Anubisss/slack-user-presence-saver/pkg/service/worker"
	"github.com/Anubisss/slack-user-presence-saver/pkg/usecase"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/logging"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/safe"
)

func cmdCollect() *cli.Command {
	var userID string
	var interval time.Duration
	var repoCfg config.Repository
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-user-id",
			Usage:       "Slack user ID whose presence is sampled (e.g., U0123456)",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACK_PRESENCE_SLACK_USER_ID"),
			Destination: &userID,
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Poll on this interval instead of exiting after one sample (e.g., 5m). Zero means one-shot.",
			Sources:     cli.EnvVars("SLACK_PRESENCE_INTERVAL"),
			Destination: &interval,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "collect",
		Aliases: []string{"c"},
		Usage:   "Fetch the user's current presence and append it to the sample table",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// All required settings are checked before any network or
			// storage call is attempted.
			if userID == "" {
				return goerr.Wrap(config.ErrMissingSetting, "slack-user-id is required")
			}

			source, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack client")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo, usecase.WithSource(source))

			if interval <= 0 {
				if _, err := uc.Collect(ctx, types.UserID(userID)); err != nil {
					return goerr.Wrap(err, "failed to collect presence sample")
				}
				return nil
			}

			// Daemon mode: poll until interrupted.
			w := worker.NewPresencePollWorker(uc, types.UserID(userID), interval)
			if err := w.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start presence poll worker")
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				logging.From(ctx).Info("Received shutdown signal", "signal", sig)
			case <-ctx.Done():
			}

			w.Stop()
			return nil
		},
	}
}
