package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	slacksvc "github.com/Anubisss/slack-user-presence-saver/pkg/service/slack"
)

// Slack holds CLI flags for the Slack API client
type Slack struct {
	token string
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack token with users:read scope",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACK_PRESENCE_SLACK_TOKEN"),
			Destination: &x.token,
		},
	}
}

// LogValue never exposes the token itself
func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
	)
}

// Configure creates the presence source. The token is required; its absence
// is a configuration error raised before any network call.
func (x *Slack) Configure() (slacksvc.Source, error) {
	if x.token == "" {
		return nil, goerr.Wrap(ErrMissingSetting, "slack-token is required")
	}

	return slacksvc.New(x.token)
}
