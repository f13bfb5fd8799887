package slack

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
)

// client implements Source on the Slack Web API
type client struct {
	api *slack.Client
}

// Option is a functional option for client configuration
type Option func(*[]slack.Option)

// WithAPIURL overrides the Slack API base URL. Used by tests to point the
// client at a local server; the URL must end with a slash.
func WithAPIURL(url string) Option {
	return func(opts *[]slack.Option) {
		*opts = append(*opts, slack.OptionAPIURL(url))
	}
}

// New creates a Slack presence source with the provided token
func New(token string, opts ...Option) (Source, error) {
	if token == "" {
		return nil, goerr.New("Slack token is required", goerr.T(types.TagConfig))
	}

	var apiOpts []slack.Option
	for _, opt := range opts {
		opt(&apiOpts)
	}

	return &client{
		api: slack.New(token, apiOpts...),
	}, nil
}

// GetUserPresence fetches the user's current presence state
func (c *client) GetUserPresence(ctx context.Context, userID types.UserID) (types.Presence, error) {
	presence, err := c.api.GetUserPresenceContext(ctx, string(userID))
	if err != nil {
		// slack-go surfaces an ok:false body as SlackErrorResponse with the
		// provider error code; anything else failed before a response parsed.
		var apiErr slack.SlackErrorResponse
		if errors.As(err, &apiErr) {
			return "", goerr.Wrap(err, "slack api reported failure",
				goerr.T(types.TagUpstream),
				goerr.V("code", apiErr.Err),
				goerr.V("user_id", userID),
			)
		}
		return "", goerr.Wrap(err, "failed to reach slack api",
			goerr.T(types.TagTransport),
			goerr.V("user_id", userID),
		)
	}

	return types.Presence(presence.Presence), nil
}
