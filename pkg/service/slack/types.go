package slack

import (
	"context"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
)

// Source provides the current presence state of a user from the Slack API
type Source interface {
	// GetUserPresence performs a single synchronous request with no retry.
	// An API-reported failure (ok: false) yields an error tagged
	// types.TagUpstream carrying the provider error code; a network fault
	// yields an error tagged types.TagTransport.
	GetUserPresence(ctx context.Context, userID types.UserID) (types.Presence, error)
}
