package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures by their origin. Every failure is terminal
// for the current invocation; the tags exist for logging and exit reporting,
// not for retry decisions.
var (
	// TagConfig marks a required setting that is absent or invalid.
	// Raised before any network or storage call is attempted.
	TagConfig = goerr.NewTag("config")

	// TagTransport marks a network-level failure reaching the Slack API.
	TagTransport = goerr.NewTag("transport")

	// TagUpstream marks an API-reported failure (ok: false). The provider
	// error code is attached as the "code" value.
	TagUpstream = goerr.NewTag("upstream")

	// TagStorage marks a repository write or scan failure.
	TagStorage = goerr.NewTag("storage")
)
