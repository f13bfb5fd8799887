package config

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
)

// Sentinel errors for configuration validation. All carry types.TagConfig:
// a missing or invalid setting is fatal before any network or storage call.
var (
	ErrMissingSetting = goerr.New("required setting is missing", goerr.T(types.TagConfig))
	ErrInvalidBackend = goerr.New("invalid repository backend", goerr.T(types.TagConfig))
	ErrInvalidLogger  = goerr.New("invalid logger configuration", goerr.T(types.TagConfig))
)
