package model

import (
	"time"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
)

// PresenceSample is one observation of a user's presence state at an
// instant. Samples are immutable once stored; the collector only appends.
type PresenceSample struct {
	UserID    types.UserID
	Presence  types.Presence
	Timestamp time.Time
}

// NewPresenceSample creates a sample stamped with the given observation time
func NewPresenceSample(userID types.UserID, presence types.Presence, ts time.Time) *PresenceSample {
	return &PresenceSample{
		UserID:    userID,
		Presence:  presence,
		Timestamp: ts,
	}
}
