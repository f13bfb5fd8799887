package interfaces

import (
	"context"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
)

// Repository defines the interface for data persistence
type Repository interface {
	Presence() PresenceRepository
	Close() error
}

// PresenceRepository is the sample table. It is append-only: samples are
// never updated or deleted by this system.
type PresenceRepository interface {
	// Put appends one sample. Records are keyed by the
	// (userid, presence, datetime) triple; no further uniqueness is
	// enforced, so duplicate timestamps are possible and readers must
	// tolerate them.
	Put(ctx context.Context, sample *model.PresenceSample) error

	// ScanAll returns every record in the table, unordered and complete.
	// Callers sort and group themselves.
	ScanAll(ctx context.Context) ([]*model.PresenceSample, error)
}
