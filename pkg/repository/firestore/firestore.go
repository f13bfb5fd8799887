package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/interfaces"
)

// Firestore stores presence samples in a single flat collection. The
// collection name is the "table name" of the original schema.
type Firestore struct {
	client   *firestore.Client
	presence *presenceRepository
}

var _ interfaces.Repository = &Firestore{}

// New creates a Firestore-backed repository. databaseID may be empty to use
// the project's default database.
func New(ctx context.Context, projectID, databaseID, collection string) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Firestore{
		client:   client,
		presence: newPresenceRepository(client, collection),
	}, nil
}

func (f *Firestore) Presence() interfaces.PresenceRepository {
	return f.presence
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
