package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/interfaces"
	"github.com/Anubisss/slack-user-presence-saver/pkg/repository/firestore"
	"github.com/Anubisss/slack-user-presence-saver/pkg/repository/memory"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/logging"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	projectID  string
	databaseID string
	collection string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (firestore or memory)",
			Category:    "Storage",
			Value:       "firestore",
			Sources:     cli.EnvVars("SLACK_PRESENCE_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Storage",
			Sources:     cli.EnvVars("SLACK_PRESENCE_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID (empty for the default database)",
			Category:    "Storage",
			Sources:     cli.EnvVars("SLACK_PRESENCE_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "collection",
			Usage:       "Name of the presence sample table (Firestore collection)",
			Category:    "Storage",
			Sources:     cli.EnvVars("SLACK_PRESENCE_COLLECTION"),
			Destination: &r.collection,
		},
	}
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "firestore":
		if r.projectID == "" {
			return nil, goerr.Wrap(ErrMissingSetting, "firestore-project-id is required when using firestore backend")
		}
		if r.collection == "" {
			return nil, goerr.Wrap(ErrMissingSetting, "collection is required when using firestore backend")
		}

		repo, err := firestore.New(ctx, r.projectID, r.databaseID, r.collection)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.From(ctx).Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
			"collection", r.collection,
		)
		return repo, nil

	case "memory":
		logging.From(ctx).Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "unknown backend", goerr.V("backend", r.backend))
	}
}
