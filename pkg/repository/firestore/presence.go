package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/status"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/interfaces"
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
)

// datetimeLayout is the wire format of the datetime field. RFC3339 with
// nanoseconds keeps the collector's local offset, so the analyzer buckets
// samples into the calendar day they were observed in.
const datetimeLayout = time.RFC3339Nano

type presenceRepository struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.PresenceRepository = &presenceRepository{}

func newPresenceRepository(client *firestore.Client, collection string) *presenceRepository {
	return &presenceRepository{
		client:     client,
		collection: collection,
	}
}

// presenceDoc is the persistence model. All three fields are strings; the
// typed representation exists only on the domain side of this boundary.
type presenceDoc struct {
	UserID   string `firestore:"userid"`
	Presence string `firestore:"presence"`
	Datetime string `firestore:"datetime"`
}

// docID builds the composite record key. An exact triple collision
// overwrites, which matches the original store's last-writer-wins put;
// duplicate timestamps with differing presence remain distinct records.
func docID(doc *presenceDoc) string {
	return fmt.Sprintf("%s:%s:%s", doc.UserID, doc.Presence, doc.Datetime)
}

func toDoc(sample *model.PresenceSample) *presenceDoc {
	return &presenceDoc{
		UserID:   string(sample.UserID),
		Presence: string(sample.Presence),
		Datetime: sample.Timestamp.Format(datetimeLayout),
	}
}

func fromDoc(doc *presenceDoc) (*model.PresenceSample, error) {
	ts, err := time.Parse(datetimeLayout, doc.Datetime)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid datetime in presence record",
			goerr.T(types.TagStorage),
			goerr.V("datetime", doc.Datetime),
			goerr.V("userid", doc.UserID),
		)
	}

	return &model.PresenceSample{
		UserID:    types.UserID(doc.UserID),
		Presence:  types.Presence(doc.Presence),
		Timestamp: ts,
	}, nil
}

// Put appends one sample as a single document write
func (r *presenceRepository) Put(ctx context.Context, sample *model.PresenceSample) error {
	doc := toDoc(sample)
	if _, err := r.client.Collection(r.collection).Doc(docID(doc)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put presence sample",
			goerr.T(types.TagStorage),
			goerr.V("collection", r.collection),
			goerr.V("userid", doc.UserID),
			goerr.V("grpc_code", status.Code(err).String()),
		)
	}
	return nil
}

// ScanAll streams every document in the collection. The iterator fetches
// successive pages internally, so the result set is complete regardless of
// collection size.
func (r *presenceRepository) ScanAll(ctx context.Context) ([]*model.PresenceSample, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	var samples []*model.PresenceSample
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan presence samples",
				goerr.T(types.TagStorage),
				goerr.V("collection", r.collection),
				goerr.V("grpc_code", status.Code(err).String()),
			)
		}

		var doc presenceDoc
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode presence record",
				goerr.T(types.TagStorage),
				goerr.V("doc_id", snapshot.Ref.ID),
			)
		}

		sample, err := fromDoc(&doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to restore presence sample", goerr.V("doc_id", snapshot.Ref.ID))
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
