package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/logging"
)

// Collect fetches the user's current presence, stamps it with the current
// wall clock and appends it to the sample table. One record per invocation;
// re-invocation appends rather than upserts. No retry: any failure
// propagates to the caller.
func (u *UseCases) Collect(ctx context.Context, userID types.UserID) (*model.PresenceSample, error) {
	if u.source == nil {
		return nil, goerr.New("presence source is not configured", goerr.T(types.TagConfig))
	}

	presence, err := u.source.GetUserPresence(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch presence", goerr.V("user_id", userID))
	}

	sample := model.NewPresenceSample(userID, presence, u.now())
	if err := u.repo.Presence().Put(ctx, sample); err != nil {
		return nil, goerr.Wrap(err, "failed to save presence sample", goerr.V("user_id", userID))
	}

	logging.From(ctx).Info("Saved presence sample",
		"user_id", userID,
		"presence", presence,
		"timestamp", sample.Timestamp,
	)

	return sample, nil
}
