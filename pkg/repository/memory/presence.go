package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/interfaces"
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
)

type presenceRepository struct {
	mu      sync.RWMutex
	samples map[string]*model.PresenceSample
}

var _ interfaces.PresenceRepository = &presenceRepository{}

func newPresenceRepository() *presenceRepository {
	return &presenceRepository{
		samples: make(map[string]*model.PresenceSample),
	}
}

// sampleKey mirrors the durable backend's composite key so both backends
// show identical overwrite behavior on an exact triple collision.
func sampleKey(sample *model.PresenceSample) string {
	return fmt.Sprintf("%s:%s:%s", sample.UserID, sample.Presence, sample.Timestamp.Format(time.RFC3339Nano))
}

func copySample(sample *model.PresenceSample) *model.PresenceSample {
	copied := *sample
	return &copied
}

func (r *presenceRepository) Put(ctx context.Context, sample *model.PresenceSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples[sampleKey(sample)] = copySample(sample)
	return nil
}

func (r *presenceRepository) ScanAll(ctx context.Context) ([]*model.PresenceSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.PresenceSample, 0, len(r.samples))
	for _, sample := range r.samples {
		result = append(result, copySample(sample))
	}
	return result, nil
}
