package memory

import (
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests
type Memory struct {
	presence *presenceRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		presence: newPresenceRepository(),
	}
}

func (m *Memory) Presence() interfaces.PresenceRepository {
	return m.presence
}

func (m *Memory) Close() error {
	return nil
}
