package usecase

import (
	"time"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/interfaces"
	"github.com/Anubisss/slack-user-presence-saver/pkg/service/slack"
)

// UseCases wires the repository and the presence source into the two
// application flows: collecting one sample and reporting all of them.
type UseCases struct {
	repo   interfaces.Repository
	source slack.Source
	now    func() time.Time
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithSource sets the presence source. Required for Collect; the report
// flow never touches the Slack API.
func WithSource(source slack.Source) Option {
	return func(u *UseCases) {
		u.source = source
	}
}

// WithClock overrides the wall clock used to stamp samples. For tests.
func WithClock(now func() time.Time) Option {
	return func(u *UseCases) {
		u.now = now
	}
}

// New creates the use cases on the given repository
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	u := &UseCases{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}
