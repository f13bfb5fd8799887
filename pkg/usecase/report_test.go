package usecase_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/types"
	"github.com/Anubisss/slack-user-presence-saver/pkg/repository/memory"
	"github.com/Anubisss/slack-user-presence-saver/pkg/service/report"
	"github.com/Anubisss/slack-user-presence-saver/pkg/usecase"
)

func TestReport(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	userID := types.UserID("U0123456")

	// Monday 2025-09-01 with a 10-minute break, plus Saturday noise that the
	// weekday filter must drop.
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)

	for _, s := range []*model.PresenceSample{
		model.NewPresenceSample(userID, types.PresenceActive, monday.Add(9*time.Hour)),
		model.NewPresenceSample(userID, types.PresenceAway, monday.Add(9*time.Hour+30*time.Minute)),
		model.NewPresenceSample(userID, types.PresenceActive, monday.Add(9*time.Hour+40*time.Minute)),
		model.NewPresenceSample(userID, types.PresenceActive, monday.Add(17*time.Hour)),
		model.NewPresenceSample(userID, types.PresenceActive, saturday),
	} {
		gt.NoError(t, repo.Presence().Put(ctx, s))
	}

	var buf bytes.Buffer
	uc := usecase.New(repo)
	gt.NoError(t, uc.Report(ctx, report.New(&buf, report.WithColor(false))))

	out := buf.String()
	gt.String(t, out).Contains("📅 Sep 01, Mon")
	gt.String(t, out).Contains("💼 Work Hours: 09:00 - 17:00")
	gt.String(t, out).Contains("☕ Breaks: 1 (10m)")
	gt.String(t, out).Contains("1. 09:30 - 09:40 (10m)")

	// Saturday must not appear at all.
	gt.Bool(t, bytes.Contains(buf.Bytes(), []byte("Sep 06"))).False()
}

func TestReport_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	uc := usecase.New(memory.New())

	gt.NoError(t, uc.Report(context.Background(), report.New(&buf, report.WithColor(false))))
	gt.String(t, buf.String()).Contains("SLACK PRESENCE ANALYSIS")
}

func TestReport_AwayOnlyDayRendersNoActivity(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	gt.NoError(t, repo.Presence().Put(ctx,
		model.NewPresenceSample(types.UserID("U0123456"), types.PresenceAway, monday.Add(10*time.Hour))))

	var buf bytes.Buffer
	uc := usecase.New(repo)
	gt.NoError(t, uc.Report(ctx, report.New(&buf, report.WithColor(false))))

	gt.String(t, buf.String()).Contains("📅 Sep 01, Mon - No activity")
}
