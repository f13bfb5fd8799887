package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
	"github.com/Anubisss/slack-user-presence-saver/pkg/service/report"
)

func TestRender(t *testing.T) {
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	firstOnline := day.Add(9 * time.Hour)
	lastOnline := day.Add(17 * time.Hour)
	breakStart := day.Add(9*time.Hour + 30*time.Minute)
	breakEnd := day.Add(9*time.Hour + 40*time.Minute)

	days := map[model.Date]*model.DayAnalysis{
		model.DateOf(day): {
			Date:                model.DateOf(day),
			FirstOnline:         &firstOnline,
			LastOnline:          &lastOnline,
			TotalOnlineMinutes:  470,
			TotalOfflineMinutes: 10,
			Breaks: []model.Break{
				{Start: breakStart, End: breakEnd, DurationMinutes: 10},
			},
		},
		model.DateOf(day.AddDate(0, 0, 1)): {
			Date:   model.DateOf(day.AddDate(0, 0, 1)),
			Breaks: []model.Break{},
		},
	}

	var buf bytes.Buffer
	r := report.New(&buf, report.WithColor(false))
	gt.NoError(t, r.Render(context.Background(), days))

	out := buf.String()
	gt.String(t, out).Contains("📊 SLACK PRESENCE ANALYSIS")
	gt.String(t, out).Contains("📅 Sep 01, Mon")
	gt.String(t, out).Contains("💼 Work Hours: 09:00 - 17:00")
	gt.String(t, out).Contains("🟢 Online:  7h 50m (98%)")
	gt.String(t, out).Contains("🔴 Offline: 10m (2%)")
	gt.String(t, out).Contains("☕ Breaks: 1 (10m)")
	gt.String(t, out).Contains("1. 09:30 - 09:40 (10m)")
	gt.String(t, out).Contains("📅 Sep 02, Tue - No activity")

	// Days render in ascending date order.
	gt.Bool(t, strings.Index(out, "Sep 01") < strings.Index(out, "Sep 02")).True()
}

func TestRender_ZeroTotalsPercentage(t *testing.T) {
	day := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	ts := day.Add(10 * time.Hour)

	days := map[model.Date]*model.DayAnalysis{
		model.DateOf(day): {
			Date:        model.DateOf(day),
			FirstOnline: &ts,
			LastOnline:  &ts,
			Breaks:      []model.Break{},
		},
	}

	var buf bytes.Buffer
	r := report.New(&buf, report.WithColor(false))
	gt.NoError(t, r.Render(context.Background(), days))

	out := buf.String()
	gt.String(t, out).Contains("🟢 Online:  0m (0%)")
	gt.String(t, out).Contains("🔴 Offline: 0m (100%)")
	gt.String(t, out).Contains("☕ Breaks: None")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, report.WithColor(false))
	gt.NoError(t, r.Render(context.Background(), map[model.Date]*model.DayAnalysis{}))

	gt.String(t, buf.String()).Contains("SLACK PRESENCE ANALYSIS")
}
