package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
)

// BreakThresholdMinutes is the minimum "away" span that counts as a break
const BreakThresholdMinutes = 5

// FilterBusinessDays keeps samples whose timestamp falls on Monday through
// Friday, in the timestamp's own location.
func FilterBusinessDays(samples []*model.PresenceSample) []*model.PresenceSample {
	result := make([]*model.PresenceSample, 0, len(samples))
	for _, s := range samples {
		if model.DateOf(s.Timestamp).IsBusinessDay() {
			result = append(result, s)
		}
	}
	return result
}

// GroupByDate partitions samples by calendar date and sorts each group
// ascending by timestamp. Duplicate timestamps are retained; the stable
// sort keeps their scan order.
func GroupByDate(samples []*model.PresenceSample) map[model.Date][]*model.PresenceSample {
	grouped := make(map[model.Date][]*model.PresenceSample)
	for _, s := range samples {
		date := model.DateOf(s.Timestamp)
		grouped[date] = append(grouped[date], s)
	}

	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})
	}

	return grouped
}

// durationMinutes is the span between two instants in whole minutes,
// rounded to nearest.
func durationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// AnalyzeDay computes the work-session statistics of one day from its
// time-sorted samples. Returns nil for an empty day.
//
// The work window is the span between the first and last "active" sample.
// Inter-sample gaps whose left endpoint falls inside the window, endpoints
// included, are attributed to online time when the left sample is active,
// otherwise to offline time. Gaps starting before the first or after the
// last active sample are not counted.
func AnalyzeDay(date model.Date, samples []*model.PresenceSample) *model.DayAnalysis {
	if len(samples) == 0 {
		return nil
	}

	var firstOnline, lastOnline *model.PresenceSample
	for _, s := range samples {
		if s.Presence.IsActive() {
			if firstOnline == nil {
				firstOnline = s
			}
			lastOnline = s
		}
	}

	// A day with only "away" or other samples recorded no actual work.
	if firstOnline == nil {
		return &model.DayAnalysis{
			Date:   date,
			Breaks: []model.Break{},
		}
	}

	workStart := firstOnline.Timestamp
	workEnd := lastOnline.Timestamp

	var totalOnline, totalOffline int
	for i := 0; i < len(samples)-1; i++ {
		current, next := samples[i], samples[i+1]
		if current.Timestamp.Before(workStart) || current.Timestamp.After(workEnd) {
			continue
		}

		gap := durationMinutes(current.Timestamp, next.Timestamp)
		if current.Presence.IsActive() {
			totalOnline += gap
		} else {
			totalOffline += gap
		}
	}

	return &model.DayAnalysis{
		Date:                date,
		FirstOnline:         &workStart,
		LastOnline:          &workEnd,
		TotalOnlineMinutes:  totalOnline,
		TotalOfflineMinutes: totalOffline,
		Breaks:              detectBreaks(samples, workStart, workEnd),
	}
}

// detectBreaks scans the work window for "away" spans of at least
// BreakThresholdMinutes. Only an "active" sample closes an open break;
// other non-active states neither open nor close one. A break still open
// at the end of the window closes at workEnd under the same threshold.
func detectBreaks(samples []*model.PresenceSample, workStart, workEnd time.Time) []model.Break {
	breaks := []model.Break{}
	var openedAt *time.Time

	for _, s := range samples {
		if s.Timestamp.Before(workStart) || s.Timestamp.After(workEnd) {
			continue
		}

		switch {
		case s.Presence.IsAway() && openedAt == nil:
			ts := s.Timestamp
			openedAt = &ts

		case s.Presence.IsActive() && openedAt != nil:
			if d := durationMinutes(*openedAt, s.Timestamp); d >= BreakThresholdMinutes {
				breaks = append(breaks, model.Break{
					Start:           *openedAt,
					End:             s.Timestamp,
					DurationMinutes: d,
				})
			}
			openedAt = nil
		}
	}

	if openedAt != nil && openedAt.Before(workEnd) {
		if d := durationMinutes(*openedAt, workEnd); d >= BreakThresholdMinutes {
			breaks = append(breaks, model.Break{
				Start:           *openedAt,
				End:             workEnd,
				DurationMinutes: d,
			})
		}
	}

	return breaks
}
