package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
	"github.com/Anubisss/slack-user-presence-saver/pkg/service/analysis"
	"github.com/Anubisss/slack-user-presence-saver/pkg/service/report"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/logging"
)

// Report scans the whole sample table, keeps business-day samples, groups
// them by calendar date and renders the per-day session analysis. A scan
// failure aborts the entire report; there is no partial result.
func (u *UseCases) Report(ctx context.Context, renderer *report.Renderer) error {
	logger := logging.From(ctx)
	logger.Info("Fetching presence data")

	samples, err := u.repo.Presence().ScanAll(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to scan presence samples")
	}
	logger.Info("Found presence records", "count", len(samples))

	business := analysis.FilterBusinessDays(samples)
	logger.Info("Filtered to business-day records", "count", len(business))

	days := make(map[model.Date]*model.DayAnalysis)
	for date, group := range analysis.GroupByDate(business) {
		if result := analysis.AnalyzeDay(date, group); result != nil {
			days[date] = result
		}
	}

	return renderer.Render(ctx, days)
}
