package report

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
	"github.com/Anubisss/slack-user-presence-saver/pkg/utils/safe"
)

const (
	iconOnline   = "🟢"
	iconOffline  = "🔴"
	iconBreak    = "☕"
	iconWork     = "💼"
	iconCalendar = "📅"
	iconStats    = "📊"
)

// Renderer writes the daily presence report as formatted text lines
type Renderer struct {
	w io.Writer

	header  *color.Color
	heading *color.Color
	online  *color.Color
	offline *color.Color
	brk     *color.Color
	dim     *color.Color
}

// Option is a functional option for renderer configuration
type Option func(*Renderer)

// WithColor enables or disables ANSI styling. Styling defaults to the
// fatih/color auto-detection of the output terminal.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		for _, c := range []*color.Color{r.header, r.heading, r.online, r.offline, r.brk, r.dim} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// New creates a report renderer writing to w
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		w:       w,
		header:  color.New(color.FgCyan, color.Bold),
		heading: color.New(color.FgBlue, color.Bold),
		online:  color.New(color.FgGreen),
		offline: color.New(color.FgRed),
		brk:     color.New(color.FgYellow),
		dim:     color.New(color.Faint),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render writes the report for the given per-day analyses, sorted by date
// ascending. Days without any "active" sample render a "No activity" line.
func (r *Renderer) Render(ctx context.Context, days map[model.Date]*model.DayAnalysis) error {
	r.line(ctx, "\n%s\n", r.header.Sprintf("%s SLACK PRESENCE ANALYSIS", iconStats))

	dates := make([]model.Date, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		r.renderDay(ctx, date, days[date])
	}

	return nil
}

func (r *Renderer) renderDay(ctx context.Context, date model.Date, day *model.DayAnalysis) {
	if day == nil || !day.HasActivity() {
		r.line(ctx, "%s\n", r.dim.Sprintf("%s %s - No activity", iconCalendar, formatDate(date)))
		return
	}

	r.line(ctx, "%s", r.heading.Sprintf("%s %s", iconCalendar, formatDate(date)))
	r.line(ctx, "  %s", r.online.Sprintf("%s Work Hours: %s - %s",
		iconWork, day.FirstOnline.Format("15:04"), day.LastOnline.Format("15:04")))

	onlinePct := onlinePercentage(day.TotalOnlineMinutes, day.TotalOfflineMinutes)
	r.line(ctx, "  %s", r.online.Sprintf("%s Online:  %s (%d%%)",
		iconOnline, formatDuration(day.TotalOnlineMinutes), onlinePct))
	r.line(ctx, "  %s", r.offline.Sprintf("%s Offline: %s (%d%%)",
		iconOffline, formatDuration(day.TotalOfflineMinutes), 100-onlinePct))

	if len(day.Breaks) == 0 {
		r.line(ctx, "  %s", r.dim.Sprintf("%s Breaks: None", iconBreak))
	} else {
		r.line(ctx, "  %s", r.brk.Sprintf("%s Breaks: %d (%s)",
			iconBreak, len(day.Breaks), formatDuration(day.TotalBreakMinutes())))
		for i, b := range day.Breaks {
			r.line(ctx, "     %s", r.dim.Sprintf("%d. %s - %s (%s)",
				i+1, b.Start.Format("15:04"), b.End.Format("15:04"), formatDuration(b.DurationMinutes)))
		}
	}

	r.line(ctx, "")
}

func (r *Renderer) line(ctx context.Context, format string, args ...any) {
	safe.Write(ctx, r.w, []byte(fmt.Sprintf(format+"\n", args...)))
}

// onlinePercentage rounds online/(online+offline) to a whole percent,
// returning 0 when the total is zero.
func onlinePercentage(online, offline int) int {
	total := online + offline
	if total == 0 {
		return 0
	}
	return int(float64(online)/float64(total)*100 + 0.5)
}

// formatDate renders a date like "Sep 01, Mon"
func formatDate(date model.Date) string {
	return date.Format("Jan 02, Mon")
}

// formatDuration renders whole minutes like "7h 50m", "7h" or "50m"
func formatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}
