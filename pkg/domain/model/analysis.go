package model

import "time"

// Break is a contiguous "away" span inside the observed work window that
// lasted at least the break threshold.
type Break struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// DayAnalysis holds the computed work-session statistics of one business
// day. FirstOnline and LastOnline are nil when the day recorded no "active"
// sample at all. Never persisted; recomputed from raw samples on every run.
type DayAnalysis struct {
	Date                Date
	FirstOnline         *time.Time
	LastOnline          *time.Time
	TotalOnlineMinutes  int
	TotalOfflineMinutes int
	Breaks              []Break
}

// HasActivity checks if the day has an observed work window
func (a *DayAnalysis) HasActivity() bool {
	return a.FirstOnline != nil && a.LastOnline != nil
}

// TotalBreakMinutes returns the sum of all break durations
func (a *DayAnalysis) TotalBreakMinutes() int {
	var total int
	for _, b := range a.Breaks {
		total += b.DurationMinutes
	}
	return total
}
