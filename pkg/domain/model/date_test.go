package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/Anubisss/slack-user-presence-saver/pkg/domain/model"
)

func TestDateOf_UsesTimestampLocation(t *testing.T) {
	// 2025-09-01 08:30 at UTC+9 is September 1st in that location, even
	// though the same instant is still August 31st in UTC.
	jst := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2025, 9, 1, 8, 30, 0, 0, jst)

	gt.Value(t, model.DateOf(ts)).Equal(model.Date{Year: 2025, Month: time.September, Day: 1})
	gt.Value(t, model.DateOf(ts.UTC())).Equal(model.Date{Year: 2025, Month: time.August, Day: 31})
}

func TestDateWeekday(t *testing.T) {
	gt.Value(t, model.Date{Year: 2025, Month: time.September, Day: 1}.Weekday()).Equal(time.Monday)
	gt.Value(t, model.Date{Year: 2025, Month: time.September, Day: 6}.Weekday()).Equal(time.Saturday)
}

func TestDateIsBusinessDay(t *testing.T) {
	gt.Bool(t, model.Date{Year: 2025, Month: time.September, Day: 1}.IsBusinessDay()).True()
	gt.Bool(t, model.Date{Year: 2025, Month: time.September, Day: 5}.IsBusinessDay()).True()
	gt.Bool(t, model.Date{Year: 2025, Month: time.September, Day: 6}.IsBusinessDay()).False()
	gt.Bool(t, model.Date{Year: 2025, Month: time.September, Day: 7}.IsBusinessDay()).False()
}

func TestDateBefore(t *testing.T) {
	a := model.Date{Year: 2025, Month: time.August, Day: 31}
	b := model.Date{Year: 2025, Month: time.September, Day: 1}
	gt.Bool(t, a.Before(b)).True()
	gt.Bool(t, b.Before(a)).False()
	gt.Bool(t, a.Before(a)).False()
}

func TestDateString(t *testing.T) {
	gt.Value(t, model.Date{Year: 2025, Month: time.September, Day: 1}.String()).Equal("2025-09-01")
}
