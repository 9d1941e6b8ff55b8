// Package dateutil renders backend timestamps in Korean, the way the article
// views present them. Unparsable input is returned unchanged.
package dateutil

import (
	"log/slog"
	"math"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
)

const (
	dateLayout      = "2006년 01월 02일 15:04"
	shortDateLayout = "01월 02일"
	clockLayout     = "15:04"
	dayLayout       = "2006년 01월 02일"
)

var weekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "1분 미만 %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1분 %s", DivBy: time.Minute},
	{D: time.Hour, Format: "%d분 %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "약 1시간 %s", DivBy: time.Hour},
	{D: humanize.Day, Format: "약 %d시간 %s", DivBy: time.Hour},
	{D: math.MaxInt64, Format: "%d일 %s", DivBy: humanize.Day},
}

func parse(s string) (time.Time, error) {
	return dateparse.ParseLocal(s)
}

// FormatDate renders s as "2006년 01월 02일 15:04".
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := parse(s)
	if err != nil {
		slog.Warn("Date format failed", "value", s, "error", err)
		return s
	}
	return t.Format(dateLayout)
}

// FormatRelativeTime renders today's timestamps relatively ("약 3시간 전"),
// yesterday's as "어제 15:04" and older ones as "01월 02일".
func FormatRelativeTime(s string) string {
	return formatRelativeTimeAt(s, time.Now())
}

func formatRelativeTimeAt(s string, now time.Time) string {
	if s == "" {
		return ""
	}
	t, err := parse(s)
	if err != nil {
		slog.Warn("Relative time format failed", "value", s, "error", err)
		return s
	}

	now = now.In(t.Location())
	switch {
	case sameDay(t, now):
		return humanize.CustomRelTime(t, now, "전", "후", relativeMagnitudes)
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "어제 " + t.Format(clockLayout)
	default:
		return t.Format(shortDateLayout)
	}
}

// TodayString renders the current date as "2006년 01월 02일 (월요일)".
func TodayString() string {
	return todayStringAt(time.Now())
}

func todayStringAt(now time.Time) string {
	return now.Format(dayLayout) + " (" + weekdays[now.Weekday()] + ")"
}

// IsValidDate reports whether s is a parsable timestamp.
func IsValidDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := parse(s)
	return err == nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
