package services

import (
	"fmt"
	"time"

	"nikofree-web/internal/models"
)

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date     time.Time
	InMonth  bool
	IsToday  bool
	Selected bool
	Events   []*models.Event
}

// CalendarMonth is a Sunday-first month grid
type CalendarMonth struct {
	Year  int
	Month time.Month
	Weeks [][]CalendarDay
}

// Title returns "November 2025"
func (m CalendarMonth) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// BuildMonth lays out the month of (year, month) in loc as full weeks and
// attaches to every day the events starting on it.
func BuildMonth(events []*models.Event, year int, month time.Month, loc *time.Location, today, selected time.Time) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	nextMonth := first.AddDate(0, 1, 0)

	byDay := groupByDay(events, loc)

	cal := CalendarMonth{Year: year, Month: month}
	for weekStart := gridStart; weekStart.Before(nextMonth); weekStart = weekStart.AddDate(0, 0, 7) {
		week := make([]CalendarDay, 0, 7)
		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i)
			week = append(week, CalendarDay{
				Date:     day,
				InMonth:  day.Month() == month,
				IsToday:  sameDay(day, today.In(loc)),
				Selected: !selected.IsZero() && sameDay(day, selected.In(loc)),
				Events:   byDay[dayKey(day)],
			})
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal
}

// EventsOn returns the events starting on day's calendar date in day's
// location, keeping input order.
func EventsOn(events []*models.Event, day time.Time) []*models.Event {
	loc := day.Location()
	matched := []*models.Event{}
	for _, event := range events {
		if event == nil || event.StartDate == nil {
			continue
		}
		if sameDay(event.StartDate.In(loc), day) {
			matched = append(matched, event)
		}
	}
	return matched
}

// ParseMonth parses "2006-01" in loc, falling back to the month of now
func ParseMonth(value string, now time.Time) time.Time {
	if t, err := time.ParseInLocation("2006-01", value, now.Location()); err == nil {
		return t
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// ParseDay parses "2006-01-02" in loc. ok is false for empty or invalid values.
func ParseDay(value string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func groupByDay(events []*models.Event, loc *time.Location) map[string][]*models.Event {
	byDay := make(map[string][]*models.Event)
	for _, event := range events {
		if event == nil || event.StartDate == nil {
			continue
		}
		key := dayKey(event.StartDate.In(loc))
		byDay[key] = append(byDay[key], event)
	}
	return byDay
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
