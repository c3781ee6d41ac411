package services

import (
	"time"

	"nikofree-web/internal/models"
)

// AllFilter disables filtering on an axis
const AllFilter = "All"

var (
	// WeekendDays are the day filters offered on the weekend page
	WeekendDays = []string{AllFilter, "Thursday", "Friday", "Saturday", "Sunday"}

	// WeekendCategories are the category filters offered on the weekend page
	WeekendCategories = []string{AllFilter, "Music", "Culture", "Sports", "Food", "Technology", "Fitness"}
)

// Window is a half-open time interval [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ThursdayOffset returns the number of days from weekday to the next
// Thursday, 0 when weekday is Thursday.
func ThursdayOffset(weekday time.Weekday) int {
	return (int(time.Thursday) - int(weekday) + 7) % 7
}

// WeekendWindows returns the Thursday-to-Sunday window starting at the
// upcoming Thursday's midnight and the seven days that follow it. Days are
// counted on the calendar of now's location.
func WeekendWindows(now time.Time) (weekend, nextWeek Window) {
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	thursday := base.AddDate(0, 0, ThursdayOffset(base.Weekday()))
	weekend = Window{Start: thursday, End: thursday.AddDate(0, 0, 4)}
	nextWeek = Window{Start: weekend.End, End: weekend.End.AddDate(0, 0, 7)}
	return weekend, nextWeek
}

// PartitionEvents splits events into those starting this weekend and those
// starting next week, keeping input order. Events without a start date are
// in neither.
func PartitionEvents(events []*models.Event, now time.Time) (weekend, nextWeek []*models.Event) {
	weekendWindow, nextWeekWindow := WeekendWindows(now)

	weekend = []*models.Event{}
	nextWeek = []*models.Event{}
	for _, event := range events {
		if event == nil || event.StartDate == nil {
			continue
		}

		switch {
		case weekendWindow.Contains(*event.StartDate):
			weekend = append(weekend, event)
		case nextWeekWindow.Contains(*event.StartDate):
			nextWeek = append(nextWeek, event)
		}
	}
	return weekend, nextWeek
}

// FilterEvents keeps events whose weekday (in loc) equals day and whose
// category name equals category. AllFilter or "" matches everything.
func FilterEvents(events []*models.Event, day, category string, loc *time.Location) []*models.Event {
	filtered := []*models.Event{}
	for _, event := range events {
		if event == nil {
			continue
		}
		if !isAll(day) {
			if event.StartDate == nil || event.StartDate.In(loc).Weekday().String() != day {
				continue
			}
		}
		if !isAll(category) && event.CategoryName() != category {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

// NormalizeFilter maps unknown filter values to AllFilter
func NormalizeFilter(value string, allowed []string) string {
	for _, option := range allowed {
		if value == option {
			return value
		}
	}
	return AllFilter
}

func isAll(value string) bool {
	return value == "" || value == AllFilter
}
