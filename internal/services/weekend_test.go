package services

import (
	"testing"
	"time"

	"nikofree-web/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t time.Time) *time.Time {
	return &t
}

func eventAt(id int, start *time.Time, category string) *models.Event {
	event := &models.Event{ID: id, StartDate: start, Status: models.StatusApproved}
	if category != "" {
		event.Category = &models.Category{Name: category}
	}
	return event
}

func TestThursdayOffset(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		offset  int
	}{
		{time.Sunday, 4},
		{time.Monday, 3},
		{time.Tuesday, 2},
		{time.Wednesday, 1},
		{time.Thursday, 0},
		{time.Friday, 6},
		{time.Saturday, 5},
	}

	for _, tt := range tests {
		t.Run(tt.weekday.String(), func(t *testing.T) {
			assert.Equal(t, tt.offset, ThursdayOffset(tt.weekday))
		})
	}
}

func TestWeekendWindows_Wednesday(t *testing.T) {
	// Wednesday 5 Nov 2025, mid-afternoon
	now := time.Date(2025, 11, 5, 15, 30, 0, 0, time.UTC)

	weekend, nextWeek := WeekendWindows(now)

	assert.Equal(t, time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC), weekend.Start)
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), weekend.End)
	assert.Equal(t, weekend.End, nextWeek.Start)
	assert.Equal(t, time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC), nextWeek.End)
}

func TestWeekendWindows_Thursday(t *testing.T) {
	now := time.Date(2025, 11, 6, 23, 59, 0, 0, time.UTC)

	weekend, _ := WeekendWindows(now)

	assert.Equal(t, time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC), weekend.Start)
	assert.True(t, weekend.Contains(now))
}

func TestWeekendWindows_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST ends on Sunday 2 Nov 2025 in New York
	now := time.Date(2025, 10, 29, 12, 0, 0, 0, loc)
	weekend, nextWeek := WeekendWindows(now)

	assert.Equal(t, time.Date(2025, 10, 30, 0, 0, 0, 0, loc), weekend.Start)
	assert.Equal(t, time.Date(2025, 11, 3, 0, 0, 0, 0, loc), weekend.End)
	assert.Equal(t, 0, weekend.End.Hour(), "window ends at local midnight")
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, loc), nextWeek.End)
}

func TestWindow_Contains(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Nanosecond)))
}

func TestPartitionEvents(t *testing.T) {
	now := time.Date(2025, 11, 5, 15, 30, 0, 0, time.UTC) // Wednesday

	saturday := eventAt(1, at(time.Date(2025, 11, 8, 20, 0, 0, 0, time.UTC)), "Music")
	thursdayMidnight := eventAt(2, at(time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC)), "Food")
	mondayMidnight := eventAt(3, at(time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)), "Sports")
	lastOfNextWeek := eventAt(4, at(time.Date(2025, 11, 16, 23, 59, 0, 0, time.UTC)), "")
	tooLate := eventAt(5, at(time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)), "")
	today := eventAt(6, at(time.Date(2025, 11, 5, 18, 0, 0, 0, time.UTC)), "")
	undated := eventAt(7, nil, "Music")

	events := []*models.Event{saturday, thursdayMidnight, mondayMidnight, lastOfNextWeek, tooLate, today, undated, nil}

	weekend, nextWeek := PartitionEvents(events, now)

	assert.Equal(t, []*models.Event{saturday, thursdayMidnight}, weekend)
	assert.Equal(t, []*models.Event{mondayMidnight, lastOfNextWeek}, nextWeek)
}

func TestPartitionEvents_Empty(t *testing.T) {
	weekend, nextWeek := PartitionEvents(nil, time.Now())

	assert.NotNil(t, weekend)
	assert.NotNil(t, nextWeek)
	assert.Empty(t, weekend)
	assert.Empty(t, nextWeek)
}

func TestPartitionEvents_SaturdayScenario(t *testing.T) {
	now := time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC)
	weekendWindow, _ := WeekendWindows(now)

	saturday := weekendWindow.Start.AddDate(0, 0, 2).Add(19 * time.Hour)
	require.Equal(t, time.Saturday, saturday.Weekday())

	event := eventAt(1, at(saturday), "Music")
	weekend, _ := PartitionEvents([]*models.Event{event}, now)
	require.Equal(t, []*models.Event{event}, weekend)

	assert.Equal(t, weekend, FilterEvents(weekend, AllFilter, AllFilter, time.UTC))
	assert.Equal(t, weekend, FilterEvents(weekend, "Saturday", AllFilter, time.UTC))
	assert.Empty(t, FilterEvents(weekend, "Friday", AllFilter, time.UTC))
}

// Every reference time over two weeks, hourly, in a zone with DST
func TestPartitionEvents_Properties(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	start := time.Date(2025, 10, 20, 0, 30, 0, 0, loc)
	events := make([]*models.Event, 0, 24*40)
	for h := 0; h < 24*40; h += 5 {
		events = append(events, eventAt(h, at(start.Add(time.Duration(h)*time.Hour)), ""))
	}
	events = append(events, eventAt(-1, nil, ""))

	for h := 0; h < 24*14; h++ {
		now := start.Add(time.Duration(h) * time.Hour)
		weekendWindow, nextWeekWindow := WeekendWindows(now)

		assert.Equal(t, time.Thursday, weekendWindow.Start.Weekday(), "now=%s", now)
		assert.Equal(t, 0, weekendWindow.Start.Hour())
		assert.Equal(t, time.Monday, weekendWindow.End.Weekday())
		assert.Equal(t, weekendWindow.End, nextWeekWindow.Start)
		assert.False(t, weekendWindow.Start.After(now.Add(7*24*time.Hour)))

		weekend, nextWeek := PartitionEvents(events, now)

		seen := make(map[int]bool)
		for _, e := range weekend {
			require.NotNil(t, e.StartDate)
			assert.True(t, weekendWindow.Contains(*e.StartDate))
			seen[e.ID] = true
		}
		for _, e := range nextWeek {
			require.NotNil(t, e.StartDate)
			assert.True(t, nextWeekWindow.Contains(*e.StartDate))
			assert.False(t, seen[e.ID], "event %d in both windows", e.ID)
		}

		again, againNext := PartitionEvents(events, now)
		assert.Equal(t, weekend, again)
		assert.Equal(t, nextWeek, againNext)
	}
}

func TestFilterEvents(t *testing.T) {
	friday := eventAt(1, at(time.Date(2025, 11, 7, 18, 0, 0, 0, time.UTC)), "Music")
	saturday := eventAt(2, at(time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC)), "Sports")
	uncategorized := eventAt(3, at(time.Date(2025, 11, 8, 12, 0, 0, 0, time.UTC)), "")
	events := []*models.Event{friday, saturday, uncategorized}

	tests := []struct {
		name     string
		day      string
		category string
		want     []*models.Event
	}{
		{"no filters", AllFilter, AllFilter, events},
		{"empty means all", "", "", events},
		{"by day", "Saturday", AllFilter, []*models.Event{saturday, uncategorized}},
		{"by category", AllFilter, "Music", []*models.Event{friday}},
		{"uncategorized is Other", AllFilter, "Other", []*models.Event{uncategorized}},
		{"both", "Saturday", "Sports", []*models.Event{saturday}},
		{"nothing matches", "Sunday", AllFilter, []*models.Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterEvents(events, tt.day, tt.category, time.UTC))
		})
	}
}

func TestFilterEvents_UsesDisplayTimezone(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	// 22:30 UTC Friday is 01:30 Saturday in Nairobi
	event := eventAt(1, at(time.Date(2025, 11, 7, 22, 30, 0, 0, time.UTC)), "")

	assert.Len(t, FilterEvents([]*models.Event{event}, "Saturday", AllFilter, nairobi), 1)
	assert.Empty(t, FilterEvents([]*models.Event{event}, "Saturday", AllFilter, time.UTC))
}

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t, "Friday", NormalizeFilter("Friday", WeekendDays))
	assert.Equal(t, AllFilter, NormalizeFilter("friday", WeekendDays))
	assert.Equal(t, AllFilter, NormalizeFilter("", WeekendCategories))
	assert.Equal(t, "Food", NormalizeFilter("Food", WeekendCategories))
}
