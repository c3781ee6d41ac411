package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/models"

	"github.com/sirupsen/logrus"
)

// TicketOption is a ticket tier as shown on the event page
type TicketOption struct {
	Name      string
	Price     string
	Available int
}

// EventDetail is everything the event page shows
type EventDetail struct {
	Event       *models.Event
	Card        EventCard
	Description string
	EndTime     string
	Tickets     []TicketOption
	Partner     *models.Partner
}

// WeekendPage is the "this weekend" listing after filters are applied.
// Filters narrow the weekend list only; next week is always shown whole.
type WeekendPage struct {
	Weekend        Window
	NextWeek       Window
	WeekendEvents  []EventCard
	NextWeekEvents []EventCard
	WeekendTotal   int
	Day            string
	Category       string
	Days           []string
	Categories     []string
}

// CalendarPage is a month grid plus the events of the selected day
type CalendarPage struct {
	Month          CalendarMonth
	Selected       time.Time
	SelectedEvents []EventCard
	PrevMonth      string
	NextMonth      string
}

// EventService serves the public event pages from the backend API
type EventService struct {
	api     EventAPI
	cards   *CardBuilder
	perPage int
	logger  *logrus.Logger
}

// NewEventService creates a new event service
func NewEventService(api EventAPI, cards *CardBuilder, perPage int, logger *logrus.Logger) *EventService {
	return &EventService{
		api:     api,
		cards:   cards,
		perPage: perPage,
		logger:  logger,
	}
}

// ListEvents fetches the public event list in one page of perPage events
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.api.ListEvents(ctx, apiclient.ListEventsParams{PerPage: s.perPage})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetEvent fetches one event for the detail page
func (s *EventService) GetEvent(ctx context.Context, id int) (*EventDetail, error) {
	if id <= 0 {
		return nil, models.ErrInvalidID
	}

	event, err := s.api.GetEvent(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}

	detail := &EventDetail{
		Event:       event,
		Card:        s.cards.Card(event),
		Description: event.Description,
		Partner:     event.Partner,
	}
	if event.EndDate != nil {
		detail.EndTime = event.EndDate.In(s.cards.Location()).Format("Mon, Jan 2 3:04 PM")
	}
	for _, tt := range event.TicketTypes {
		option := TicketOption{Name: tt.Name, Available: tt.QuantityAvailable, Price: "Free"}
		if tt.Price.IsPositive() {
			option.Price = FormatKES(tt.Price)
		}
		detail.Tickets = append(detail.Tickets, option)
	}
	return detail, nil
}

// GetCategories fetches the event categories
func (s *EventService) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.api.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// FeaturedEvents returns up to limit approved events that have not started
// yet, soonest first.
func (s *EventService) FeaturedEvents(ctx context.Context, now time.Time, limit int) ([]EventCard, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := make([]*models.Event, 0, len(events))
	for _, event := range events {
		if event == nil || event.StartDate == nil || event.StartDate.Before(now) {
			continue
		}
		if event.Status != "" && !event.IsApproved() {
			continue
		}
		upcoming = append(upcoming, event)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(*upcoming[j].StartDate)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return s.cards.Cards(upcoming), nil
}

// ThisWeekend partitions the event list around now and applies the day and
// category filters to the weekend list.
func (s *EventService) ThisWeekend(ctx context.Context, now time.Time, day, category string) (*WeekendPage, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	day = NormalizeFilter(day, WeekendDays)
	category = NormalizeFilter(category, WeekendCategories)

	weekendWindow, nextWeekWindow := WeekendWindows(now)
	weekend, nextWeek := PartitionEvents(events, now)
	filtered := FilterEvents(weekend, day, category, now.Location())

	s.logger.WithFields(logrus.Fields{
		"events":    len(events),
		"weekend":   len(weekend),
		"next_week": len(nextWeek),
		"filtered":  len(filtered),
	}).Debug("partitioned weekend events")

	return &WeekendPage{
		Weekend:        weekendWindow,
		NextWeek:       nextWeekWindow,
		WeekendEvents:  s.cards.Cards(filtered),
		NextWeekEvents: s.cards.Cards(nextWeek),
		WeekendTotal:   len(weekend),
		Day:            day,
		Category:       category,
		Days:           WeekendDays,
		Categories:     WeekendCategories,
	}, nil
}

// Calendar lays out month and lists the events of selected. A zero selected
// picks today when it falls in month.
func (s *EventService) Calendar(ctx context.Context, now, month, selected time.Time) (*CalendarPage, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	loc := now.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	if selected.IsZero() && now.Year() == first.Year() && now.Month() == first.Month() {
		selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	}

	page := &CalendarPage{
		Month:     BuildMonth(events, first.Year(), first.Month(), loc, now, selected),
		Selected:  selected,
		PrevMonth: first.AddDate(0, -1, 0).Format("2006-01"),
		NextMonth: first.AddDate(0, 1, 0).Format("2006-01"),
	}
	if !selected.IsZero() {
		page.SelectedEvents = s.cards.Cards(EventsOn(events, selected.In(loc)))
	}
	return page, nil
}
