package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/models"
)

// UserDashboard is the signed-in user's bookings, split around now
type UserDashboard struct {
	Upcoming []models.Booking
	Past     []models.Booking
}

// PartnerDashboard is the signed-in partner's events for one status tab
type PartnerDashboard struct {
	Status string
	Events []*models.Event
	Counts map[models.EventStatus]int
}

// PartnerStatuses are the tabs of the partner dashboard
var PartnerStatuses = []string{"all", string(models.StatusApproved), string(models.StatusPending), string(models.StatusRejected)}

// AccountService serves the user and partner dashboards
type AccountService struct {
	api AccountAPI
}

// NewAccountService creates a new account service
func NewAccountService(api AccountAPI) *AccountService {
	return &AccountService{api: api}
}

// UserDashboard lists the user's bookings. Bookings whose event has not
// started (or has no date) are upcoming.
func (s *AccountService) UserDashboard(ctx context.Context, token string, now time.Time) (*UserDashboard, error) {
	bookings, err := s.api.UserBookings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	dashboard := &UserDashboard{Upcoming: []models.Booking{}, Past: []models.Booking{}}
	for _, booking := range bookings {
		if booking.Event != nil && booking.Event.StartDate != nil && booking.Event.StartDate.Before(now) {
			dashboard.Past = append(dashboard.Past, booking)
			continue
		}
		dashboard.Upcoming = append(dashboard.Upcoming, booking)
	}
	return dashboard, nil
}

// PartnerDashboard lists the partner's events. The whole list is fetched
// once so the tab counts stay correct; status filters it locally.
func (s *AccountService) PartnerDashboard(ctx context.Context, token, status string) (*PartnerDashboard, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		status = "all"
	}

	events, err := s.api.PartnerEvents(ctx, token, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load partner events: %w", err)
	}

	dashboard := &PartnerDashboard{
		Status: status,
		Events: []*models.Event{},
		Counts: make(map[models.EventStatus]int),
	}
	for _, event := range events {
		if event == nil {
			continue
		}
		dashboard.Counts[event.Status]++
		if status == "all" || string(event.Status) == status {
			dashboard.Events = append(dashboard.Events, event)
		}
	}
	return dashboard, nil
}

// DownloadTicket fetches the ticket document of a booking
func (s *AccountService) DownloadTicket(ctx context.Context, bookingNumber string) (*apiclient.TicketFile, error) {
	bookingNumber = strings.TrimSpace(bookingNumber)
	if bookingNumber == "" {
		return nil, models.ErrInvalidInput
	}

	file, err := s.api.DownloadTicket(ctx, bookingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to download ticket %s: %w", bookingNumber, err)
	}
	return file, nil
}
