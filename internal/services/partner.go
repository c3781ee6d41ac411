package services

import (
	"context"
	"fmt"
	"time"

	"nikofree-web/internal/models"
)

// PartnerProfile is the public profile of an organizer
type PartnerProfile struct {
	Partner       models.Partner
	CurrentEvents []*models.Event
	PastEvents    []*models.Event
	Reviews       []models.Review
	AverageRating float64
}

// PartnerService derives partner profiles from the public event list.
// The API has no public partner lookup, so the partner record comes from
// the events that partner organizes.
type PartnerService struct {
	lister EventLister
}

// EventLister fetches the full public event list
type EventLister interface {
	ListEvents(ctx context.Context) ([]*models.Event, error)
}

// NewPartnerService creates a partner directory backed by the event list
func NewPartnerService(lister EventLister) *PartnerService {
	return &PartnerService{lister: lister}
}

// GetProfile returns the profile of partnerID. A partner with no events is
// indistinguishable from an unknown one and yields ErrPartnerNotFound.
func (s *PartnerService) GetProfile(ctx context.Context, partnerID int, now time.Time) (*PartnerProfile, error) {
	if partnerID <= 0 {
		return nil, models.ErrInvalidID
	}

	events, err := s.lister.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load partner %d: %w", partnerID, err)
	}

	return DeriveProfile(events, partnerID, now)
}

// DeriveProfile builds the profile of partnerID from an event list.
// Current events are approved ones starting at or after now; past events
// are approved ones that already started.
func DeriveProfile(events []*models.Event, partnerID int, now time.Time) (*PartnerProfile, error) {
	var owned []*models.Event
	for _, event := range events {
		if event != nil && event.PartnerID() == partnerID {
			owned = append(owned, event)
		}
	}
	if len(owned) == 0 {
		return nil, models.ErrPartnerNotFound
	}

	profile := &PartnerProfile{
		Partner:       *owned[0].Partner,
		CurrentEvents: []*models.Event{},
		PastEvents:    []*models.Event{},
		Reviews:       []models.Review{},
	}
	profile.Partner.TotalEvents = len(owned)
	profile.Partner.TotalAttendees = 0

	for _, event := range owned {
		profile.Partner.TotalAttendees += event.Attendees()

		if !event.IsApproved() || event.StartDate == nil {
			continue
		}
		if event.StartDate.Before(now) {
			profile.PastEvents = append(profile.PastEvents, event)
		} else {
			profile.CurrentEvents = append(profile.CurrentEvents, event)
		}
	}

	profile.AverageRating = models.AverageRating(profile.Reviews)
	return profile, nil
}
