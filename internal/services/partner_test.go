package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"nikofree-web/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	events []*models.Event
	err    error
	calls  int
}

func (s *stubLister) ListEvents(ctx context.Context) ([]*models.Event, error) {
	s.calls++
	return s.events, s.err
}

func TestDeriveProfile(t *testing.T) {
	now := time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC)
	partner := &models.Partner{ID: 3, BusinessName: "Nairobi Live", FollowersCount: 10}
	other := &models.Partner{ID: 4, BusinessName: "Elsewhere"}
	twelve := 12

	upcoming := &models.Event{ID: 1, Partner: partner, Status: models.StatusApproved, StartDate: at(now.Add(time.Hour)), BookingsCount: 30}
	startsNow := &models.Event{ID: 2, Partner: partner, Status: models.StatusApproved, StartDate: at(now)}
	finished := &models.Event{ID: 3, Partner: partner, Status: models.StatusApproved, StartDate: at(now.Add(-time.Hour)), AttendeeCount: &twelve}
	pending := &models.Event{ID: 4, Partner: partner, Status: models.StatusPending, StartDate: at(now.Add(time.Hour)), BookingsCount: 5}
	undated := &models.Event{ID: 5, Partner: partner, Status: models.StatusApproved}
	foreign := &models.Event{ID: 6, Partner: other, Status: models.StatusApproved, StartDate: at(now.Add(time.Hour)), BookingsCount: 99}
	orphan := &models.Event{ID: 7, Status: models.StatusApproved}

	profile, err := DeriveProfile([]*models.Event{upcoming, foreign, startsNow, finished, pending, undated, orphan, nil}, 3, now)
	require.NoError(t, err)

	assert.Equal(t, "Nairobi Live", profile.Partner.BusinessName)
	assert.Equal(t, 5, profile.Partner.TotalEvents)
	assert.Equal(t, 47, profile.Partner.TotalAttendees)
	assert.Equal(t, []*models.Event{upcoming, startsNow}, profile.CurrentEvents)
	assert.Equal(t, []*models.Event{finished}, profile.PastEvents)
	assert.Empty(t, profile.Reviews)
	assert.Equal(t, 0.0, profile.AverageRating)

	assert.Equal(t, 0, partner.TotalEvents, "the shared partner record is not modified")
}

func TestDeriveProfile_NotFound(t *testing.T) {
	events := []*models.Event{{ID: 1, Partner: &models.Partner{ID: 4}}}

	_, err := DeriveProfile(events, 3, time.Now())
	assert.ErrorIs(t, err, models.ErrPartnerNotFound)
	assert.Equal(t, "partner not found or has no events", err.Error())
}

func TestPartnerService_GetProfile(t *testing.T) {
	lister := &stubLister{events: []*models.Event{{ID: 1, Partner: &models.Partner{ID: 3}}}}
	svc := NewPartnerService(lister)

	profile, err := svc.GetProfile(context.Background(), 3, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, profile.Partner.ID)
	assert.Equal(t, 1, lister.calls, "the event list is fetched once")

	_, err = svc.GetProfile(context.Background(), 0, time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidID)
	assert.Equal(t, 1, lister.calls, "invalid ids never reach the network")
}

func TestPartnerService_GetProfile_UpstreamError(t *testing.T) {
	upstream := errors.New("connection refused")
	svc := NewPartnerService(&stubLister{err: upstream})

	_, err := svc.GetProfile(context.Background(), 3, time.Now())
	assert.ErrorIs(t, err, upstream)
}
