package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_UnmarshalJSON_StartDate(t *testing.T) {
	DefaultLocation = time.UTC
	defer func() { DefaultLocation = time.Local }()

	tests := []struct {
		name     string
		payload  string
		expected *time.Time
	}{
		{
			name:     "RFC3339 with zone",
			payload:  `{"id":1,"start_date":"2025-11-08T18:00:00+03:00"}`,
			expected: timePtr(time.Date(2025, 11, 8, 15, 0, 0, 0, time.UTC)),
		},
		{
			name:     "ISO without zone",
			payload:  `{"id":1,"start_date":"2025-11-08T18:00:00"}`,
			expected: timePtr(time.Date(2025, 11, 8, 18, 0, 0, 0, time.UTC)),
		},
		{
			name:     "date only",
			payload:  `{"id":1,"start_date":"2025-11-08"}`,
			expected: timePtr(time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "missing start date",
			payload:  `{"id":1}`,
			expected: nil,
		},
		{
			name:     "null start date",
			payload:  `{"id":1,"start_date":null}`,
			expected: nil,
		},
		{
			name:     "unparsable start date",
			payload:  `{"id":1,"start_date":"next saturday"}`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var event Event
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &event))
			assert.Equal(t, 1, event.ID)

			if tt.expected == nil {
				assert.Nil(t, event.StartDate)
				return
			}
			require.NotNil(t, event.StartDate)
			assert.True(t, tt.expected.Equal(*event.StartDate), "got %s", event.StartDate)
		})
	}
}

func TestEvent_UnmarshalJSON_Nested(t *testing.T) {
	payload := `{
		"id": 7,
		"title": "Sunset Jazz",
		"is_free": false,
		"status": "approved",
		"category": {"id": 2, "name": "Music"},
		"partner": {"id": 3, "business_name": "Nairobi Live", "is_verified": true},
		"ticket_types": [{"id": 1, "name": "VIP", "price": 2500}, {"id": 2, "name": "Regular", "price": "1000.50"}]
	}`

	var event Event
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, "Sunset Jazz", event.Title)
	assert.Equal(t, "Music", event.CategoryName())
	assert.Equal(t, 3, event.PartnerID())
	assert.True(t, event.IsApproved())

	price, ok := event.MinTicketPrice()
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1000.50").Equal(price))
}

func TestEvent_Helpers(t *testing.T) {
	five := 5

	tests := []struct {
		name      string
		event     Event
		category  string
		venue     string
		attendees int
	}{
		{
			name:      "empty event",
			event:     Event{},
			category:  "Other",
			venue:     "TBA",
			attendees: 0,
		},
		{
			name:      "online event",
			event:     Event{IsOnline: true, VenueName: "Hall", Category: &Category{Name: "Technology"}},
			category:  "Technology",
			venue:     "Online Event",
			attendees: 0,
		},
		{
			name:      "venue address fallback",
			event:     Event{VenueAddress: "Kenyatta Ave", AttendeeCount: &five},
			category:  "Other",
			venue:     "Kenyatta Ave",
			attendees: 5,
		},
		{
			name:      "bookings preferred over attendee count",
			event:     Event{Location: &Location{Name: "Westlands"}, BookingsCount: 12, AttendeeCount: &five},
			category:  "Other",
			venue:     "Westlands",
			attendees: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.event.CategoryName())
			assert.Equal(t, tt.venue, tt.event.VenueLabel())
			assert.Equal(t, tt.attendees, tt.event.Attendees())
		})
	}
}

func TestEvent_MinTicketPrice_NoTickets(t *testing.T) {
	event := Event{}
	_, ok := event.MinTicketPrice()
	assert.False(t, ok)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestSetDefaultLocation(t *testing.T) {
	previous := DefaultLocation
	t.Cleanup(func() { DefaultLocation = previous })

	eat := time.FixedZone("EAT", 3*3600)
	SetDefaultLocation(eat)
	SetDefaultLocation(nil)
	assert.Equal(t, eat, DefaultLocation)

	parsed, ok := ParseAPITime("2025-11-07 18:00:00")
	require.True(t, ok)
	assert.Equal(t, 15, parsed.UTC().Hour())
}
