package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus represents the moderation status of an event
type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"
	StatusRejected EventStatus = "rejected"
)

// apiTimeLayouts are the start/end date formats the API has been seen to emit.
// Layouts without a zone are read in DefaultLocation.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DefaultLocation is used for API timestamps that carry no zone
var DefaultLocation = time.Local

// SetDefaultLocation changes the zone API timestamps without one are read in.
// A nil loc is ignored.
func SetDefaultLocation(loc *time.Location) {
	if loc != nil {
		DefaultLocation = loc
	}
}

// ParseAPITime parses an API timestamp. ok is false for empty or unrecognised values.
func ParseAPITime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range apiTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, DefaultLocation); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Category is an event category
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location is a named place events are grouped under
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TicketType is a purchasable ticket tier of an event
type TicketType struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available"`
}

// Event is an event record as served by the API. It is read-only here.
type Event struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	PosterImage   string       `json:"poster_image"`
	StartDate     *time.Time   `json:"-"`
	EndDate       *time.Time   `json:"-"`
	VenueName     string       `json:"venue_name"`
	VenueAddress  string       `json:"venue_address"`
	Location      *Location    `json:"location"`
	IsOnline      bool         `json:"is_online"`
	IsFree        bool         `json:"is_free"`
	Category      *Category    `json:"category"`
	TicketTypes   []TicketType `json:"ticket_types"`
	Partner       *Partner     `json:"partner"`
	Status        EventStatus  `json:"status"`
	BookingsCount int          `json:"bookings_count"`
	AttendeeCount *int         `json:"attendee_count"`
	InBucketlist  bool         `json:"in_bucketlist"`
}

// UnmarshalJSON decodes an event, leaving StartDate/EndDate nil when the
// API sends nothing parsable.
func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	aux := struct {
		*alias
		StartDate *string `json:"start_date"`
		EndDate   *string `json:"end_date"`
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.StartDate = parseOptionalTime(aux.StartDate)
	e.EndDate = parseOptionalTime(aux.EndDate)
	return nil
}

func parseOptionalTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := ParseAPITime(*value)
	if !ok {
		return nil
	}
	return &t
}

// CategoryName returns the event's category name, or "Other"
func (e *Event) CategoryName() string {
	if e.Category == nil || strings.TrimSpace(e.Category.Name) == "" {
		return "Other"
	}
	return e.Category.Name
}

// PartnerID returns the id of the organizing partner, or 0
func (e *Event) PartnerID() int {
	if e.Partner == nil {
		return 0
	}
	return e.Partner.ID
}

// Attendees returns the best attendee figure the API provided
func (e *Event) Attendees() int {
	if e.BookingsCount > 0 {
		return e.BookingsCount
	}
	if e.AttendeeCount != nil {
		return *e.AttendeeCount
	}
	return 0
}

// MinTicketPrice returns the lowest ticket price. ok is false without ticket types.
func (e *Event) MinTicketPrice() (decimal.Decimal, bool) {
	if len(e.TicketTypes) == 0 {
		return decimal.Zero, false
	}

	lowest := e.TicketTypes[0].Price
	for _, tt := range e.TicketTypes[1:] {
		if tt.Price.LessThan(lowest) {
			lowest = tt.Price
		}
	}
	return lowest, true
}

// VenueLabel returns where the event happens, for display
func (e *Event) VenueLabel() string {
	if e.IsOnline {
		return "Online Event"
	}
	if e.VenueName != "" {
		return e.VenueName
	}
	if e.VenueAddress != "" {
		return e.VenueAddress
	}
	if e.Location != nil && e.Location.Name != "" {
		return e.Location.Name
	}
	return "TBA"
}

// IsApproved reports whether the event passed moderation
func (e *Event) IsApproved() bool {
	return e.Status == StatusApproved
}
