package services

import (
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// EventCard is an event prepared for a listing tile
type EventCard struct {
	ID        int
	Title     string
	Image     string
	Date      string // Thu, Nov 6
	Day       string // Thursday
	Time      string // 6:00 PM
	Location  string
	Attendees int
	Category  string
	Price     string
	PartnerID int
	IsFree    bool
}

// CardBuilder turns events into cards in a display timezone
type CardBuilder struct {
	images *apiclient.ImageResolver
	loc    *time.Location
}

// NewCardBuilder creates a card builder
func NewCardBuilder(images *apiclient.ImageResolver, loc *time.Location) *CardBuilder {
	if loc == nil {
		loc = time.Local
	}
	return &CardBuilder{images: images, loc: loc}
}

// Location returns the display timezone
func (b *CardBuilder) Location() *time.Location {
	return b.loc
}

// ImageURL resolves an API image path
func (b *CardBuilder) ImageURL(path string) string {
	return b.images.URL(path)
}

// Card builds the card for one event
func (b *CardBuilder) Card(event *models.Event) EventCard {
	card := EventCard{
		ID:        event.ID,
		Title:     event.Title,
		Image:     b.images.URL(event.PosterImage),
		Location:  event.VenueLabel(),
		Attendees: event.Attendees(),
		Category:  event.CategoryName(),
		Price:     PriceLabel(event),
		PartnerID: event.PartnerID(),
		IsFree:    event.IsFree,
		Date:      "Date TBA",
	}

	if event.StartDate != nil {
		start := event.StartDate.In(b.loc)
		card.Date = start.Format("Mon, Jan 2")
		card.Day = start.Weekday().String()
		card.Time = start.Format("3:04 PM")
	}
	return card
}

// Cards builds cards for events, keeping order
func (b *CardBuilder) Cards(events []*models.Event) []EventCard {
	cards := make([]EventCard, 0, len(events))
	for _, event := range events {
		if event == nil {
			continue
		}
		cards = append(cards, b.Card(event))
	}
	return cards
}

// PriceLabel is "Free" for free events, "KES <lowest price>" when the
// cheapest ticket costs something and "Paid" otherwise.
func PriceLabel(event *models.Event) string {
	if event.IsFree {
		return "Free"
	}

	lowest, ok := event.MinTicketPrice()
	if !ok || !lowest.IsPositive() {
		return "Paid"
	}
	return FormatKES(lowest)
}

// FormatKES formats an amount as whole shillings with thousands separators
func FormatKES(amount decimal.Decimal) string {
	return "KES " + humanize.Comma(amount.Round(0).IntPart())
}

// FormatCount formats a count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
