package services

import (
	"testing"
	"time"

	"nikofree-web/internal/apiclient"
	"nikofree-web/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCards() *CardBuilder {
	return NewCardBuilder(apiclient.NewImageResolver("https://api.nikofree.com"), time.UTC)
}

func tickets(prices ...string) []models.TicketType {
	out := make([]models.TicketType, 0, len(prices))
	for i, p := range prices {
		out = append(out, models.TicketType{ID: i + 1, Price: decimal.RequireFromString(p)})
	}
	return out
}

func TestPriceLabel(t *testing.T) {
	tests := []struct {
		name  string
		event models.Event
		want  string
	}{
		{"free flag wins", models.Event{IsFree: true, TicketTypes: tickets("500")}, "Free"},
		{"no ticket types", models.Event{}, "Paid"},
		{"lowest price", models.Event{TicketTypes: tickets("4000", "1500")}, "KES 1,500"},
		{"thousands", models.Event{TicketTypes: tickets("12500")}, "KES 12,500"},
		{"rounded", models.Event{TicketTypes: tickets("999.5")}, "KES 1,000"},
		{"zero lowest", models.Event{TicketTypes: tickets("0", "1000")}, "Paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceLabel(&tt.event))
		})
	}
}

func TestCardBuilder_Card(t *testing.T) {
	start := time.Date(2025, 11, 6, 18, 0, 0, 0, time.UTC)
	event := &models.Event{
		ID:            7,
		Title:         "Sunset Jazz",
		PosterImage:   "/uploads/uploads/jazz.jpg",
		StartDate:     &start,
		VenueName:     "Arboretum",
		Category:      &models.Category{Name: "Music"},
		TicketTypes:   tickets("1500"),
		Partner:       &models.Partner{ID: 3},
		BookingsCount: 1200,
	}

	card := testCards().Card(event)

	assert.Equal(t, EventCard{
		ID:        7,
		Title:     "Sunset Jazz",
		Image:     "https://api.nikofree.com/uploads/jazz.jpg",
		Date:      "Thu, Nov 6",
		Day:       "Thursday",
		Time:      "6:00 PM",
		Location:  "Arboretum",
		Attendees: 1200,
		Category:  "Music",
		Price:     "KES 1,500",
		PartnerID: 3,
	}, card)
}

func TestCardBuilder_Defaults(t *testing.T) {
	card := testCards().Card(&models.Event{ID: 1, Title: "TBD"})

	assert.Equal(t, apiclient.PlaceholderImage, card.Image)
	assert.Equal(t, "Date TBA", card.Date)
	assert.Empty(t, card.Day)
	assert.Equal(t, "TBA", card.Location)
	assert.Equal(t, "Other", card.Category)
	assert.Equal(t, "Paid", card.Price)
}

func TestCardBuilder_DisplayTimezone(t *testing.T) {
	start := time.Date(2025, 11, 7, 22, 30, 0, 0, time.UTC)
	cards := NewCardBuilder(apiclient.NewImageResolver(""), time.FixedZone("EAT", 3*60*60))

	card := cards.Card(&models.Event{StartDate: &start})

	assert.Equal(t, "Saturday", card.Day)
	assert.Equal(t, "1:30 AM", card.Time)
}

func TestCardBuilder_CardsSkipsNil(t *testing.T) {
	cards := testCards().Cards([]*models.Event{{ID: 1}, nil, {ID: 2}})
	assert.Len(t, cards, 2)
	assert.NotNil(t, testCards().Cards(nil))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "KES 1,250,400", FormatCurrency(1250400))
	assert.Equal(t, "KES 0", FormatCurrency(0))
	assert.Equal(t, "5,020", FormatCount(5020))
}
