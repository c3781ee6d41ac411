package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a ticket booking as listed on the user dashboard
type Booking struct {
	ID            int             `json:"id"`
	BookingNumber string          `json:"booking_number"`
	Event         *Event          `json:"event,omitempty"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

// BookedAt returns the parsed booking time. ok is false when the API sent
// nothing parsable.
func (b *Booking) BookedAt() (time.Time, bool) {
	return ParseAPITime(b.CreatedAt)
}
