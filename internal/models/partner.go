package models

// Partner is an event-organizing business. The public profile is derived
// from the partner record embedded in that partner's events.
type Partner struct {
	ID             int       `json:"id"`
	BusinessName   string    `json:"business_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Location       string    `json:"location,omitempty"`
	Website        string    `json:"website,omitempty"`
	Description    string    `json:"description,omitempty"`
	Logo           string    `json:"logo,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	Category       *Category `json:"category,omitempty"`
	ContactPerson  string    `json:"contact_person,omitempty"`
	FollowersCount int       `json:"followers_count"`
	Status         string    `json:"status,omitempty"`

	// Aggregates folded over the partner's events
	TotalEvents    int `json:"total_events"`
	TotalAttendees int `json:"total_attendees"`
}
