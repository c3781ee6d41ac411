package models

import (
	"errors"
	"time"
)

// ReviewAuthor is the reviewer as embedded in a review
type ReviewAuthor struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ReviewEvent is the reviewed event as embedded in a review
type ReviewEvent struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Review is a rating left on a partner's event. No public endpoint serves
// reviews yet, so profiles always carry an empty list.
type Review struct {
	ID        int           `json:"id"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	User      *ReviewAuthor `json:"user,omitempty"`
	Event     *ReviewEvent  `json:"event,omitempty"`
}

// Validate validates the review data
func (r *Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if len(r.Comment) > 2000 {
		return errors.New("comment must be less than 2000 characters")
	}
	return nil
}

// AverageRating returns the mean rating of reviews, or 0 for none
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews))
}
