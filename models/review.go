// File: models/review.go
package models

import "time"

// Review is a tourist's feedback on an experience. Reviews are append-only:
// once created they are never edited or removed.
type Review struct {
	ID           string    `json:"id"`
	ExperienceID string    `json:"experienceId"`
	TouristID    string    `json:"touristId"`
	TouristName  string    `json:"touristName"` // denormalized for display
	Rating       int       `json:"rating"`      // expected 1..5
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}

// ReviewDraft holds the caller-supplied fields for a new review; the catalog
// assigns ID and Date.
type ReviewDraft struct {
	ExperienceID string `json:"experienceId" validate:"required"`
	TouristID    string `json:"touristId" validate:"required"`
	TouristName  string `json:"touristName" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
}
