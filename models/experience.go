// File: models/experience.go
package models

import "time"

// ExperienceType tags the three bookable offering kinds.
type ExperienceType string

const (
	TypeWorkshop ExperienceType = "workshop"
	TypeTour     ExperienceType = "tour"
	TypeHomestay ExperienceType = "homestay"
)

// Experience represents a bookable cultural offering published by a provider.
// Reviews and AverageRating are denormalized from the canonical review
// collection; AverageRating is nil until the first review lands and thereafter
// holds the exact arithmetic mean of all ratings.
type Experience struct {
	ID             string         `json:"id"`
	Type           ExperienceType `json:"type"` // immutable after creation
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	ProviderID     string         `json:"providerId"`
	ProviderName   string         `json:"providerName"` // denormalized for display
	Location       string         `json:"location"`
	Images         []string       `json:"images"`
	Languages      []string       `json:"languages"`
	Duration       float64        `json:"duration"` // hours
	Price          float64        `json:"price"`    // per person
	Capacity       int            `json:"capacity"` // max people per booking
	AvailableDates []time.Time    `json:"availableDates"`
	CreatedAt      time.Time      `json:"createdAt"`
	AverageRating  *float64       `json:"averageRating,omitempty"`
	Reviews        []Review       `json:"reviews"`
	Approved       bool           `json:"approved"`
}

// ExperienceDraft holds the provider-supplied fields for a new experience.
// ID, timestamps, reviews and the moderation flag are assigned by the catalog.
type ExperienceDraft struct {
	Type           ExperienceType `json:"type" validate:"required,oneof=workshop tour homestay"`
	Title          string         `json:"title" validate:"required"`
	Description    string         `json:"description" validate:"required,min=50"`
	ProviderID     string         `json:"providerId" validate:"required"`
	ProviderName   string         `json:"providerName" validate:"required"`
	Location       string         `json:"location" validate:"required"`
	Images         []string       `json:"images" validate:"min=1"`
	Languages      []string       `json:"languages" validate:"min=1"`
	Duration       float64        `json:"duration" validate:"gt=0"`
	Price          float64        `json:"price" validate:"gt=0"`
	Capacity       int            `json:"capacity" validate:"gt=0"`
	AvailableDates []time.Time    `json:"availableDates" validate:"min=1"`
}

// ExperienceUpdate carries a partial update; nil fields are left untouched.
// Type and CreatedAt are deliberately absent, both are immutable.
type ExperienceUpdate struct {
	Title          *string     `json:"title,omitempty"`
	Description    *string     `json:"description,omitempty"`
	ProviderName   *string     `json:"providerName,omitempty"`
	Location       *string     `json:"location,omitempty"`
	Images         []string    `json:"images,omitempty"`
	Languages      []string    `json:"languages,omitempty"`
	Duration       *float64    `json:"duration,omitempty"`
	Price          *float64    `json:"price,omitempty"`
	Capacity       *int        `json:"capacity,omitempty"`
	AvailableDates []time.Time `json:"availableDates,omitempty"`
	Approved       *bool       `json:"approved,omitempty"`
	AverageRating  *float64    `json:"averageRating,omitempty"`
	Reviews        []Review    `json:"reviews,omitempty"`
}
