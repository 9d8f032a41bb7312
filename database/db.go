package database

import (
	"fmt"

	bookingRepo "marhaba/database/repository/booking"
	experienceRepo "marhaba/database/repository/experience"
	reviewRepo "marhaba/database/repository/review"
)

// Collections bundles the in-memory repositories backing the catalog. They are
// the single source of truth for experiences, bookings and reviews.
type Collections struct {
	Experiences *experienceRepo.MemoryExperienceRepo
	Bookings    *bookingRepo.MemoryBookingRepo
	Reviews     *reviewRepo.MemoryReviewRepo
}

// InitDB constructs fresh in-memory collections preloaded with the seed
// dataset. Each call returns independent collections, so every test or
// application instance starts from the same known state.
func InitDB() (*Collections, error) {
	c := &Collections{
		Experiences: experienceRepo.NewMemoryExperienceRepo(),
		Bookings:    bookingRepo.NewMemoryBookingRepo(),
		Reviews:     reviewRepo.NewMemoryReviewRepo(),
	}

	for _, exp := range SeedExperiences() {
		if err := c.Experiences.Create(&exp); err != nil {
			return nil, fmt.Errorf("failed to seed experience %s: %w", exp.ID, err)
		}
	}
	for _, b := range SeedBookings() {
		if err := c.Bookings.Create(&b); err != nil {
			return nil, fmt.Errorf("failed to seed booking %s: %w", b.ID, err)
		}
	}
	for _, rv := range SeedReviews() {
		if err := c.Reviews.Create(&rv); err != nil {
			return nil, fmt.Errorf("failed to seed review %s: %w", rv.ID, err)
		}
	}

	return c, nil
}
