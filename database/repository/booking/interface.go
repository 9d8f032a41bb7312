package bookingRepo

import "marhaba/models"

// BookingRepository defines data access for the booking collection. Bookings
// are append-only at this layer; status changes belong to a downstream system.
type BookingRepository interface {
	// Create appends a new booking record.
	Create(b *models.Booking) error
	// GetAll retrieves every booking in insertion order.
	GetAll() ([]models.Booking, error)
	// GetByTourist retrieves all bookings made by a tourist, in insertion order.
	GetByTourist(touristID string) ([]models.Booking, error)
	// GetByExperience retrieves all bookings against an experience, in insertion order.
	GetByExperience(experienceID string) ([]models.Booking, error)
}
