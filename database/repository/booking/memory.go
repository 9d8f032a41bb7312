package bookingRepo

import (
	"fmt"
	"sync"

	"marhaba/models"
)

// MemoryBookingRepo keeps the booking collection in process memory in
// insertion order. Reads hand out snapshot copies.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingRepo returns an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

// Create appends a new booking record.
func (r *MemoryBookingRepo) Create(b *models.Booking) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, *b)
	return nil
}

// GetAll retrieves every booking in insertion order.
func (r *MemoryBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

// GetByTourist retrieves all bookings made by a tourist, in insertion order.
func (r *MemoryBookingRepo) GetByTourist(touristID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TouristID == touristID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetByExperience retrieves all bookings against an experience, in insertion order.
func (r *MemoryBookingRepo) GetByExperience(experienceID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ExperienceID == experienceID {
			out = append(out, b)
		}
	}
	return out, nil
}
