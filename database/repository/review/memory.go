package reviewRepo

import (
	"fmt"
	"sync"

	"marhaba/models"
)

// MemoryReviewRepo keeps the review collection in process memory in insertion
// order. Reads hand out snapshot copies.
type MemoryReviewRepo struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// NewMemoryReviewRepo returns an empty in-memory review repository.
func NewMemoryReviewRepo() *MemoryReviewRepo {
	return &MemoryReviewRepo{}
}

// Create appends a new review record.
func (r *MemoryReviewRepo) Create(rv *models.Review) error {
	if rv == nil {
		return fmt.Errorf("review is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, *rv)
	return nil
}

// GetAll retrieves every review in insertion order.
func (r *MemoryReviewRepo) GetAll() ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

// GetByExperience retrieves all reviews for an experience, in insertion order.
func (r *MemoryReviewRepo) GetByExperience(experienceID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ExperienceID == experienceID {
			out = append(out, rv)
		}
	}
	return out, nil
}
