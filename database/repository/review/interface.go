package reviewRepo

import "marhaba/models"

// ReviewRepository defines data access for the review collection. Reviews are
// append-only: there is no update or delete.
type ReviewRepository interface {
	// Create appends a new review record.
	Create(rv *models.Review) error
	// GetAll retrieves every review in insertion order.
	GetAll() ([]models.Review, error)
	// GetByExperience retrieves all reviews for an experience, in insertion order.
	GetByExperience(experienceID string) ([]models.Review, error)
}
