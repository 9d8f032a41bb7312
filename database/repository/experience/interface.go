package experienceRepo

import "marhaba/models"

// ExperienceRepository defines data access for the experience collection.
// Lookups for a missing id return (nil, nil); mutations against a missing id
// are silent no-ops, matching the catalog contract.
type ExperienceRepository interface {
	// Create appends a new experience record.
	Create(exp *models.Experience) error
	// GetByID retrieves an experience by its unique ID.
	GetByID(id string) (*models.Experience, error)
	// GetAll retrieves every experience in insertion order.
	GetAll() ([]models.Experience, error)
	// GetByProvider retrieves all experiences owned by a provider, in insertion order.
	GetByProvider(providerID string) ([]models.Experience, error)
	// Update replaces the stored record matching exp.ID.
	Update(exp models.Experience) error
	// Delete removes the record with the given ID, preserving the order of the rest.
	Delete(id string) error
}
