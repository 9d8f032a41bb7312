package experienceRepo

import (
	"fmt"
	"sync"

	"marhaba/models"
)

// MemoryExperienceRepo keeps the experience collection in process memory,
// preserving insertion order. Reads hand out snapshot copies, never live views.
type MemoryExperienceRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Experience
}

// NewMemoryExperienceRepo returns an empty in-memory experience repository.
func NewMemoryExperienceRepo() *MemoryExperienceRepo {
	return &MemoryExperienceRepo{
		byID: make(map[string]models.Experience),
	}
}

// Create appends a new experience record.
func (r *MemoryExperienceRepo) Create(exp *models.Experience) error {
	if exp == nil {
		return fmt.Errorf("experience is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[exp.ID]; !exists {
		r.order = append(r.order, exp.ID)
	}
	r.byID[exp.ID] = *exp
	return nil
}

// GetByID retrieves an experience by ID, or (nil, nil) when absent.
func (r *MemoryExperienceRepo) GetByID(id string) (*models.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exp, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &exp, nil
}

// GetAll retrieves every experience in insertion order.
func (r *MemoryExperienceRepo) GetAll() ([]models.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Experience, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// GetByProvider retrieves all experiences owned by a provider, in insertion order.
func (r *MemoryExperienceRepo) GetByProvider(providerID string) ([]models.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Experience
	for _, id := range r.order {
		if exp := r.byID[id]; exp.ProviderID == providerID {
			out = append(out, exp)
		}
	}
	return out, nil
}

// Update replaces the stored record matching exp.ID; no-op when absent.
func (r *MemoryExperienceRepo) Update(exp models.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[exp.ID]; !ok {
		return nil
	}
	r.byID[exp.ID] = exp
	return nil
}

// Delete removes the record with the given ID; no-op when absent.
func (r *MemoryExperienceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
