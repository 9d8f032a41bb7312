package catalog

import (
	"marhaba/models"
)

// PendingExperiences returns experiences awaiting moderation, in insertion order.
func (s *DefaultCatalogService) PendingExperiences() ([]models.Experience, error) {
	return s.experiencesByApproval(false)
}

// ApprovedExperiences returns experiences visible to tourists, in insertion order.
func (s *DefaultCatalogService) ApprovedExperiences() ([]models.Experience, error) {
	return s.experiencesByApproval(true)
}

func (s *DefaultCatalogService) experiencesByApproval(approved bool) ([]models.Experience, error) {
	all, err := s.ExperienceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	var out []models.Experience
	for _, exp := range all {
		if exp.Approved == approved {
			out = append(out, exp)
		}
	}
	return out, nil
}

// ApproveExperience opens the moderation gate on an experience. Flipping the
// flag is the only moderation signal in the system; there is no notification
// or audit trail. Unknown ids are a silent no-op.
func (s *DefaultCatalogService) ApproveExperience(id string) error {
	approved := true
	_, err := s.UpdateExperience(id, models.ExperienceUpdate{Approved: &approved})
	return err
}

// RejectExperience closes the moderation gate on an experience. Unknown ids
// are a silent no-op.
func (s *DefaultCatalogService) RejectExperience(id string) error {
	approved := false
	_, err := s.UpdateExperience(id, models.ExperienceUpdate{Approved: &approved})
	return err
}
