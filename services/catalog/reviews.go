package catalog

import (
	"fmt"
	"time"

	"marhaba/models"
	"marhaba/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddReview appends a review to the canonical collection and then refreshes
// the parent experience's denormalized state: its review list becomes the full
// set of reviews for that experience and its average rating the exact
// arithmetic mean of their ratings. The commit goes through the regular
// partial-update path, so an unknown experience id degrades to a no-op there.
func (s *DefaultCatalogService) AddReview(draft models.ReviewDraft) (*models.Review, error) {
	review := models.Review{
		ID:           uuid.New().String(),
		ExperienceID: draft.ExperienceID,
		TouristID:    draft.TouristID,
		TouristName:  draft.TouristName,
		Rating:       draft.Rating,
		Comment:      draft.Comment,
		Date:         time.Now(),
	}
	if err := s.ReviewRepo.Create(&review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	reviews, err := s.ReviewRepo.GetByExperience(draft.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to gather reviews for experience %s: %w", draft.ExperienceID, err)
	}

	average := meanRating(reviews)
	if _, err := s.UpdateExperience(draft.ExperienceID, models.ExperienceUpdate{
		Reviews:       reviews,
		AverageRating: &average,
	}); err != nil {
		return nil, fmt.Errorf("failed to refresh experience %s after review: %w", draft.ExperienceID, err)
	}

	utils.GetLogger().Info("review recorded",
		zap.String("experienceId", draft.ExperienceID),
		zap.Int("rating", draft.Rating),
		zap.Float64("averageRating", average))
	return &review, nil
}

// meanRating computes the exact unweighted mean over the full review set, not
// a running approximation. Callers must not pass an empty slice.
func meanRating(reviews []models.Review) float64 {
	sum := 0.0
	for _, rv := range reviews {
		sum += float64(rv.Rating)
	}
	return sum / float64(len(reviews))
}
