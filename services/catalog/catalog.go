package catalog

import (
	"fmt"
	"time"

	"marhaba/models"
	"marhaba/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddExperience creates a new experience from the draft. New experiences
// always start unapproved with no reviews; moderation opens the gate later.
func (s *DefaultCatalogService) AddExperience(draft models.ExperienceDraft) (*models.Experience, error) {
	exp := models.Experience{
		ID:             uuid.New().String(),
		Type:           draft.Type,
		Title:          draft.Title,
		Description:    draft.Description,
		ProviderID:     draft.ProviderID,
		ProviderName:   draft.ProviderName,
		Location:       draft.Location,
		Images:         draft.Images,
		Languages:      draft.Languages,
		Duration:       draft.Duration,
		Price:          draft.Price,
		Capacity:       draft.Capacity,
		AvailableDates: draft.AvailableDates,
		CreatedAt:      time.Now(),
		Reviews:        []models.Review{},
		Approved:       false,
	}
	if err := s.ExperienceRepo.Create(&exp); err != nil {
		return nil, fmt.Errorf("failed to add experience: %w", err)
	}
	utils.GetLogger().Info("experience submitted for moderation",
		zap.String("id", exp.ID), zap.String("provider", exp.ProviderID))
	return &exp, nil
}

// UpdateExperience merges the non-nil fields of update into the experience
// with the given id. Unknown ids are a silent no-op and return (nil, nil).
func (s *DefaultCatalogService) UpdateExperience(id string, update models.ExperienceUpdate) (*models.Experience, error) {
	exp, err := s.ExperienceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience %s: %w", id, err)
	}
	if exp == nil {
		return nil, nil
	}

	if update.Title != nil {
		exp.Title = *update.Title
	}
	if update.Description != nil {
		exp.Description = *update.Description
	}
	if update.ProviderName != nil {
		exp.ProviderName = *update.ProviderName
	}
	if update.Location != nil {
		exp.Location = *update.Location
	}
	if update.Images != nil {
		exp.Images = update.Images
	}
	if update.Languages != nil {
		exp.Languages = update.Languages
	}
	if update.Duration != nil {
		exp.Duration = *update.Duration
	}
	if update.Price != nil {
		exp.Price = *update.Price
	}
	if update.Capacity != nil {
		exp.Capacity = *update.Capacity
	}
	if update.AvailableDates != nil {
		exp.AvailableDates = update.AvailableDates
	}
	if update.Approved != nil {
		exp.Approved = *update.Approved
	}
	if update.AverageRating != nil {
		exp.AverageRating = update.AverageRating
	}
	if update.Reviews != nil {
		exp.Reviews = update.Reviews
	}

	if err := s.ExperienceRepo.Update(*exp); err != nil {
		return nil, fmt.Errorf("failed to update experience %s: %w", id, err)
	}
	return exp, nil
}

// DeleteExperience removes the experience with the given id. Bookings and
// reviews referencing it are left dangling on purpose; that inconsistency is
// part of the contract, not a cleanup oversight.
func (s *DefaultCatalogService) DeleteExperience(id string) error {
	if err := s.ExperienceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete experience %s: %w", id, err)
	}
	return nil
}

// BookExperience creates a pending booking with the total price frozen at the
// experience's current per-person price. An unknown experience id performs no
// mutation and returns (nil, nil); callers check for absence themselves.
// The requested date and head count are not checked against the experience's
// available dates or capacity here; those are caller-side constraints.
func (s *DefaultCatalogService) BookExperience(experienceID, touristID string, date time.Time, numberOfPeople int) (*models.Booking, error) {
	exp, err := s.ExperienceRepo.GetByID(experienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience %s: %w", experienceID, err)
	}
	if exp == nil {
		utils.GetLogger().Debug("booking attempt against unknown experience",
			zap.String("experienceId", experienceID))
		return nil, nil
	}

	booking := models.Booking{
		ID:             uuid.New().String(),
		ExperienceID:   experienceID,
		TouristID:      touristID,
		Date:           date,
		Status:         models.BookingPending,
		NumberOfPeople: numberOfPeople,
		TotalPrice:     exp.Price * float64(numberOfPeople),
		CreatedAt:      time.Now(),
	}
	if err := s.BookingRepo.Create(&booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

// Experiences returns the full experience collection in insertion order.
func (s *DefaultCatalogService) Experiences() ([]models.Experience, error) {
	return s.ExperienceRepo.GetAll()
}

// ExperienceByID returns the matching experience, or (nil, nil) when absent.
func (s *DefaultCatalogService) ExperienceByID(id string) (*models.Experience, error) {
	return s.ExperienceRepo.GetByID(id)
}

// ExperiencesByProvider returns a provider's experiences in insertion order.
func (s *DefaultCatalogService) ExperiencesByProvider(providerID string) ([]models.Experience, error) {
	return s.ExperienceRepo.GetByProvider(providerID)
}

// BookingsByTourist returns a tourist's bookings in insertion order.
func (s *DefaultCatalogService) BookingsByTourist(touristID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByTourist(touristID)
}

// BookingsByExperience returns an experience's bookings in insertion order.
func (s *DefaultCatalogService) BookingsByExperience(experienceID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByExperience(experienceID)
}
