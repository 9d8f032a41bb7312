package catalog

import (
	"time"

	bookingRepo "marhaba/database/repository/booking"
	experienceRepo "marhaba/database/repository/experience"
	reviewRepo "marhaba/database/repository/review"
	"marhaba/models"
	"marhaba/utils"
)

// CatalogService is the single owner of the experience, booking and review
// collections. Every derived view elsewhere (a provider's experiences, a
// tourist's bookings, an experience's reviews) must be recomputed from here.
type CatalogService interface {
	// AddExperience creates an unapproved experience from a draft and returns it.
	AddExperience(draft models.ExperienceDraft) (*models.Experience, error)
	// UpdateExperience merges a partial update into the matching experience and
	// returns the result, or (nil, nil) when the id is unknown.
	UpdateExperience(id string, update models.ExperienceUpdate) (*models.Experience, error)
	// DeleteExperience removes an experience. Bookings and reviews that
	// reference it are left in place.
	DeleteExperience(id string) error
	// BookExperience creates a pending booking against an experience, or
	// returns (nil, nil) when the experience is unknown.
	BookExperience(experienceID, touristID string, date time.Time, numberOfPeople int) (*models.Booking, error)
	// AddReview records a review and refreshes the parent experience's
	// denormalized review list and average rating.
	AddReview(draft models.ReviewDraft) (*models.Review, error)

	// Experiences returns the full experience collection in insertion order.
	Experiences() ([]models.Experience, error)
	// ExperienceByID returns the matching experience, or (nil, nil) when absent.
	ExperienceByID(id string) (*models.Experience, error)
	// ExperiencesByProvider returns a provider's experiences in insertion order.
	ExperiencesByProvider(providerID string) ([]models.Experience, error)
	// BookingsByTourist returns a tourist's bookings in insertion order.
	BookingsByTourist(touristID string) ([]models.Booking, error)
	// BookingsByExperience returns an experience's bookings in insertion order.
	BookingsByExperience(experienceID string) ([]models.Booking, error)
	// FilterExperiences returns experiences satisfying every given predicate,
	// in insertion order.
	FilterExperiences(filter ExperienceFilter) ([]models.Experience, error)

	// PendingExperiences returns experiences awaiting moderation.
	PendingExperiences() ([]models.Experience, error)
	// ApprovedExperiences returns experiences visible to tourists.
	ApprovedExperiences() ([]models.Experience, error)
	// ApproveExperience flips the moderation gate open; no-op on unknown ids.
	ApproveExperience(id string) error
	// RejectExperience closes the moderation gate; no-op on unknown ids.
	RejectExperience(id string) error

	// Ready reports whether the seed dataset has finished loading.
	Ready() bool
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	ExperienceRepo experienceRepo.ExperienceRepository
	BookingRepo    bookingRepo.BookingRepository
	ReviewRepo     reviewRepo.ReviewRepository

	ready bool
}

// NewDefaultCatalogService wires a catalog service over the given
// repositories. Missing repositories are a wiring mistake, not a runtime
// condition, and abort immediately.
func NewDefaultCatalogService(
	experiences experienceRepo.ExperienceRepository,
	bookings bookingRepo.BookingRepository,
	reviews reviewRepo.ReviewRepository,
) *DefaultCatalogService {
	if experiences == nil || bookings == nil || reviews == nil {
		utils.GetLogger().Panic("catalog service constructed without its repositories")
	}
	return &DefaultCatalogService{
		ExperienceRepo: experiences,
		BookingRepo:    bookings,
		ReviewRepo:     reviews,
	}
}

// MarkReady records that seeding has completed.
func (s *DefaultCatalogService) MarkReady() {
	s.ready = true
}

// Ready reports whether the seed dataset has finished loading.
func (s *DefaultCatalogService) Ready() bool {
	return s.ready
}
