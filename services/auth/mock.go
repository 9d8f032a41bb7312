package auth

import (
	"time"

	"marhaba/models"
)

// Canned demonstration accounts. Login materializes one of these instead of
// verifying credentials; registration copies their defaults for fields the
// caller does not supply.

func demoTourist() *models.Tourist {
	return &models.Tourist{
		User: models.User{
			ID:         "1",
			Name:       "John Doe",
			Email:      "john@example.com",
			Role:       models.RoleTourist,
			Avatar:     "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
			Language:   "en",
			JoinedDate: time.Now(),
		},
		MarhabaPassID: "MP123456",
		Bookings:      []models.Booking{},
		Favorites:     []string{},
	}
}

func demoProvider() *models.ServiceProvider {
	return &models.ServiceProvider{
		User: models.User{
			ID:         "2",
			Name:       "Mohammed El Fassi",
			Email:      "mohammed@example.com",
			Role:       models.RoleProvider,
			Avatar:     "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg",
			JoinedDate: time.Now(),
		},
		Bio:         "I am a professional chef specializing in traditional Moroccan cuisine.",
		Languages:   []string{"Arabic", "French", "English"},
		Location:    "Marrakech",
		Verified:    true,
		Experiences: []models.Experience{},
	}
}
