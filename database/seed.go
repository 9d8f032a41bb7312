package database

import (
	"time"

	"marhaba/models"
)

// Seed dataset consumed verbatim at startup. Shapes follow the catalog
// schemas exactly; the denormalized review lists start empty even where an
// average rating is already published.

func mustDate(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("invalid seed date: " + value)
	}
	return t
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("invalid seed date: " + value)
	}
	return t
}

func ratingOf(v float64) *float64 {
	return &v
}

// SeedExperiences returns the five seed offerings.
func SeedExperiences() []models.Experience {
	return []models.Experience{
		{
			ID:           "1",
			Type:         models.TypeWorkshop,
			Title:        "Traditional Moroccan Cooking Class",
			Description:  "Learn how to prepare authentic Moroccan tagine, couscous, and traditional pastries with a local chef in a traditional riad setting.",
			ProviderID:   "2",
			ProviderName: "Mohammed El Fassi",
			Location:     "Marrakech",
			Images: []string{
				"https://images.pexels.com/photos/7363671/pexels-photo-7363671.jpeg",
				"https://images.pexels.com/photos/6996168/pexels-photo-6996168.jpeg",
			},
			Languages: []string{"English", "French", "Arabic"},
			Duration:  4,
			Price:     350,
			Capacity:  8,
			AvailableDates: []time.Time{
				mustDate("2030-07-15T10:00:00Z"),
				mustDate("2030-07-16T10:00:00Z"),
				mustDate("2030-07-18T10:00:00Z"),
			},
			CreatedAt:     day("2023-01-15"),
			Reviews:       []models.Review{},
			Approved:      true,
			AverageRating: ratingOf(4.7),
		},
		{
			ID:           "2",
			Type:         models.TypeTour,
			Title:        "Medina Exploration Tour",
			Description:  "Discover the hidden gems of Fes Medina with a knowledgeable local guide. Visit traditional craftsmen, historical monuments, and vibrant markets.",
			ProviderID:   "3",
			ProviderName: "Fatima Zahra",
			Location:     "Fes",
			Images: []string{
				"https://images.pexels.com/photos/4388167/pexels-photo-4388167.jpeg",
			},
			Languages: []string{"English", "French", "Arabic", "Spanish"},
			Duration:  6,
			Price:     200,
			Capacity:  6,
			AvailableDates: []time.Time{
				mustDate("2030-07-10T09:00:00Z"),
				mustDate("2030-07-12T09:00:00Z"),
				mustDate("2030-07-14T09:00:00Z"),
			},
			CreatedAt:     day("2023-02-01"),
			Reviews:       []models.Review{},
			Approved:      true,
			AverageRating: ratingOf(4.9),
		},
		{
			ID:           "3",
			Type:         models.TypeHomestay,
			Title:        "Authentic Atlas Mountains Family Stay",
			Description:  "Experience real Berber hospitality with a family in a traditional village in the Atlas Mountains. Includes home-cooked meals and cultural activities.",
			ProviderID:   "4",
			ProviderName: "Hassan Imazighen",
			Location:     "Atlas Mountains",
			Images: []string{
				"images/atlas-homestay.jpg",
				"https://images.pexels.com/photos/13580548/pexels-photo-13580548.jpeg",
			},
			Languages: []string{"Berber", "Arabic", "English"},
			Duration:  48,
			Price:     800,
			Capacity:  4,
			AvailableDates: []time.Time{
				mustDate("2030-07-15T14:00:00Z"),
				mustDate("2030-07-20T14:00:00Z"),
				mustDate("2030-07-25T14:00:00Z"),
			},
			CreatedAt:     day("2023-03-10"),
			Reviews:       []models.Review{},
			Approved:      true,
			AverageRating: ratingOf(4.8),
		},
		{
			ID:           "4",
			Type:         models.TypeWorkshop,
			Title:        "Leather Crafting in Fes",
			Description:  "Learn the ancient art of leather crafting from master artisans in the famous tanneries of Fes.",
			ProviderID:   "5",
			ProviderName: "Karim Benjelloun",
			Location:     "Fes",
			Images: []string{
				"https://images.pexels.com/photos/4502419/pexels-photo-4502419.jpeg",
				"https://images.pexels.com/photos/6147369/pexels-photo-6147369.jpeg",
			},
			Languages: []string{"Arabic", "French", "English"},
			Duration:  3,
			Price:     300,
			Capacity:  5,
			AvailableDates: []time.Time{
				mustDate("2030-07-18T11:00:00Z"),
				mustDate("2030-07-19T11:00:00Z"),
				mustDate("2030-07-21T11:00:00Z"),
			},
			CreatedAt:     day("2023-01-20"),
			Reviews:       []models.Review{},
			Approved:      true,
			AverageRating: ratingOf(4.6),
		},
		{
			ID:           "5",
			Type:         models.TypeTour,
			Title:        "Chefchaouen Blue City Photo Tour",
			Description:  "Capture the most Instagram-worthy spots in the famous blue city with a professional photographer as your guide.",
			ProviderID:   "6",
			ProviderName: "Yasmine Alaoui",
			Location:     "Chefchaouen",
			Images: []string{
				"images/chefchaouen.jpg",
			},
			Languages: []string{"English", "French", "Spanish"},
			Duration:  4,
			Price:     250,
			Capacity:  6,
			AvailableDates: []time.Time{
				mustDate("2030-07-14T10:00:00Z"),
				mustDate("2030-07-15T10:00:00Z"),
				mustDate("2030-07-16T10:00:00Z"),
			},
			CreatedAt:     day("2023-02-15"),
			Reviews:       []models.Review{},
			Approved:      true,
			AverageRating: ratingOf(4.7),
		},
	}
}

// SeedBookings returns the two seed bookings.
func SeedBookings() []models.Booking {
	return []models.Booking{
		{
			ID:             "1",
			ExperienceID:   "1",
			TouristID:      "1",
			Date:           mustDate("2030-07-15T10:00:00Z"),
			Status:         models.BookingConfirmed,
			NumberOfPeople: 2,
			TotalPrice:     700,
			CreatedAt:      day("2023-05-10"),
		},
		{
			ID:             "2",
			ExperienceID:   "3",
			TouristID:      "1",
			Date:           mustDate("2030-07-20T14:00:00Z"),
			Status:         models.BookingPending,
			NumberOfPeople: 2,
			TotalPrice:     1600,
			CreatedAt:      day("2023-05-12"),
		},
	}
}

// SeedReviews returns the two seed reviews.
func SeedReviews() []models.Review {
	return []models.Review{
		{
			ID:           "1",
			ExperienceID: "1",
			TouristID:    "1",
			TouristName:  "John Doe",
			Rating:       5,
			Comment:      "Amazing cooking class! Mohammed was a wonderful teacher and the food was delicious.",
			Date:         day("2023-07-20"),
		},
		{
			ID:           "2",
			ExperienceID: "2",
			TouristID:    "1",
			TouristName:  "John Doe",
			Rating:       4,
			Comment:      "Fatima was knowledgeable and friendly. The medina is fascinating!",
			Date:         day("2023-07-25"),
		},
	}
}
