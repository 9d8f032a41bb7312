package catalog

import (
	"testing"
	"time"

	"marhaba/database"
	"marhaba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSeededCatalog builds a catalog over fresh collections loaded with the
// seed dataset.
func newSeededCatalog(t *testing.T) *DefaultCatalogService {
	t.Helper()
	collections, err := database.InitDB()
	require.NoError(t, err)
	svc := NewDefaultCatalogService(collections.Experiences, collections.Bookings, collections.Reviews)
	svc.MarkReady()
	return svc
}

func TestAddExperience(t *testing.T) {
	svc := newSeededCatalog(t)

	draft := models.ExperienceDraft{
		Type:           models.TypeWorkshop,
		Title:          "Zellige Tilework Workshop",
		Description:    "Cut and assemble traditional geometric mosaic tiles with a master craftsman in his Fes workshop.",
		ProviderID:     "2",
		ProviderName:   "Mohammed El Fassi",
		Location:       "Fes",
		Images:         []string{"images/zellige.jpg"},
		Languages:      []string{"Arabic", "English"},
		Duration:       3,
		Price:          180,
		Capacity:       6,
		AvailableDates: []time.Time{time.Date(2030, 8, 1, 10, 0, 0, 0, time.UTC)},
	}

	created, err := svc.AddExperience(draft)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Approved, "new experiences must await moderation")
	assert.Nil(t, created.AverageRating)
	assert.Empty(t, created.Reviews)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	t.Run("appends after the seed entries", func(t *testing.T) {
		all, err := svc.Experiences()
		require.NoError(t, err)
		require.Len(t, all, 6)
		assert.Equal(t, created.ID, all[5].ID)
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		second, err := svc.AddExperience(draft)
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, second.ID)
	})
}

func TestBookExperience(t *testing.T) {
	svc := newSeededCatalog(t)
	date := time.Date(2030, 7, 15, 10, 0, 0, 0, time.UTC)

	t.Run("freezes total price and starts pending", func(t *testing.T) {
		booking, err := svc.BookExperience("1", "1", date, 2)
		require.NoError(t, err)
		require.NotNil(t, booking)

		assert.Equal(t, 700.0, booking.TotalPrice)
		assert.Equal(t, models.BookingPending, booking.Status)
		assert.Equal(t, "1", booking.ExperienceID)
		assert.Equal(t, "1", booking.TouristID)
		assert.Equal(t, 2, booking.NumberOfPeople)
		assert.NotEmpty(t, booking.ID)
	})

	t.Run("later price edits do not touch existing bookings", func(t *testing.T) {
		booking, err := svc.BookExperience("1", "1", date, 2)
		require.NoError(t, err)
		require.NotNil(t, booking)

		newPrice := 999.0
		_, err = svc.UpdateExperience("1", models.ExperienceUpdate{Price: &newPrice})
		require.NoError(t, err)

		bookings, err := svc.BookingsByTourist("1")
		require.NoError(t, err)
		for _, b := range bookings {
			if b.ID == booking.ID {
				assert.Equal(t, 700.0, b.TotalPrice)
			}
		}
	})

	t.Run("unknown experience is a silent no-op", func(t *testing.T) {
		before, err := svc.BookingsByTourist("1")
		require.NoError(t, err)

		booking, err := svc.BookExperience("missing-id", "1", date, 2)
		require.NoError(t, err)
		assert.Nil(t, booking)

		after, err := svc.BookingsByTourist("1")
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("date and capacity are not validated here", func(t *testing.T) {
		// Deliberate: the store trusts its callers, so an off-calendar date
		// and an over-capacity head count still book.
		booking, err := svc.BookExperience("1", "1", time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC), 50)
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, 350.0*50, booking.TotalPrice)
	})
}

func TestUpdateExperience(t *testing.T) {
	svc := newSeededCatalog(t)

	t.Run("merges only the given fields", func(t *testing.T) {
		title := "Royal Moroccan Cooking Class"
		updated, err := svc.UpdateExperience("1", models.ExperienceUpdate{Title: &title})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, title, updated.Title)
		assert.Equal(t, 350.0, updated.Price)
		assert.Equal(t, "Marrakech", updated.Location)
		assert.True(t, updated.Approved)
	})

	t.Run("unknown id leaves the collection unchanged", func(t *testing.T) {
		before, err := svc.Experiences()
		require.NoError(t, err)

		approved := true
		updated, err := svc.UpdateExperience("missing-id", models.ExperienceUpdate{Approved: &approved})
		require.NoError(t, err)
		assert.Nil(t, updated)

		after, err := svc.Experiences()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestDeleteExperience(t *testing.T) {
	svc := newSeededCatalog(t)

	t.Run("removes the record and preserves order", func(t *testing.T) {
		require.NoError(t, svc.DeleteExperience("2"))

		gone, err := svc.ExperienceByID("2")
		require.NoError(t, err)
		assert.Nil(t, gone)

		all, err := svc.Experiences()
		require.NoError(t, err)
		ids := make([]string, 0, len(all))
		for _, exp := range all {
			ids = append(ids, exp.ID)
		}
		assert.Equal(t, []string{"1", "3", "4", "5"}, ids)
	})

	t.Run("does not cascade to bookings or reviews", func(t *testing.T) {
		require.NoError(t, svc.DeleteExperience("3"))

		// Seed booking "2" references experience "3" and must survive as a
		// dangling reference.
		bookings, err := svc.BookingsByExperience("3")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "2", bookings[0].ID)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		before, err := svc.Experiences()
		require.NoError(t, err)
		require.NoError(t, svc.DeleteExperience("missing-id"))
		after, err := svc.Experiences()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestAddReview(t *testing.T) {
	t.Run("recomputes the exact mean over the full review set", func(t *testing.T) {
		svc := newSeededCatalog(t)

		// Experience "1" already carries one seed review rated 5.
		review, err := svc.AddReview(models.ReviewDraft{
			ExperienceID: "1",
			TouristID:    "1",
			TouristName:  "John Doe",
			Rating:       4,
			Comment:      "Great food, slightly rushed pace.",
		})
		require.NoError(t, err)
		require.NotNil(t, review)
		assert.NotEmpty(t, review.ID)

		exp, err := svc.ExperienceByID("1")
		require.NoError(t, err)
		require.NotNil(t, exp)
		require.NotNil(t, exp.AverageRating)
		assert.Equal(t, 4.5, *exp.AverageRating, "mean of 5 and 4, not a running approximation")
		assert.Len(t, exp.Reviews, 2)
	})

	t.Run("converges over repeated insertions", func(t *testing.T) {
		svc := newSeededCatalog(t)

		ratings := []int{5, 3, 4}
		for _, rating := range ratings {
			_, err := svc.AddReview(models.ReviewDraft{
				ExperienceID: "2",
				TouristID:    "1",
				TouristName:  "John Doe",
				Rating:       rating,
				Comment:      "Wonderful walk through the medina.",
			})
			require.NoError(t, err)
		}

		exp, err := svc.ExperienceByID("2")
		require.NoError(t, err)
		require.NotNil(t, exp.AverageRating)
		// Seed review rated 4 plus 5, 3, 4.
		assert.Equal(t, 4.0, *exp.AverageRating)
		assert.Len(t, exp.Reviews, 4)
	})

	t.Run("first review sets the rating from nil", func(t *testing.T) {
		svc := newSeededCatalog(t)

		// Experience "4" has a published seed rating but no reviews in the
		// canonical collection; the first real review replaces it with the
		// exact mean of the stored set.
		_, err := svc.AddReview(models.ReviewDraft{
			ExperienceID: "4",
			TouristID:    "1",
			TouristName:  "John Doe",
			Rating:       3,
			Comment:      "Interesting but the tannery smell is intense.",
		})
		require.NoError(t, err)

		exp, err := svc.ExperienceByID("4")
		require.NoError(t, err)
		require.NotNil(t, exp.AverageRating)
		assert.Equal(t, 3.0, *exp.AverageRating)
		require.Len(t, exp.Reviews, 1)
		assert.Equal(t, 3, exp.Reviews[0].Rating)
	})
}

func TestQueries(t *testing.T) {
	svc := newSeededCatalog(t)

	t.Run("experiences by provider", func(t *testing.T) {
		exps, err := svc.ExperiencesByProvider("2")
		require.NoError(t, err)
		require.Len(t, exps, 1)
		assert.Equal(t, "1", exps[0].ID)

		none, err := svc.ExperiencesByProvider("unknown")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("bookings by tourist and by experience", func(t *testing.T) {
		byTourist, err := svc.BookingsByTourist("1")
		require.NoError(t, err)
		require.Len(t, byTourist, 2)
		assert.Equal(t, "1", byTourist[0].ID)
		assert.Equal(t, "2", byTourist[1].ID)

		byExperience, err := svc.BookingsByExperience("1")
		require.NoError(t, err)
		require.Len(t, byExperience, 1)
		assert.Equal(t, models.BookingConfirmed, byExperience[0].Status)
	})

	t.Run("query results are snapshots, not live views", func(t *testing.T) {
		exps, err := svc.Experiences()
		require.NoError(t, err)
		exps[0].Title = "mutated locally"

		fresh, err := svc.ExperienceByID(exps[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Traditional Moroccan Cooking Class", fresh.Title)
	})
}

func TestModeration(t *testing.T) {
	svc := newSeededCatalog(t)

	draft := models.ExperienceDraft{
		Type:           models.TypeTour,
		Title:          "Sahara Sunrise Camel Trek",
		Description:    "Ride into the dunes before dawn and watch the sun rise over the Erg Chebbi desert with a local guide.",
		ProviderID:     "3",
		ProviderName:   "Fatima Zahra",
		Location:       "Merzouga",
		Images:         []string{"images/sahara.jpg"},
		Languages:      []string{"Arabic", "English"},
		Duration:       5,
		Price:          400,
		Capacity:       10,
		AvailableDates: []time.Time{time.Date(2030, 9, 1, 5, 0, 0, 0, time.UTC)},
	}
	created, err := svc.AddExperience(draft)
	require.NoError(t, err)

	t.Run("new submissions land in the pending queue", func(t *testing.T) {
		pending, err := svc.PendingExperiences()
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, created.ID, pending[0].ID)

		approved, err := svc.ApprovedExperiences()
		require.NoError(t, err)
		assert.Len(t, approved, 5)
	})

	t.Run("approve moves it to the approved set", func(t *testing.T) {
		require.NoError(t, svc.ApproveExperience(created.ID))

		exp, err := svc.ExperienceByID(created.ID)
		require.NoError(t, err)
		assert.True(t, exp.Approved)

		pending, err := svc.PendingExperiences()
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("reject closes the gate again", func(t *testing.T) {
		require.NoError(t, svc.RejectExperience(created.ID))

		exp, err := svc.ExperienceByID(created.ID)
		require.NoError(t, err)
		assert.False(t, exp.Approved)
	})

	t.Run("moderating an unknown id changes nothing", func(t *testing.T) {
		before, err := svc.Experiences()
		require.NoError(t, err)
		require.NoError(t, svc.ApproveExperience("missing-id"))
		after, err := svc.Experiences()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestReady(t *testing.T) {
	collections, err := database.InitDB()
	require.NoError(t, err)
	svc := NewDefaultCatalogService(collections.Experiences, collections.Bookings, collections.Reviews)

	assert.False(t, svc.Ready())
	svc.MarkReady()
	assert.True(t, svc.Ready())
}
