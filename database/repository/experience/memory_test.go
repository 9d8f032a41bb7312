package experienceRepo

import (
	"fmt"
	"testing"

	"marhaba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRepo(t *testing.T, n int) *MemoryExperienceRepo {
	t.Helper()
	repo := NewMemoryExperienceRepo()
	for i := 1; i <= n; i++ {
		exp := models.Experience{
			ID:         fmt.Sprintf("%d", i),
			Type:       models.TypeTour,
			Title:      fmt.Sprintf("Experience %d", i),
			ProviderID: "p1",
		}
		require.NoError(t, repo.Create(&exp))
	}
	return repo
}

func TestMemoryExperienceRepo(t *testing.T) {
	t.Run("GetAll preserves insertion order", func(t *testing.T) {
		repo := seedRepo(t, 3)
		all, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "1", all[0].ID)
		assert.Equal(t, "3", all[2].ID)
	})

	t.Run("GetByID returns nil for a missing id", func(t *testing.T) {
		repo := seedRepo(t, 1)
		exp, err := repo.GetByID("nope")
		require.NoError(t, err)
		assert.Nil(t, exp)
	})

	t.Run("reads are snapshots", func(t *testing.T) {
		repo := seedRepo(t, 1)

		got, err := repo.GetByID("1")
		require.NoError(t, err)
		got.Title = "mutated"

		fresh, err := repo.GetByID("1")
		require.NoError(t, err)
		assert.Equal(t, "Experience 1", fresh.Title)
	})

	t.Run("Update replaces in place without reordering", func(t *testing.T) {
		repo := seedRepo(t, 3)
		require.NoError(t, repo.Update(models.Experience{ID: "2", Title: "renamed", ProviderID: "p1"}))

		all, err := repo.GetAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, []string{all[0].ID, all[1].ID, all[2].ID})
		assert.Equal(t, "renamed", all[1].Title)
	})

	t.Run("Update of a missing id is a no-op", func(t *testing.T) {
		repo := seedRepo(t, 1)
		require.NoError(t, repo.Update(models.Experience{ID: "ghost", Title: "x"}))

		all, err := repo.GetAll()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Delete keeps the remaining order", func(t *testing.T) {
		repo := seedRepo(t, 4)
		require.NoError(t, repo.Delete("2"))

		all, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"1", "3", "4"}, []string{all[0].ID, all[1].ID, all[2].ID})

		require.NoError(t, repo.Delete("ghost"))
		all, err = repo.GetAll()
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("GetByProvider filters in order", func(t *testing.T) {
		repo := seedRepo(t, 2)
		other := models.Experience{ID: "x", ProviderID: "p2"}
		require.NoError(t, repo.Create(&other))

		mine, err := repo.GetByProvider("p1")
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		theirs, err := repo.GetByProvider("p2")
		require.NoError(t, err)
		require.Len(t, theirs, 1)
		assert.Equal(t, "x", theirs[0].ID)
	})
}
