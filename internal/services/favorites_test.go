package services

import (
	"log/slog"
	"os"
	"testing"

	"starcatalog/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupFavoriteServices(t *testing.T) (*CatalogService, *FavoriteService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewCatalogService(db), NewFavoriteService(db, logger), db
}

func seedUser(t *testing.T, catalog *CatalogService) models.User {
	t.Helper()
	user := models.User{Name: "Luke", LastName: "Skywalker", Email: "luke@rebellion.org", Password: "h"}
	assert.NoError(t, catalog.CreateUser(&user))
	return user
}

func TestFavoriteAttachDetach(t *testing.T) {
	catalog, favorites, _ := setupFavoriteServices(t)
	user := seedUser(t, catalog)

	character := models.Character{Name: "Yoda", Gender: "male", Height: "66",
		EyeColor: "brown", SkinColor: "green", Image: "https://img/yoda.png"}
	assert.NoError(t, catalog.CreateCharacter(&character))

	t.Run("Attach and list", func(t *testing.T) {
		assert.NoError(t, favorites.Attach(user.ID, models.TargetCharacter, character.ID))

		got, views, err := favorites.ListForUser(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.Len(t, views, 1)
		assert.Equal(t, "Yoda", views[0].Name)
		assert.NotNil(t, views[0].Character)
		assert.Equal(t, character.ID, *views[0].Character)
		assert.Nil(t, views[0].Planet)
		assert.Nil(t, views[0].Vehicle)
	})

	t.Run("Invalid target type rejected", func(t *testing.T) {
		assert.Error(t, favorites.Attach(user.ID, "starship", 1))
	})

	t.Run("Detach by composite key", func(t *testing.T) {
		assert.NoError(t, favorites.Detach(user.ID, models.TargetCharacter, character.ID))

		_, views, err := favorites.ListForUser(user.ID)
		assert.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("Detach missing row", func(t *testing.T) {
		err := favorites.Detach(user.ID, models.TargetCharacter, character.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFavoriteListForUser(t *testing.T) {
	catalog, favorites, db := setupFavoriteServices(t)

	t.Run("Unknown user", func(t *testing.T) {
		_, _, err := favorites.ListForUser(404)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	user := seedUser(t, catalog)

	planet := models.Planet{Name: "Dagobah", Population: "0", Diameter: "8900"}
	assert.NoError(t, catalog.CreatePlanet(&planet))
	vehicle := models.Vehicle{Name: "Snowspeeder", Model: "t-47", Size: 2}
	assert.NoError(t, catalog.CreateVehicle(&vehicle))

	assert.NoError(t, favorites.Attach(user.ID, models.TargetPlanet, planet.ID))
	assert.NoError(t, favorites.Attach(user.ID, models.TargetVehicle, vehicle.ID))

	t.Run("Each kind keyed by its own field", func(t *testing.T) {
		_, views, err := favorites.ListForUser(user.ID)
		assert.NoError(t, err)
		assert.Len(t, views, 2)

		names := map[string]bool{}
		for _, v := range views {
			names[v.Name] = true
			assert.Equal(t, user.ID, v.User)
		}
		assert.True(t, names["Dagobah"])
		assert.True(t, names["Snowspeeder"])
	})

	t.Run("Dangling target serializes as unknown", func(t *testing.T) {
		// Remove the planet behind the favorite without touching the
		// favorite row itself.
		assert.NoError(t, db.Delete(&models.Planet{}, planet.ID).Error)

		_, views, err := favorites.ListForUser(user.ID)
		assert.NoError(t, err)

		var planetView *FavoriteView
		for i := range views {
			if views[i].Planet != nil {
				planetView = &views[i]
			}
		}
		assert.NotNil(t, planetView)
		assert.Equal(t, "unknown", planetView.Name)
	})
}
