package handlers

import (
	"errors"
	"net/http"

	"starcatalog/internal/models"
	"starcatalog/internal/services"
	"starcatalog/internal/validation"

	"github.com/gin-gonic/gin"
)

var planetRules = []validation.Rule{
	{Field: "name", Kind: validation.String},
	{Field: "population", Kind: validation.String},
	{Field: "diameter", Kind: validation.String},
}

func (h *Handler) ListPlanets(c *gin.Context) {
	planets, err := h.catalog.ListPlanets()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no planets found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, planets)
}

func (h *Handler) GetPlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "planet not found"})
		return
	}
	planet, err := h.catalog.GetPlanet(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "planet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, planet)
}

func (h *Handler) CreatePlanet(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.Check(payload, planetRules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	planet := models.Planet{
		Name:       validation.Str(payload, "name"),
		Population: validation.Str(payload, "population"),
		Diameter:   validation.Str(payload, "diameter"),
	}
	// Extended fields are stored when supplied but never required.
	if climate, ok := validation.OptStr(payload, "climate"); ok {
		planet.Climate = climate
	}
	if orbital, ok := validation.OptStr(payload, "orbital_period"); ok {
		planet.OrbitalPeriod = orbital
	}
	if rotation, ok := validation.OptStr(payload, "rotation_period"); ok {
		planet.RotationPeriod = rotation
	}
	if image, ok := validation.OptStr(payload, "image"); ok {
		planet.Image = image
	}
	if err := h.catalog.CreatePlanet(&planet); err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This name is already used"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create planet"})
		return
	}
	c.JSON(http.StatusOK, planet)
}

func (h *Handler) DeletePlanet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "planet not found"})
		return
	}
	if err := h.catalog.DeletePlanet(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "planet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete planet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "planet deleted"})
}
