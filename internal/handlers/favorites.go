package handlers

import (
	"errors"
	"net/http"

	"starcatalog/internal/models"
	"starcatalog/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUserFavorites(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	user, views, err := h.favorites.ListForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if len(views) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no favorites found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "favorites": views})
}

func (h *Handler) AddFavoriteCharacter(c *gin.Context) {
	h.addFavorite(c, models.TargetCharacter)
}

func (h *Handler) AddFavoritePlanet(c *gin.Context) {
	h.addFavorite(c, models.TargetPlanet)
}

func (h *Handler) AddFavoriteVehicle(c *gin.Context) {
	h.addFavorite(c, models.TargetVehicle)
}

func (h *Handler) RemoveFavoriteCharacter(c *gin.Context) {
	h.removeFavorite(c, models.TargetCharacter)
}

func (h *Handler) RemoveFavoritePlanet(c *gin.Context) {
	h.removeFavorite(c, models.TargetPlanet)
}

func (h *Handler) RemoveFavoriteVehicle(c *gin.Context) {
	h.removeFavorite(c, models.TargetVehicle)
}

// addFavorite checks that the user and the target both exist before the
// join row is written; a miss on either side is a 404 naming it.
func (h *Handler) addFavorite(c *gin.Context, kind string) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	targetID, ok := pathID(c, kind+"_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
		return
	}

	if _, err := h.catalog.GetUser(userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if err := h.lookupTarget(kind, targetID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if err := h.favorites.Attach(userID, kind, targetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": kind + " added to user favorites"})
}

func (h *Handler) removeFavorite(c *gin.Context, kind string) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}
	targetID, ok := pathID(c, kind+"_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}

	if err := h.favorites.Detach(userID, kind, targetID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite deleted"})
}

func (h *Handler) lookupTarget(kind string, id uint) error {
	switch kind {
	case models.TargetCharacter:
		_, err := h.catalog.GetCharacter(id)
		return err
	case models.TargetPlanet:
		_, err := h.catalog.GetPlanet(id)
		return err
	case models.TargetVehicle:
		_, err := h.catalog.GetVehicle(id)
		return err
	}
	return services.ErrNotFound
}
