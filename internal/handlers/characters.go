package handlers

import (
	"errors"
	"net/http"

	"starcatalog/internal/models"
	"starcatalog/internal/services"
	"starcatalog/internal/validation"

	"github.com/gin-gonic/gin"
)

var characterRules = []validation.Rule{
	{Field: "name", Kind: validation.String},
	{Field: "gender", Kind: validation.String},
	{Field: "height", Kind: validation.String},
	{Field: "eye_color", Kind: validation.String},
	{Field: "skin_color", Kind: validation.String},
	{Field: "image", Kind: validation.String},
}

func (h *Handler) ListCharacters(c *gin.Context) {
	characters, err := h.catalog.ListCharacters()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no characters found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, characters)
}

func (h *Handler) GetCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not found"})
		return
	}
	character, err := h.catalog.GetCharacter(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "character not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, character)
}

func (h *Handler) CreateCharacter(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.Check(payload, characterRules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	character := models.Character{
		Name:      validation.Str(payload, "name"),
		Gender:    validation.Str(payload, "gender"),
		Height:    validation.Str(payload, "height"),
		EyeColor:  validation.Str(payload, "eye_color"),
		SkinColor: validation.Str(payload, "skin_color"),
		Image:     validation.Str(payload, "image"),
	}
	if birthYear, ok := validation.OptStr(payload, "birth_year"); ok {
		character.BirthYear = birthYear
	}
	if err := h.catalog.CreateCharacter(&character); err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This name is already used"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create character"})
		return
	}
	c.JSON(http.StatusOK, character)
}

func (h *Handler) DeleteCharacter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not found"})
		return
	}
	if err := h.catalog.DeleteCharacter(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "character not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete character"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "character deleted"})
}
