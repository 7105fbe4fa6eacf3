package handlers

import (
	"errors"
	"net/http"
	"time"

	"starcatalog/internal/models"
	"starcatalog/internal/services"
	"starcatalog/internal/validation"
	"starcatalog/pkg/utils"

	"github.com/gin-gonic/gin"
)

var userRules = []validation.Rule{
	{Field: "name", Kind: validation.String},
	{Field: "last_name", Kind: validation.String},
	{Field: "email", Kind: validation.String},
	{Field: "password", Kind: validation.String},
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.catalog.ListUsers()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no users found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	user, err := h.catalog.GetUser(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.Check(payload, userRules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPassword(validation.Str(payload, "password"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		Name:             validation.Str(payload, "name"),
		LastName:         validation.Str(payload, "last_name"),
		Email:            validation.Str(payload, "email"),
		Password:         hash,
		SubscriptionDate: time.Now(),
	}
	if err := h.catalog.CreateUser(&user); err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This email is already used"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err := h.catalog.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
