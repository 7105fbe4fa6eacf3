package handlers

import (
	"errors"
	"net/http"

	"starcatalog/internal/models"
	"starcatalog/internal/services"
	"starcatalog/internal/validation"

	"github.com/gin-gonic/gin"
)

var vehicleRules = []validation.Rule{
	{Field: "name", Kind: validation.String},
	{Field: "model", Kind: validation.String},
	{Field: "size", Kind: validation.Number},
}

func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.catalog.ListVehicles()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no vehicles found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	vehicle, err := h.catalog.GetVehicle(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) CreateVehicle(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := validation.Check(payload, vehicleRules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle := models.Vehicle{
		Name:  validation.Str(payload, "name"),
		Model: validation.Str(payload, "model"),
		Size:  validation.Int(payload, "size"),
	}
	if err := h.catalog.CreateVehicle(&vehicle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create vehicle"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	if err := h.catalog.DeleteVehicle(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vehicle"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
