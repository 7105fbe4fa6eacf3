package handlers

import (
	"log/slog"
	"strconv"

	"starcatalog/internal/config"
	"starcatalog/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *gorm.DB
	catalog   *services.CatalogService
	favorites *services.FavoriteService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	catalog *services.CatalogService,
	favorites *services.FavoriteService,
) *Handler {
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		catalog:   catalog,
		favorites: favorites,
	}
}

// pathID parses a positive integer path parameter. A non-numeric id is
// treated the same as an id that matches no row.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
