package handlers

import (
	"net/http"

	"starcatalog/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(cors.Default())

	r.GET("/health", h.Health)

	// Users
	r.GET("/users", h.ListUsers)
	r.GET("/user/:id", h.GetUser)
	r.POST("/user", h.CreateUser)
	r.DELETE("/user/:id", h.DeleteUser)

	// Characters
	r.GET("/characters", h.ListCharacters)
	r.GET("/character/:id", h.GetCharacter)
	r.POST("/character", h.CreateCharacter)
	r.DELETE("/character/:id", h.DeleteCharacter)

	// Planets
	r.GET("/planets", h.ListPlanets)
	r.GET("/planet/:id", h.GetPlanet)
	r.POST("/planet", h.CreatePlanet)
	r.DELETE("/planet/:id", h.DeletePlanet)

	// Vehicles
	r.GET("/vehicles", h.ListVehicles)
	r.GET("/vehicle/:id", h.GetVehicle)
	r.POST("/vehicle", h.CreateVehicle)
	r.DELETE("/vehicle/:id", h.DeleteVehicle)

	// Favorites
	r.GET("/favorites/user/:user_id", h.ListUserFavorites)
	r.POST("/favorite/user/character/:user_id/:character_id", h.AddFavoriteCharacter)
	r.POST("/favorite/user/planet/:user_id/:planet_id", h.AddFavoritePlanet)
	r.POST("/favorite/user/vehicle/:user_id/:vehicle_id", h.AddFavoriteVehicle)
	r.DELETE("/favorite/user/character/:user_id/:character_id", h.RemoveFavoriteCharacter)
	r.DELETE("/favorite/user/planet/:user_id/:planet_id", h.RemoveFavoritePlanet)
	r.DELETE("/favorite/user/vehicle/:user_id/:vehicle_id", h.RemoveFavoriteVehicle)

	// Sitemap, registered last so it lists everything above.
	r.GET("/", sitemap(r))

	return r
}

func (h *Handler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// sitemap lists every registered route as {method, path} pairs.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	type route struct {
		Method string `json:"method"`
		Path   string `json:"path"`
	}
	return func(c *gin.Context) {
		info := r.Routes()
		routes := make([]route, 0, len(info))
		for _, ri := range info {
			routes = append(routes, route{Method: ri.Method, Path: ri.Path})
		}
		c.JSON(http.StatusOK, routes)
	}
}
