package routes

import (
	"net/http"
	"time"

	"villamar/handlers"
	"villamar/middleware"
	"villamar/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStayRoutes registers the public quoting and availability endpoints.
func RegisterStayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	stay := r.Group("/api/stay")
	{
		stay.POST("/quote", hb.QuoteStayHandler)
		stay.POST("/validate", hb.ValidateStayHandler)
	}

	availability := r.Group("/api/availability")
	{
		availability.GET("", hb.AvailabilityHandler)
		availability.GET("/calendar", hb.CalendarHandler)
	}
}

// RegisterAdminRoutes sets up the operator configuration surface. Everything
// past login requires the admin JWT.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminHandler.LoginHandler)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("/seasons", hb.AdminHandler.ListSeasonsHandler)
		protected.POST("/seasons", hb.AdminHandler.CreateSeasonHandler)
		protected.PUT("/seasons/:id", hb.AdminHandler.UpdateSeasonHandler)
		protected.DELETE("/seasons/:id", hb.AdminHandler.DeactivateSeasonHandler)
		protected.GET("/settings", hb.AdminHandler.GetSettingsHandler)
		protected.PUT("/settings", hb.AdminHandler.PutSettingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the periodic
// dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStayRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
