package routes

import (
	"time"

	"geecurly/handlers"
	"geecurly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/services", handlers.GetServices)
		api.GET("/staff", handlers.GetStaff)
		api.GET("/availability", handlers.GetAvailability)
	}
}

// RegisterBookingRoutes registers the appointment CRUD endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.POST("/create", handlers.CreateBooking)
		api.GET("", handlers.ListBookings)
		api.GET("/:id", handlers.GetBooking)
		api.PUT("/:id", handlers.UpdateBooking)
	}
}

// RegisterChatRoutes registers the receptionist endpoints.
func RegisterChatRoutes(r *gin.Engine) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", handlers.StartChatSession)
		api.POST("/message", handlers.HandleChatMessage)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r)
	RegisterChatRoutes(r)
}
