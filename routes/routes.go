package routes

import (
	"time"

	"astromarket/handlers"
	"astromarket/middleware"
	"astromarket/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/problems", hb.Catalog.GetProblemsHandler)
		api.GET("/astrologers", hb.Catalog.GetAstrologersHandler)
		api.GET("/astrologers/:id", hb.Catalog.GetAstrologerHandler)
	}
}

// RegisterSarthiRoutes registers problem selection endpoints.
func RegisterSarthiRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sarthi")
	{
		api.POST("/check", hb.Sarthi.CheckCustomHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.POST("/selection", hb.Sarthi.SubmitSelectionHandler)
		protected.GET("/requests", hb.Sarthi.ListRequestsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.LoginHandler)

		customers := adminGroup.Group("/customers")
		customers.Use(middleware.JWTAuthAdminMiddleware())
		customers.GET("", hb.Admin.ListCustomersHandler)
		customers.GET("/stats", hb.Admin.CustomerStatsHandler)
		customers.GET("/:id", hb.Admin.GetCustomerHandler)
		customers.POST("/export", hb.Admin.ExportCustomersHandler)
	}
}

// RegisterHealthRoute registers health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.HealthHandler)
	if hb.Metrics != nil {
		r.GET("/metrics", gin.WrapH(hb.Metrics))
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(utils.ErrorHandler())
	if hb.Logger != nil {
		r.Use(middleware.RequestLogger(hb.Logger))
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))

	RegisterHealthRoute(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterSarthiRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
