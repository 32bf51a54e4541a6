package routes

import (
	"net/http"

	"zele-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	r.GET("/", ctrl.Root)
	r.GET("/test", ctrl.TestDatabase)

	api := r.Group("/api")
	{
		// Product routes
		api.GET("/products", ctrl.GetProducts)
		api.POST("/products", ctrl.CreateProduct)
		api.GET("/products/:slug", ctrl.GetProductBySlug)

		// Review routes; the :slug segment carries the product wire id here
		api.GET("/products/:slug/reviews", ctrl.GetReviews)
		api.POST("/products/:slug/reviews", ctrl.AddReview)

		// Order, newsletter, contact
		api.POST("/orders", ctrl.CreateOrder)
		api.POST("/newsletter", ctrl.Subscribe)
		api.POST("/contact", ctrl.Contact)

		// Sample data
		api.POST("/seed", ctrl.Seed)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
