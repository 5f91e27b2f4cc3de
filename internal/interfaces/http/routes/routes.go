// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/payment"
	"github.com/amrhamedpage/shams-web-platform/internal/interfaces/http/handlers"
	"github.com/amrhamedpage/shams-web-platform/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes wires all storefront routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, gateway payment.Gateway, cfg *config.Config, logger *logrus.Logger) {
	productHandler := handlers.NewProductHandler(db, cfg, logger)
	syncHandler := handlers.NewSyncHandler(cfg, logger)
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg, logger)
	checkoutHandler := handlers.NewCheckoutHandler(db, redisClient, gateway, cfg, logger)

	// Catalog routes
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)

		// Product detail sync (read-only external adapters)
		products.GET("/:id/stock", syncHandler.GetLiveStock)
		products.GET("/:id/delivery-estimate", syncHandler.GetDeliveryEstimate)
		products.GET("/:id/sync", syncHandler.GetProductSync)
	}

	rg.GET("/categories", productHandler.GetCategories)

	// Cart routes (session cookie identifies the shopper)
	cart := rg.Group("/cart")
	cart.Use(middleware.CartSession(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:id", cartHandler.UpdateItem)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/validate", cartHandler.ValidateCart)
	}

	// Checkout routes share the cart session
	checkout := rg.Group("/checkout")
	checkout.Use(middleware.CartSession(cfg))
	{
		checkout.GET("", checkoutHandler.GetCheckout)
		checkout.POST("/pay", checkoutHandler.SubmitPayment)
	}
}
