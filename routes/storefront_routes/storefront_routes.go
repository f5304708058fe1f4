package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/i-iangurazov/roksosh/cartstore"
	"github.com/i-iangurazov/roksosh/catalog"
	"github.com/i-iangurazov/roksosh/controllers/storefront/cart_controller"
	"github.com/i-iangurazov/roksosh/controllers/storefront/checkout_controller"
	"github.com/i-iangurazov/roksosh/controllers/storefront/product_controller"
	"github.com/i-iangurazov/roksosh/controllers/storefront/search_controller"
	"github.com/i-iangurazov/roksosh/services"
)

// SetupStorefrontRoutes wires the engine into the public storefront surface.
func SetupStorefrontRoutes(
	router *gin.RouterGroup,
	coordinator *catalog.Coordinator,
	store *cartstore.Store,
	orders *services.OrderService,
) {
	storeGroup := router.Group("/store")

	// Catalog
	products := storeGroup.Group("/products")
	{
		products.GET("", product_controller.GetProducts(coordinator))
	}
	storeGroup.GET("/search", search_controller.SearchProducts(coordinator))

	// Cart
	cart := storeGroup.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart(store))
		cart.POST("/items", cart_controller.AddItem(store))
		cart.DELETE("/items/:id", cart_controller.RemoveItem(store))
		cart.DELETE("", cart_controller.ClearCart(store))
	}

	// Checkout
	storeGroup.POST("/checkout", checkout_controller.SubmitOrder(store, orders))
}
