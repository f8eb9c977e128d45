package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/PhzzX0/esports-api/controllers/cart"
	orderControllers "github.com/PhzzX0/esports-api/controllers/order"
	userControllers "github.com/PhzzX0/esports-api/controllers/user"
	"github.com/PhzzX0/esports-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, confirmations *orderControllers.ConfirmationStore) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCartHandler(db))                        // GET /user/cart
			cartGroup.GET("/summary", cartControllers.CartSummaryHandler(db))             // GET /user/cart/summary
			cartGroup.POST("/items", cartControllers.AddItemHandler(db))                  // POST /user/cart/items
			cartGroup.PUT("/items/:product_id", cartControllers.SetQuantityHandler(db))   // PUT /user/cart/items/:product_id
			cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItemHandler(db)) // DELETE /user/cart/items/:product_id
		}

		// ──────────────── Checkout + Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db, confirmations))
		userGroup.GET("/checkout/confirmation/:token", orderControllers.ConfirmationHandler(confirmations))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))
	}
}
