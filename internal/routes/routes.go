package routes

import (
	"ecomm_back_end/internal/handlers/admin"
	"ecomm_back_end/internal/handlers/product"
	"ecomm_back_end/internal/handlers/user"
	"ecomm_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ================== PUBLIC ==================

	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), user.Register)
		auth.POST("/login", middleware.LoginRateLimit(), user.Login)
	}

	oauth := api.Group("/oauth")
	{
		oauth.GET("/:provider", user.BeginOAuth)
		oauth.GET("/:provider/callback", user.OAuthCallback)
	}

	products := api.Group("/products")
	{
		products.GET("", product.GetAllProducts)
		products.GET("/search", product.SearchProducts)
		products.GET("/:id", product.GetProduct)
	}

	// ================== AUTHENTIFIÉ ==================

	authed := api.Group("")
	authed.Use(middleware.AuthRequired())
	{
		authed.POST("/auth/logout", user.Logout)
		authed.GET("/auth/me", user.Me)

		authed.GET("/profile", user.GetProfile)
		authed.PUT("/profile", user.UpdateProfile)
		authed.DELETE("/profile", user.DeleteAccount)

		authed.GET("/cart", user.GetCart)
		authed.POST("/cart/add", user.AddToCart)
		authed.PUT("/cart/:productId", user.UpdateCartQuantity)
		authed.DELETE("/cart/:productId", user.RemoveFromCart)
		authed.DELETE("/cart", user.ClearCart)

		authed.POST("/orders/checkout", user.Checkout)
		authed.GET("/orders", user.GetMyOrders)
		authed.GET("/orders/:id", user.GetOrderByID)
		authed.POST("/orders/:id/cancel", user.CancelOrder)
		authed.GET("/orders/:id/qr", user.OrderQR)

		authed.GET("/wishlist", user.GetWishlist)
		authed.POST("/wishlist/toggle", user.ToggleWishlist)
		authed.GET("/wishlist/:productId/status", user.WishlistStatus)
	}

	// ================== ADMIN ==================

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireAdmin())
	{
		adminGroup.POST("/products", product.CreateProduct)
		adminGroup.PUT("/products/:id", product.UpdateProduct)
		adminGroup.DELETE("/products/:id", product.DeleteProduct)
		adminGroup.POST("/products/:id/image", product.UploadProductImage)

		adminGroup.GET("/orders", admin.GetAllOrders)
		adminGroup.PUT("/orders/:id/status", admin.UpdateOrderStatus)
	}
}
