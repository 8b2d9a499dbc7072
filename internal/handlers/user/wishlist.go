package user

import (
	"log"
	"net/http"

	"ecomm_back_end/internal/cache"
	"ecomm_back_end/internal/handlers"

	"github.com/gin-gonic/gin"
)

// ToggleWishlist lit la présence puis écrit l'inverse, et retourne le
// nouvel état
func ToggleWishlist(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	present, err := Wishlists.Toggle(ctx, userID, input.ProductID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.InvalidateWishlist(ctx, userID)

	if present {
		log.Printf("⭐ Produit %s ajouté à la wishlist de %s", input.ProductID, userID)
	} else {
		log.Printf("🗑️ Produit %s retiré de la wishlist de %s", input.ProductID, userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id":  input.ProductID,
		"in_wishlist": present,
	})
}

// GetWishlist retourne la wishlist enrichie des fiches produits
func GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	if cached, ok := cache.GetWishlist(ctx, userID); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	w, err := Wishlists.List(ctx, userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.SetWishlist(ctx, userID, w)

	c.JSON(http.StatusOK, w)
}

// WishlistStatus : état de présence pour une carte produit
func WishlistStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	present, err := Wishlists.Contains(c.Request.Context(), userID, c.Param("productId"))
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id":  c.Param("productId"),
		"in_wishlist": present,
	})
}
