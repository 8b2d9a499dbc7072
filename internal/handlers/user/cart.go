package user

import (
	"net/http"

	"ecomm_back_end/internal/cart"
	"ecomm_back_end/internal/handlers"

	"github.com/gin-gonic/gin"
)

func cartResponse(c *gin.Context, current *cart.Cart, message string) {
	resp := gin.H{
		"items":      current.Lines,
		"total":      current.Total(),
		"item_count": current.ItemCount(),
	}
	if message != "" {
		resp["message"] = message
	}
	c.JSON(http.StatusOK, resp)
}

// GetCart retourne le panier courant avec total et compteur
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	current, err := cart.Load(c.Request.Context(), userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	cartResponse(c, current, "")
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 1 || input.Quantity > 99 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	ctx := c.Request.Context()

	// Snapshot du produit figé au moment de l'ajout
	product, err := Catalog.Get(ctx, input.ProductID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	current, err := cart.Load(ctx, userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	for i := 0; i < input.Quantity; i++ {
		current.Add(*product)
	}

	if err := cart.Save(ctx, userID, current); err != nil {
		handlers.WriteError(c, err)
		return
	}

	cartResponse(c, current, "Produit ajouté au panier")
}

//
// 🔁 PUT /api/cart/:productId — remplace la quantité d'une ligne
//
func UpdateCartQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	current, err := cart.Load(ctx, userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	if err := current.SetQuantity(c.Param("productId"), input.Quantity); err != nil {
		handlers.WriteError(c, err)
		return
	}

	if err := cart.Save(ctx, userID, current); err != nil {
		handlers.WriteError(c, err)
		return
	}

	cartResponse(c, current, "Quantité mise à jour")
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	ctx := c.Request.Context()
	current, err := cart.Load(ctx, userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	current.Remove(c.Param("productId"))

	if err := cart.Save(ctx, userID, current); err != nil {
		handlers.WriteError(c, err)
		return
	}

	cartResponse(c, current, "Produit supprimé du panier")
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	if err := cart.Clear(c.Request.Context(), userID); err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
