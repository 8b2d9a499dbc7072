package user

import (
	"log"
	"net/http"

	"ecomm_back_end/internal/cart"
	"ecomm_back_end/internal/handlers"
	"ecomm_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Checkout convertit le panier courant en commande `pending` puis vide le
// panier. En cas d'échec le panier est laissé intact pour réessayer.
func Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")

	var input struct {
		IdempotencyKey string `json:"idempotency_key"`
	}
	// Body optionnel
	_ = c.ShouldBindJSON(&input)

	ctx := c.Request.Context()

	current, err := cart.Load(ctx, userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	order, err := Orders.Checkout(ctx, userID, current.Lines, input.IdempotencyKey)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	// La commande est persistée : un échec du vidage n'est pas compensé
	if err := cart.Clear(ctx, userID); err != nil {
		log.Printf("⚠️ Commande %s créée mais panier non vidé: %v", order.ID, err)
	}

	// Confirmation par e-mail, échec seulement journalisé
	if email != "" {
		go func(to string) {
			if err := utils.SendEmail(to, "Confirmation de votre commande", utils.GenerateOrderConfirmationHTML(*order)); err != nil {
				log.Printf("⚠️ Échec envoi confirmation commande %s: %v", order.ID, err)
			}
		}(email)
	}

	log.Printf("✅ Commande %s créée pour %s (total %.2f€)", order.ID, userID, order.Total)

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders retourne l'historique de l'utilisateur connecté,
// trié par date de création décroissante
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := Orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrderByID retourne une commande avec contrôle de propriété
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")

	order, err := Orders.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// CancelOrder : seule transition de statut accessible à l'utilisateur
func CancelOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	order, err := Orders.Cancel(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	log.Printf("🚫 Commande %s annulée par %s", order.ID, userID)

	c.JSON(http.StatusOK, order)
}

// OrderQR retourne le QR de retrait d'une commande (PNG)
func OrderQR(c *gin.Context) {
	userID := c.GetString("user_id")

	order, err := Orders.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	png, err := utils.OrderPickupQR(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
