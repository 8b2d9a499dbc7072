package handlers

import (
	"errors"
	"log"
	"net/http"

	"ecomm_back_end/internal/cart"
	"ecomm_back_end/internal/catalog"
	"ecomm_back_end/internal/orders"
	"ecomm_back_end/internal/store"
	"ecomm_back_end/internal/wishlist"

	"github.com/gin-gonic/gin"
)

// WriteError traduit la taxonomie d'erreurs domaine en réponse HTTP.
// Aucune reprise automatique : chaque échec devient un message visible.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orders.ErrUnauthenticated), errors.Is(err, wishlist.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
	case errors.Is(err, orders.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound), errors.Is(err, cart.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ressource introuvable"})
	case errors.Is(err, orders.ErrAlreadyCancelled), errors.Is(err, orders.ErrImmutable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, orders.ErrEmptyCart),
		errors.Is(err, orders.ErrInvalidStatus),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, catalog.ErrMissingFields),
		errors.Is(err, catalog.ErrNegativePrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		var gw *store.GatewayError
		if errors.As(err, &gw) {
			log.Printf("❌ %v", gw)
		} else {
			log.Printf("❌ Erreur inattendue: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
	}
}
