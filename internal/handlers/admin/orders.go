package admin

import (
	"log"
	"net/http"

	"ecomm_back_end/internal/handlers"
	"ecomm_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

// Dépendances injectées au démarrage (cmd/server) ou par les tests
var Orders *orders.Service

func Init(o *orders.Service) {
	Orders = o
}

//
// 🔒 GET /api/admin/orders — toutes les commandes, plus récentes d'abord
//
func GetAllOrders(c *gin.Context) {
	all, err := Orders.All(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(all),
		"orders": all,
	})
}

//
// 🔒 PUT /api/admin/orders/:id/status
//
func UpdateOrderStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	order, err := Orders.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	log.Printf("✅ Commande %s passée au statut %s", order.ID, order.Status)

	c.JSON(http.StatusOK, order)
}
