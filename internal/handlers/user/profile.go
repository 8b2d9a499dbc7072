package user

import (
	"net/http"

	"ecomm_back_end/internal/cache"
	"ecomm_back_end/internal/handlers"
	"ecomm_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProfile retourne le profil de l'utilisateur connecté
func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	u, err := cache.GetUser(c.Request.Context(), userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// UpdateProfile modifie le nom et/ou l'adresse
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	if err := Users.Update(ctx, userID, input); err != nil {
		handlers.WriteError(c, err)
		return
	}

	cache.InvalidateUser(ctx, userID)

	u, err := Users.Get(ctx, userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
