package user

import (
	"errors"
	"log"
	"net/http"
	"os"

	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"
	"ecomm_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// ================== AUTH SOCIALE ==================

// Le provider est résolu par gothic.GetProviderName (cmd/server) à partir
// du chemin /api/oauth/<provider>

func BeginOAuth(c *gin.Context) {
	if c.Param("provider") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// OAuthCallback rattache le compte social à un compte existant par email,
// ou en crée un
func OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	userInfo, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	u, err := Users.GetByEmail(ctx, userInfo.Email)
	if errors.Is(err, store.ErrNotFound) {
		// Création d'un nouvel utilisateur social (pas de mot de passe)
		u = &models.User{
			Email:    userInfo.Email,
			Name:     userInfo.Name,
			Role:     "customer",
			Provider: provider,
		}
		if err := Users.Create(ctx, u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement utilisateur"})
			return
		}
		log.Printf("✅ Nouveau compte %s créé via %s", u.Email, provider)
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	token, err := utils.GenerateJWT(*u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	// Redirection frontend si configurée, sinon réponse JSON
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		c.Redirect(http.StatusTemporaryRedirect, frontend+"/auth/callback?token="+token)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"provider": provider,
		"email":    u.Email,
		"name":     u.Name,
		"role":     u.Role,
	})
}
