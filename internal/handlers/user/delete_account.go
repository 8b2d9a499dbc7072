package user

import (
	"log"
	"net/http"
	"time"

	"ecomm_back_end/internal/cache"
	"ecomm_back_end/internal/cart"
	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/handlers"
	"ecomm_back_end/internal/middleware"
	"ecomm_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// DeleteAccount supprime complètement un compte utilisateur et toutes ses
// données associées
func DeleteAccount(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var input struct {
		Password        string `json:"password"`        // Pour confirmer l'identité (auth locale)
		ConfirmDeletion bool   `json:"confirmDeletion"` // Confirmation explicite
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !input.ConfirmDeletion {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vous devez confirmer la suppression"})
		return
	}

	ctx := c.Request.Context()

	// =============================================
	// 1. VÉRIFIER L'IDENTITÉ DE L'UTILISATEUR
	// =============================================

	u, err := Users.Get(ctx, userID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	// Vérifier le mot de passe pour les comptes locaux
	if u.Provider == "local" {
		if input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mot de passe requis pour confirmer la suppression"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Mot de passe incorrect"})
			return
		}
	}

	log.Printf("🗑️ Début de la suppression du compte: %s (%s)", u.Email, userID)

	// =============================================
	// 2. SUPPRIMER LES DONNÉES DANS REDIS
	// =============================================

	if err := cart.Clear(ctx, userID); err != nil {
		log.Printf("⚠️ Erreur suppression panier Redis: %v", err)
	} else {
		log.Printf("✅ Panier supprimé de Redis")
	}

	sessionKeys := []string{
		"session:" + userID,
		"oauth_redirect:" + userID,
		"reset_token:" + u.Email,
	}
	for _, key := range sessionKeys {
		database.Redis.Del(ctx, key)
	}
	cache.InvalidateUser(ctx, userID)
	cache.InvalidateWishlist(ctx, userID)
	if input.Password != "" {
		cache.InvalidatePasswordCache(ctx, u.Email, input.Password)
	}

	// =============================================
	// 3. SUPPRIMER LA WISHLIST
	// =============================================

	if err := Wishlists.DeleteForUser(ctx, userID); err != nil {
		log.Printf("⚠️ Erreur suppression wishlist: %v", err)
	} else {
		log.Printf("✅ Wishlist supprimée")
	}

	// =============================================
	// 4. SUPPRIMER LES COMMANDES
	// =============================================

	if err := Orders.DeleteForUser(ctx, userID); err != nil {
		log.Printf("⚠️ Erreur suppression commandes: %v", err)
	} else {
		log.Printf("✅ Commandes supprimées")
	}

	// =============================================
	// 5. SUPPRIMER LES IMAGES MINIO
	// =============================================

	if database.MinIO != nil {
		removed, err := services.RemoveUserObjects(ctx, userID)
		if err != nil {
			log.Printf("⚠️ Erreur suppression images MinIO: %v", err)
		}
		log.Printf("✅ %d image(s) supprimée(s) de MinIO", removed)
	}

	// =============================================
	// 6. SUPPRIMER L'UTILISATEUR
	// =============================================

	if err := Users.Delete(ctx, userID, u.Email); err != nil {
		log.Printf("❌ Erreur suppression utilisateur: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du compte"})
		return
	}

	// Le token courant ne doit plus passer le middleware
	if token := c.GetString("token"); token != "" {
		database.Redis.Set(ctx, middleware.TokenBlacklistKey(token), "revoked", 24*time.Hour)
	}

	log.Printf("✅ Utilisateur %s (%s) complètement supprimé", u.Email, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Votre compte et toutes vos données ont été supprimés définitivement",
		"deleted_at": time.Now().Format(time.RFC3339),
	})
}
