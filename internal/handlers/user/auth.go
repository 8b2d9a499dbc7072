package user

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"ecomm_back_end/internal/cache"
	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/handlers"
	"ecomm_back_end/internal/middleware"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"
	"ecomm_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ================== AUTH LOCALE ==================

func Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Address  string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email invalide"})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mot de passe trop court (6 caractères minimum)"})
		return
	}

	ctx := c.Request.Context()

	// Email déjà pris ?
	if _, err := Users.GetByEmail(ctx, input.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		handlers.WriteError(c, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	u := models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
		Name:     input.Name,
		Address:  input.Address,
		Role:     "customer",
		Provider: "local",
	}

	if err := Users.Create(ctx, &u); err != nil {
		handlers.WriteError(c, err)
		return
	}

	token, err := utils.GenerateJWT(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	// E-mail de bienvenue, échec seulement journalisé
	go func(email, name string) {
		if err := utils.SendEmail(email, "Bienvenue sur Ecomm", utils.GenerateWelcomeHTML(name)); err != nil {
			log.Printf("⚠️ Échec envoi e-mail de bienvenue à %s: %v", email, err)
		}
	}(u.Email, u.Name)

	log.Printf("✅ Nouveau compte créé: %s", u.Email)

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"user_id": u.ID,
		"email":   u.Email,
		"name":    u.Name,
	})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	ctx := c.Request.Context()

	u, err := Users.GetByEmail(ctx, input.Email)
	if err != nil {
		// Message identique pour email inconnu et mot de passe incorrect
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	// Fast path Redis avant bcrypt
	if !cache.CheckPasswordCache(ctx, input.Email, input.Password) {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		cache.SetPasswordCache(ctx, input.Email, input.Password)
	}

	middleware.ResetLoginAttempts(c, input.Email)

	token, err := utils.GenerateJWT(*u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": u.ID,
		"email":   u.Email,
		"name":    u.Name,
		"role":    u.Role,
	})
}

// Logout révoque le token courant dans Redis jusqu'à sa date d'expiration
func Logout(c *gin.Context) {
	tokenString := c.GetString("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	// La durée de vie maximale d'un token est de 24h
	key := middleware.TokenBlacklistKey(tokenString)
	if err := database.Redis.Set(c.Request.Context(), key, "revoked", 24*time.Hour).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la déconnexion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté avec succès"})
}

// Me retourne le principal courant
func Me(c *gin.Context) {
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
