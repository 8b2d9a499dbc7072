package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ecomm_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := c.Request.Context()
		key := "login_attempts:" + input.Email

		attempts, err := database.Redis.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if attempts == 1 {
			database.Redis.Expire(ctx, key, LoginCooldown)
		}

		if attempts > LoginMaxAttempts {
			ttl, _ := database.Redis.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Trop de tentatives de connexion, réessayez dans %.0f minutes", ttl.Minutes()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ResetLoginAttempts remet le compteur à zéro après un login réussi
func ResetLoginAttempts(c *gin.Context, email string) {
	database.Redis.Del(c.Request.Context(), "login_attempts:"+email)
}

// RegisterRateLimit limite les créations de compte par adresse IP
func RegisterRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "register_attempts:" + c.ClientIP()

		attempts, err := database.Redis.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if attempts == 1 {
			database.Redis.Expire(ctx, key, RegisterCooldown)
		}

		if attempts > RegisterMaxAttempts {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Trop de créations de compte depuis cette adresse, réessayez plus tard",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
