package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"ecomm_back_end/internal/database"
)

const (
	AuthCacheTTL = 15 * time.Minute // Cache les vérifications de mot de passe pendant 15 min
)

func authKey(email, password string) string {
	passwordHash := sha256.Sum256([]byte(password))
	return "auth:" + email + ":" + hex.EncodeToString(passwordHash[:])
}

// CheckPasswordCache vérifie si cette combinaison email/mot de passe a déjà
// été validée récemment, pour éviter de refaire bcrypt à chaque login
func CheckPasswordCache(ctx context.Context, email, password string) bool {
	result, err := database.Redis.Get(ctx, authKey(email, password)).Result()
	return err == nil && result == "valid"
}

// SetPasswordCache mémorise une vérification de mot de passe réussie
func SetPasswordCache(ctx context.Context, email, password string) {
	database.Redis.Set(ctx, authKey(email, password), "valid", AuthCacheTTL)
}

// InvalidatePasswordCache purge la validation après changement de mot de
// passe ou suppression de compte
func InvalidatePasswordCache(ctx context.Context, email, password string) {
	database.Redis.Del(ctx, authKey(email, password))
}
