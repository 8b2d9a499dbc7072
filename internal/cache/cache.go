package cache

import (
	"context"
	"encoding/json"
	"time"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store/scylla"
)

const (
	UserCacheTTL     = 5 * time.Minute
	ProductCacheTTL  = 10 * time.Minute
	WishlistCacheTTL = 10 * time.Minute
)

// GetUser récupère un utilisateur depuis Redis, sinon depuis ScyllaDB
func GetUser(ctx context.Context, userID string) (*models.User, error) {
	key := "user:" + userID

	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var user models.User
		if json.Unmarshal([]byte(data), &user) == nil {
			return &user, nil
		}
	}

	user, err := scylla.Users{}.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if jsonData, err := json.Marshal(user); err == nil {
		database.Redis.Set(ctx, key, jsonData, UserCacheTTL)
	}
	return user, nil
}

// InvalidateUser invalide le cache d'un utilisateur
func InvalidateUser(ctx context.Context, userID string) {
	database.Redis.Del(ctx, "user:"+userID)
}

// GetProducts récupère la liste complète du catalogue depuis Redis
func GetProducts(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, "products:all").Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if json.Unmarshal([]byte(data), &products) != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met la liste complète en cache
func SetProducts(ctx context.Context, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, "products:all", data, ProductCacheTTL)
	}
}

// InvalidateProducts invalide le cache catalogue après toute écriture
func InvalidateProducts(ctx context.Context) {
	database.Redis.Del(ctx, "products:all")
}

// GetWishlist récupère une wishlist enrichie depuis Redis
func GetWishlist(ctx context.Context, userID string) (*models.Wishlist, bool) {
	data, err := database.Redis.Get(ctx, "wishlist:"+userID).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var w models.Wishlist
	if json.Unmarshal([]byte(data), &w) != nil {
		return nil, false
	}
	return &w, true
}

// SetWishlist met une wishlist en cache
func SetWishlist(ctx context.Context, userID string, w *models.Wishlist) {
	if data, err := json.Marshal(w); err == nil {
		database.Redis.Set(ctx, "wishlist:"+userID, data, WishlistCacheTTL)
	}
}

// InvalidateWishlist invalide le cache après un toggle
func InvalidateWishlist(ctx context.Context, userID string) {
	database.Redis.Del(ctx, "wishlist:"+userID)
}
