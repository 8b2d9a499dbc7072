package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/models"
	"ecomm_back_end/internal/store"

	"github.com/redis/go-redis/v9"
)

// Le panier vit dans Redis, une clé par utilisateur. Jamais persisté en
// base : la perte de la clé équivaut à la perte du panier de session.
const cartTTL = 30 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

// Load récupère le panier depuis Redis. Seule l'absence de clé vaut panier
// vide : une panne Redis remonte en GatewayError, sinon un panier réel
// serait écrasé par un faux panier vide à la prochaine sauvegarde.
func Load(ctx context.Context, userID string) (*Cart, error) {
	data, err := database.Redis.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return &Cart{Lines: []models.CartLine{}}, nil
	}
	if err != nil {
		return nil, store.Gateway("cart.load", err)
	}
	if data == "" {
		return &Cart{Lines: []models.CartLine{}}, nil
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c.Lines); err != nil {
		return nil, store.Gateway("cart.decode", err)
	}
	return &c, nil
}

// Save sérialise le panier dans Redis avec rafraîchissement du TTL
func Save(ctx context.Context, userID string, c *Cart) error {
	data, err := json.Marshal(c.Lines)
	if err != nil {
		return store.Gateway("cart.encode", err)
	}
	err = database.Redis.Set(ctx, cartKey(userID), data, cartTTL).Err()
	return store.Gateway("cart.save", err)
}

// Clear supprime complètement la clé Redis du panier
func Clear(ctx context.Context, userID string) error {
	err := database.Redis.Del(ctx, cartKey(userID)).Err()
	return store.Gateway("cart.clear", err)
}
