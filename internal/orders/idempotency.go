package orders

import (
	"context"
	"time"

	"ecomm_back_end/internal/database"
)

const idemTTL = 24 * time.Hour

// RedisIdempotencyGuard mémorise clé → order_id dans Redis (SETNX, 24h).
// La fenêtre entre Lookup et Remember n'est pas fermée hermétiquement :
// c'est une protection contre le double-clic, pas une transaction.
type RedisIdempotencyGuard struct{}

func idemKey(key string) string {
	return "order_idem:" + key
}

func (RedisIdempotencyGuard) Lookup(ctx context.Context, key string) (string, bool, error) {
	orderID, err := database.Redis.Get(ctx, idemKey(key)).Result()
	if err != nil || orderID == "" {
		return "", false, err
	}
	return orderID, true, nil
}

func (RedisIdempotencyGuard) Remember(ctx context.Context, key, orderID string) error {
	return database.Redis.SetNX(ctx, idemKey(key), orderID, idemTTL).Err()
}
