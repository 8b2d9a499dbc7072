package cart

import (
	"context"
	"testing"
	"time"

	"ecomm_back_end/internal/database"
	"ecomm_back_end/internal/store"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Client pointé sur une adresse injoignable : chaque commande échoue
func brokenRedis(t *testing.T) {
	t.Helper()
	prev := database.Redis
	database.Redis = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { database.Redis = prev })
}

func TestLoad_RedisFailureIsNotAnEmptyCart(t *testing.T) {
	brokenRedis(t)

	c, err := Load(context.Background(), "user-1")
	require.Error(t, err)
	assert.Nil(t, c)

	// L'échec remonte en erreur de passerelle, pas en panier vide :
	// sinon la prochaine sauvegarde écraserait le panier réel
	var gw *store.GatewayError
	assert.ErrorAs(t, err, &gw)
}

func TestSaveAndClear_RedisFailure(t *testing.T) {
	brokenRedis(t)
	ctx := context.Background()

	var c Cart
	assert.Error(t, Save(ctx, "user-1", &c))
	assert.Error(t, Clear(ctx, "user-1"))
}
