package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"nutrimix/internal/models"
	"nutrimix/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_RequiresAddr(t *testing.T) {
	_, err := cache.NewRedisClient(cache.Config{})
	assert.Error(t, err)
}

func TestRedisClient_ProductListing(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()

	client, err := cache.NewRedisClient(cache.Config{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.InvalidateProducts(ctx))
	_, err = client.GetProducts(ctx)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	products := []models.Product{{ID: 2, Name: "B", Price: models.Float(20)}, {ID: 1, Name: "A", Price: models.Float(10)}}
	require.NoError(t, client.SetProducts(ctx, products))

	got, err := client.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, int64(1), got[1].ID)

	require.NoError(t, client.InvalidateProducts(ctx))
	_, err = client.GetProducts(ctx)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
