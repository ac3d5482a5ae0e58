package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"nutrimix/internal/models"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

const productsKey = "products:all"

// Config holds Redis connection details.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisClient holds the Redis client connection.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis and verifies the connection with a PING.
func NewRedisClient(cfg Config) (*RedisClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("Connected to Redis at %s (ping: %s)", cfg.Addr, pong)

	return &RedisClient{client: client, ttl: cfg.TTL}, nil
}

// Close closes the Redis connection.
func (c *RedisClient) Close() {
	if c.client != nil {
		c.client.Close()
		log.Println("Redis connection closed.")
	}
}

// GetProducts returns the cached product listing or ErrCacheMiss.
func (c *RedisClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	data, err := c.client.Get(ctx, productsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product cache: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode product cache: %w", err)
	}
	return products, nil
}

// SetProducts caches the product listing for the configured TTL.
func (c *RedisClient) SetProducts(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode product cache: %w", err)
	}
	if err := c.client.Set(ctx, productsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write product cache: %w", err)
	}
	return nil
}

// InvalidateProducts drops the cached listing.
func (c *RedisClient) InvalidateProducts(ctx context.Context) error {
	if err := c.client.Del(ctx, productsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate product cache: %w", err)
	}
	return nil
}
