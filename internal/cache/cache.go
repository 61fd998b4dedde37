package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store abstracts the key/value operations session state needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Client wraps redis.Client. Unlike a read-through cache, session state is
// authoritative, so connectivity errors are returned rather than swallowed;
// a missing key is reported as (nil, nil).
type Client struct {
	client *redis.Client
}

var _ Store = (*Client)(nil)

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the value, or nil if the key is absent.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Set stores value with TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key. Deleting an absent key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
