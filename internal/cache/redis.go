package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/seatbook/config"
	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL}
}

// GetFlight returns nil, nil on a cache miss.
func (c *RedisCache) GetFlight(ctx context.Context, flightID string) (*domain.FlightSnapshot, error) {
	data, err := c.client.Get(ctx, flightKey(flightID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot domain.FlightSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *RedisCache) SetFlight(ctx context.Context, snapshot domain.FlightSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightKey(snapshot.ID), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlight(ctx context.Context, flightID string) error {
	return c.client.Del(ctx, flightKey(flightID)).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func flightKey(flightID string) string {
	return "cache:flight:" + flightID
}
