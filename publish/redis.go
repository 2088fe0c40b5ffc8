package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/transit-tools/buslocator/config"
	"github.com/transit-tools/buslocator/locator"
)

// RedisPublisher writes each cycle's Snapshot as JSON to a fixed Redis key
// with a TTL, so external renderers can read the latest vehicle set without
// talking to this process. The key always holds the most recent cycle only.
type RedisPublisher struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisPublisher connects to Redis and verifies the connection.
func NewRedisPublisher(cfg config.RedisConfig) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Address, err)
	}
	return &RedisPublisher{
		client: client,
		key:    cfg.Key,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}, nil
}

// Publish overwrites the snapshot key with the given Snapshot.
func (p *RedisPublisher) Publish(ctx context.Context, snap locator.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := p.client.Set(ctx, p.key, payload, p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
