package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
)

// Client wraps the Redis connection.
// Used for the JWT blacklist and the meetup view counters.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token blacklist ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken adds a JWT ID to the blacklist for the token's remaining TTL.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JWT ID has been revoked.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Meetup view counters ──

const viewsPrefix = "meetup:views:"

// IncrementViews bumps the view counter for a meetup and returns the new total.
func (c *Client) IncrementViews(ctx context.Context, meetupID int64) (int64, error) {
	return c.rdb.Incr(ctx, fmt.Sprintf("%s%d", viewsPrefix, meetupID)).Result()
}

// GetViews reads the current view counter for a meetup. Missing key means zero.
func (c *Client) GetViews(ctx context.Context, meetupID int64) (int64, error) {
	n, err := c.rdb.Get(ctx, fmt.Sprintf("%s%d", viewsPrefix, meetupID)).Int64()
	if err == goredis.Nil {
		return 0, nil
	}
	return n, err
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
