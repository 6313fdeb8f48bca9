package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

// RedisStore reads the token from a single Redis key
type RedisStore struct {
	client *redis.Client
	key    string
	logger *logging.Logger
}

// NewRedisClient parses redisURL and verifies connectivity
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("credential: redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("credential: redis ping failed: %w", err)
	}

	return client, nil
}

func NewRedisStore(client *redis.Client, key string, logger *logging.Logger) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RedisStore{client: client, key: key, logger: logger}
}

// Token returns the stored token. Lookup errors are logged and reported as
// an absent token.
func (s *RedisStore) Token(ctx context.Context) (string, bool) {
	tok, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("credential lookup failed", "key", s.key, "err", err)
		return "", false
	}
	return tok, tok != ""
}

// Clear removes the stored token (logout)
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("credential: redis del %q: %w", s.key, err)
	}
	return nil
}

var _ Provider = (*RedisStore)(nil)
