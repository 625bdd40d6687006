package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"securite2ie_backend/internals/configs"
	"securite2ie_backend/internals/logging"
)

const redisOpTimeout = 2 * time.Second

// RedisStorage implements fiber.Storage on go-redis so limiter counters are
// shared between instances.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

var _ fiber.Storage = (*RedisStorage)(nil)

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (s *RedisStorage) key(k string) string { return s.prefix + k }

func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes only keys under this storage's prefix.
func (s *RedisStorage) Reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*redisOpTimeout)
	defer cancel()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

var limiterStorage fiber.Storage

// InitLimiterStorage connects the limiter to REDIS_URL when set. Without it
// (or when Redis is unreachable) the limiters keep fiber's in-memory store.
func InitLimiterStorage() {
	if configs.RedisURL == "" {
		logging.Info("rate limiter: in-memory storage")
		return
	}
	opt, err := redis.ParseURL(configs.RedisURL)
	if err != nil {
		logging.Warn("rate limiter: invalid REDIS_URL, using memory", zap.Error(err))
		return
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("rate limiter: redis unreachable, using memory", zap.Error(err))
		_ = client.Close()
		return
	}
	limiterStorage = NewRedisStorage(client, "securite2ie:limiter:")
	logging.Info("✅ rate limiter: redis storage")
}

// CloseLimiterStorage releases the Redis client, if any.
func CloseLimiterStorage() {
	if limiterStorage != nil {
		_ = limiterStorage.Close()
	}
}
