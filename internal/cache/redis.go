package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"example.com/finance-planner/internal/models"
)

// InputCache — сквозной кэш сохраненных параметров калькуляторов поверх Redis.
// Кэшируются только входные записи; промах всегда разрешается через Postgres.
type InputCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInputCache создает кэш входных параметров на заданном Redis.
func NewInputCache(addr, password string, db int, ttl time.Duration) *InputCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &InputCache{client: client, ttl: ttl}
}

// Ping проверяет доступность Redis.
func (c *InputCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis.
func (c *InputCache) Close() error {
	return c.client.Close()
}

// Get возвращает сериализованные параметры калькулятора из кэша.
func (c *InputCache) Get(ctx context.Context, userID uuid.UUID, kind models.CalculatorKind) ([]byte, bool) {
	value, err := c.client.Get(ctx, inputKey(userID, kind)).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set сохраняет сериализованные параметры калькулятора в кэш.
func (c *InputCache) Set(ctx context.Context, userID uuid.UUID, kind models.CalculatorKind, value []byte) error {
	return c.client.Set(ctx, inputKey(userID, kind), value, c.ttl).Err()
}

func inputKey(userID uuid.UUID, kind models.CalculatorKind) string {
	return fmt.Sprintf("calc_input:%s:%s", userID, kind)
}
