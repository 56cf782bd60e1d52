package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"anti-fraud-system/config"
	"anti-fraud-system/internal/models"
)

type Client struct {
	rdb *redisv9.Client
}

func NewClient(cfg *config.Config) (*Client, error) {
	rdb := redisv9.NewClient(&redisv9.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// SaveDetection сохраняет результат проверки инвойса в Redis с TTL 1 час
func (c *Client) SaveDetection(invoiceID string, result *models.DetectionResult) error {
	ctx := context.Background()
	key := fmt.Sprintf("invoice:%s:detection", invoiceID)

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal detection result: %w", err)
	}

	return c.rdb.Set(ctx, key, data, time.Hour).Err()
}

// GetDetection получает результат проверки инвойса из Redis
func (c *Client) GetDetection(invoiceID string) (*models.DetectionResult, error) {
	ctx := context.Background()
	key := fmt.Sprintf("invoice:%s:detection", invoiceID)

	data, err := c.rdb.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get detection result: %w", err)
	}

	var result models.DetectionResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal detection result: %w", err)
	}

	return &result, nil
}

// IncrementOutcomeStats увеличивает счетчик исходов (approved/rejected)
func (c *Client) IncrementOutcomeStats(status string) error {
	ctx := context.Background()
	key := fmt.Sprintf("outcome_stats:%s", status)
	return c.rdb.Incr(ctx, key).Err()
}

// GetOutcomeStats возвращает счетчик исходов для статуса
func (c *Client) GetOutcomeStats(status string) (int64, error) {
	ctx := context.Background()
	key := fmt.Sprintf("outcome_stats:%s", status)
	count, err := c.rdb.Get(ctx, key).Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	return count, err
}

// ClearDetectionData очищает кэш результатов и счетчики исходов
func (c *Client) ClearDetectionData() error {
	ctx := context.Background()

	for _, pattern := range []string{"invoice:*:detection", "outcome_stats:*"} {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}

	return nil
}
