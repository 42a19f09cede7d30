package cache

import (
	"context"
	"fmt"
	"time"

	"partner-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// SlotsKey is the cache key for a partner's published-slot listing. It is
// deleted on every slot status mutation.
func SlotsKey(partnerID string) string {
	return fmt.Sprintf("slots:%s", partnerID)
}

// SlotsTTL bounds staleness when an invalidation is missed.
const SlotsTTL = 60 * time.Second

func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}
