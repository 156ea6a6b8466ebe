package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"quickmenu/internal/domain"
	"quickmenu/internal/service"
)

// RedisAnalytics tracks per-cafe item popularity in sorted sets: a daily set
// that expires after a week and an all-time set.
type RedisAnalytics struct {
	Client *redis.Client
}

func NewRedisAnalytics(client *redis.Client) *RedisAnalytics {
	return &RedisAnalytics{Client: client}
}

func (a *RedisAnalytics) dailyKey(cafeID string) string {
	return "popular:daily:" + time.Now().Format("2006-01-02") + ":" + cafeID
}

func (a *RedisAnalytics) allTimeKey(cafeID string) string {
	return "popular:alltime:" + cafeID
}

func (a *RedisAnalytics) RecordOrder(ctx context.Context, cafeID string, lines []domain.OrderLine) error {
	dailyKey := a.dailyKey(cafeID)
	allTimeKey := a.allTimeKey(cafeID)
	for _, line := range lines {
		if err := a.Client.ZIncrBy(ctx, dailyKey, float64(line.Quantity), line.MenuItemID).Err(); err != nil {
			return err
		}
		if err := a.Client.ZIncrBy(ctx, allTimeKey, float64(line.Quantity), line.MenuItemID).Err(); err != nil {
			return err
		}
	}
	return a.Client.Expire(ctx, dailyKey, 7*24*time.Hour).Err()
}

func (a *RedisAnalytics) TopToday(ctx context.Context, cafeID string, limit int) ([]domain.PopularItem, error) {
	return a.top(ctx, a.dailyKey(cafeID), limit)
}

func (a *RedisAnalytics) TopAllTime(ctx context.Context, cafeID string, limit int) ([]domain.PopularItem, error) {
	return a.top(ctx, a.allTimeKey(cafeID), limit)
}

func (a *RedisAnalytics) top(ctx context.Context, key string, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = 5
	}
	members, err := a.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := []domain.PopularItem{}
	for _, member := range members {
		id, ok := member.Member.(string)
		if !ok {
			continue
		}
		items = append(items, domain.PopularItem{
			MenuItemID: id,
			Count:      int64(member.Score),
		})
	}
	return items, nil
}

var _ service.Analytics = (*RedisAnalytics)(nil)
