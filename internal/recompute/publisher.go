// Package recompute - очередь пересчета регионов в Redis: издатель, воркеры и плановый пересчет.
package recompute

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// pendingSetKey хранит регионы, уже стоящие в очереди
	pendingSetKey = "safety:recompute:pending"
	queueKey      = "safety:recompute:queue"
)

// markScript ставит регион в очередь, только если его еще нет в pendingSetKey
var markScript = redis.NewScript(`
local pushed = 0
for _, id in ipairs(ARGV) do
	if redis.call('SADD', KEYS[1], id) == 1 then
		redis.call('LPUSH', KEYS[2], id)
		pushed = pushed + 1
	end
end
return pushed
`)

// RedisPublisher - реализация service.RegionMarker поверх списка Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// MarkRegions помечает регионы для пересчета. Повторная пометка до обработки ничего не добавляет.
func (p *RedisPublisher) MarkRegions(ctx context.Context, regionIDs []uuid.UUID) error {
	if len(regionIDs) == 0 {
		return nil
	}

	args := make([]any, len(regionIDs))
	for i, id := range regionIDs {
		args[i] = id.String()
	}

	if err := markScript.Run(ctx, p.redisClient, []string{pendingSetKey, queueKey}, args...).Err(); err != nil {
		return fmt.Errorf("failed to mark regions for recomputation: %w", err)
	}
	return nil
}

// Pending возвращает число регионов, ожидающих пересчета
func (p *RedisPublisher) Pending(ctx context.Context) (int64, error) {
	n, err := p.redisClient.SCard(ctx, pendingSetKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count pending regions: %w", err)
	}
	return n, nil
}
