package throttler

import (
	"context"
	"fmt"
	"okakbot/sources/platform"
	"okakbot/sources/tracing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Throttler allows at most one reply per chat within the configured limit.
// It is a no-op without a Redis client or with a zero limit, and fails open
// on Redis errors.
type Throttler struct {
	client *redis.Client
	config *ThrottlerConfig
	log    *tracing.Logger
	ctx    context.Context
}

func NewThrottler(client *redis.Client, config *ThrottlerConfig, log *tracing.Logger) *Throttler {
	return &Throttler{client: client, config: config, log: log, ctx: context.Background()}
}

func (x *Throttler) Enabled() bool {
	return x.client != nil && x.config.Limit > 0
}

func (x *Throttler) IsAllowed(chatId int64) bool {
	if !x.Enabled() {
		return true
	}

	ctx, cancel := platform.ContextTimeout(x.ctx)
	defer cancel()

	success, err := x.client.SetNX(ctx, key(chatId), time.Now().Unix(), x.config.Limit).Result()
	if err != nil {
		x.log.E("Error setting throttle key", tracing.InnerError, err, tracing.ChatId, chatId)
		return true
	}

	return success
}

func key(chatId int64) string {
	return fmt.Sprintf("okakbot:throttle:%d", chatId)
}
