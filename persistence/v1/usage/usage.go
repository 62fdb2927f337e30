package usage

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/burn-note/sys"
	"strconv"
)

// Increment adds one to the device counter and returns the record as it stands after the increment.
func Increment(ctx context.Context, deviceId string) (Usage, error) {
	cache := sys.R.Cache
	key := fmt.Sprintf(usageKey, deviceId)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()

	var incr *redis.IntCmd
	var premium *redis.StringCmd
	_, err := cache.TxPipelined(tcCtx, func(p redis.Pipeliner) error {
		incr = p.HIncrBy(tcCtx, key, fieldCount, 1)
		premium = p.HGet(tcCtx, key, fieldPremium)
		return nil
	})
	if err != nil && err != redis.Nil {
		return Usage{}, fmt.Errorf("failed to increment usage of %s: %w", deviceId, err)
	}

	return Usage{
		DeviceId: deviceId,
		Count:    incr.Val(),
		Premium:  parseBool(premium.Val()),
	}, nil
}

// Decrement gives back one creation to the device counter.
func Decrement(ctx context.Context, deviceId string) error {
	cache := sys.R.Cache
	key := fmt.Sprintf(usageKey, deviceId)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()

	if err := cache.HIncrBy(tcCtx, key, fieldCount, -1).Err(); err != nil {
		return fmt.Errorf("failed to decrement usage of %s: %w", deviceId, err)
	}
	return nil
}

func SetPremium(ctx context.Context, deviceId string, premium bool) error {
	cache := sys.R.Cache
	key := fmt.Sprintf(usageKey, deviceId)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()

	if err := cache.HSet(tcCtx, key, fieldPremium, strconv.FormatBool(premium)).Err(); err != nil {
		return fmt.Errorf("failed to set premium of %s: %w", deviceId, err)
	}
	return nil
}

// Find returns the usage record of a device. Unknown devices yield a zero record.
func Find(ctx context.Context, deviceId string) (Usage, error) {
	cache := sys.R.Cache
	key := fmt.Sprintf(usageKey, deviceId)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()

	fields, err := cache.HGetAll(tcCtx, key).Result()
	if err != nil {
		return Usage{}, fmt.Errorf("failed to get usage of %s: %w", deviceId, err)
	}

	u := Usage{DeviceId: deviceId, Premium: parseBool(fields[fieldPremium])}
	if c, ok := fields[fieldCount]; ok {
		if u.Count, err = strconv.ParseInt(c, 10, 64); err != nil {
			return Usage{}, fmt.Errorf("corrupt usage count for %s: %w", deviceId, err)
		}
	}
	return u, nil
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
