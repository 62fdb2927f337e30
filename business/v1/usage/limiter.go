package usage

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/burn-note/persistence/v1/usage"
	"go.uber.org/zap"
)

// ErrLimitReached is returned when a free device has used up its creations
var ErrLimitReached = errors.New("note limit reached")

type Usage struct {
	DeviceId string `json:"deviceId"`
	Count    int64  `json:"count"`
	Premium  bool   `json:"premium"`
}

// Limiter enforces the lifetime creation quota of free devices.
// Premium devices are counted but never limited.
type Limiter struct {
	log       *zap.SugaredLogger
	freeLimit int64
}

func NewLimiter(log *zap.SugaredLogger, freeLimit int) *Limiter {
	return &Limiter{log: log, freeLimit: int64(freeLimit)}
}

// Acquire charges one creation to the device. The increment happens first so
// concurrent creations from one device can not both slip under the limit.
func (l *Limiter) Acquire(ctx context.Context, deviceId string) error {
	u, err := usage.Increment(ctx, deviceId)
	if err != nil {
		return fmt.Errorf("acquire quota: %w", err)
	}
	if u.Premium || u.Count <= l.freeLimit {
		return nil
	}

	l.Release(ctx, deviceId)
	return ErrLimitReached
}

// Release gives back a creation charged by Acquire. Failures are only logged.
func (l *Limiter) Release(ctx context.Context, deviceId string) {
	if err := usage.Decrement(ctx, deviceId); err != nil {
		l.log.Errorw("usage", "status", "could not release quota", "ERROR", err)
	}
}

func (l *Limiter) SetPremium(ctx context.Context, deviceId string, premium bool) error {
	return usage.SetPremium(ctx, deviceId, premium)
}

func (l *Limiter) Find(ctx context.Context, deviceId string) (Usage, error) {
	u, err := usage.Find(ctx, deviceId)
	return Usage(u), err
}
