package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/business/v1/usage"
	"github.com/ribgsilva/burn-note/sys"
	"gocloud.dev/pubsub"
)

const (
	EventCreate  = "create"
	EventPremium = "premium"
)

type Creator interface {
	Create(ctx context.Context, newN note.NewNote) (string, error)
}

type PremiumSetter interface {
	SetPremium(ctx context.Context, deviceId string, premium bool) error
}

// Consumer applies note events coming from the notes topic
type Consumer struct {
	notes Creator
	usage PremiumSetter
}

func New(notes Creator, usage PremiumSetter) *Consumer {
	return &Consumer{notes: notes, usage: usage}
}

// Consume receives messages until ctx is cancelled, handling at most maxWorkers at a time.
// It waits for the running handlers before returning.
func (c *Consumer) Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()

			if err := c.handle(ctx, m.Body); err != nil && m.Nackable() {
				logger.Errorw("consumer", "status", "message will be redelivered", "ERROR", err)
				m.Nack()
				return
			}
			m.Ack()
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// handle returns an error only when a retry could succeed
func (c *Consumer) handle(ctx context.Context, body []byte) error {
	logger := sys.R.Log

	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		logger.Errorw("consumer", "status", "failed to parse body", "ERROR", err)
		return nil
	}
	logger.Infow("consumer", "status", "message received", "type", e.Type)

	switch e.Type {
	case EventCreate:
		var n note.NewNote
		if err := decode(e.Data, &n); err != nil {
			logger.Errorw("consumer", "type", e.Type, "status", "invalid data", "ERROR", err)
			return nil
		}

		id, err := c.notes.Create(ctx, n)
		switch {
		case errors.Is(err, note.ErrInvalidNote), errors.Is(err, usage.ErrLimitReached):
			logger.Infow("consumer", "type", e.Type, "status", "rejected", "device", n.DeviceId, "reason", err.Error())
			return nil
		case err != nil:
			return fmt.Errorf("create note: %w", err)
		}
		logger.Infow("consumer", "type", e.Type, "status", "created", "device", n.DeviceId, "note", note.Short(id))
	case EventPremium:
		var p note.Premium
		if err := decode(e.Data, &p); err != nil || p.DeviceId == "" {
			logger.Errorw("consumer", "type", e.Type, "status", "invalid data", "ERROR", err)
			return nil
		}

		if err := c.usage.SetPremium(ctx, p.DeviceId, p.Premium); err != nil {
			return fmt.Errorf("set premium: %w", err)
		}
		logger.Infow("consumer", "type", e.Type, "status", "updated", "device", p.DeviceId, "premium", p.Premium)
	default:
		logger.Errorw("consumer", "status", "unknown event type", "type", e.Type)
	}
	return nil
}

func decode(data any, v any) error {
	marshal, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(marshal, v)
}
