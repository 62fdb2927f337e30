package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/burn-note/app/messsaging/consumers/v1/notes"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/business/v1/note/notetest"
	"github.com/ribgsilva/burn-note/business/v1/usage"
	"github.com/ribgsilva/burn-note/platform/env"
	"github.com/ribgsilva/burn-note/platform/logger"
	"github.com/ribgsilva/burn-note/platform/scheduler"
	"github.com/ribgsilva/burn-note/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"os"
	"testing"
	"time"
)

type NoteTests struct {
	topic   *pubsub.Topic
	store   *notetest.Store
	limiter *usage.Limiter
	redis   *miniredis.Miniredis
}

func TestNote(t *testing.T) {
	log, err := logger.New("Burn-Note-Messaging-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "2s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "5s")
	sys.Configs.Notes.FreeLimit = env.IntDefault(log, "NOTES_FREE_LIMIT", "1")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// redis
	rdb := redis.NewClient(&redis.Options{Addr: sys.Configs.Cache.ConnectionURL})
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	store := notetest.New()
	deferred := scheduler.NewDeferred(log, time.Second)
	defer func() {
		_ = deferred.Stop(context.Background())
	}()
	limiter := usage.NewLimiter(log, sys.Configs.Notes.FreeLimit)
	svc := note.NewService(log, store, limiter, note.NewDestroyer(log, store, deferred, time.Second), 1024)

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- notes.New(svc, limiter).Consume(withCancel, subscription, 2)
	}()

	defer func() {
		cancelFunc()
		if err := <-done; err != nil {
			t.Errorf("listener error: %s", err)
		}

		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()
		_ = subscription.Shutdown(stdCtx)
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic, store: store, limiter: limiter, redis: s}

	t.Run("createEvent", noteTests.createEvent)
	t.Run("premiumLiftsLimit", noteTests.premiumLiftsLimit)
	t.Run("badEventsAreDropped", noteTests.badEventsAreDropped)
}

func (nt *NoteTests) send(t *testing.T, event any) {
	marshal, err := json.Marshal(event)
	require.NoError(t, err, "failed to build message body")

	err = nt.topic.Send(context.Background(), &pubsub.Message{Body: marshal})
	require.NoError(t, err, "failed to post message to topic")
}

func (nt *NoteTests) created(t *testing.T, deviceId string) func() bool {
	return func() bool {
		u, err := nt.limiter.Find(context.Background(), deviceId)
		return err == nil && u.Count == 1
	}
}

func (nt *NoteTests) createEvent(t *testing.T) {
	nt.send(t, note.Event{
		Type: notes.EventCreate,
		Data: note.NewNote{Content: "ciphertext", DeviceId: "device-create"},
	})

	assert.Eventually(t, nt.created(t, "device-create"), 5*time.Second, 20*time.Millisecond)
}

func (nt *NoteTests) premiumLiftsLimit(t *testing.T) {
	nt.send(t, note.Event{
		Type: notes.EventPremium,
		Data: note.Premium{DeviceId: "device-premium", Premium: true},
	})
	assert.Eventually(t, func() bool {
		return nt.redis.HGet("usage.device-premium", "premium") == "true"
	}, 5*time.Second, 20*time.Millisecond)

	for i := 0; i < 3; i++ {
		nt.send(t, note.Event{
			Type: notes.EventCreate,
			Data: note.NewNote{Content: "ciphertext", DeviceId: "device-premium"},
		})
	}
	assert.Eventually(t, func() bool {
		u, err := nt.limiter.Find(context.Background(), "device-premium")
		return err == nil && u.Count == 3
	}, 5*time.Second, 20*time.Millisecond)
}

func (nt *NoteTests) badEventsAreDropped(t *testing.T) {
	require.NoError(t, nt.topic.Send(context.Background(), &pubsub.Message{Body: []byte("not json")}))
	nt.send(t, note.Event{Type: "unknown"})
	nt.send(t, note.Event{Type: notes.EventCreate, Data: note.NewNote{DeviceId: "device-empty"}})

	// a valid event behind the bad ones proves the consumer kept going
	nt.send(t, note.Event{
		Type: notes.EventCreate,
		Data: note.NewNote{Content: "ciphertext", DeviceId: "device-after"},
	})
	assert.Eventually(t, nt.created(t, "device-after"), 5*time.Second, 20*time.Millisecond)

	u, err := nt.limiter.Find(context.Background(), "device-empty")
	require.NoError(t, err)
	assert.Zero(t, u.Count)
}
