package messaging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/marketplace-routes/internal/analytics"
	"github.com/serroba/marketplace-routes/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRunnable records lifecycle calls.
type fakeRunnable struct {
	topic       string
	started     bool
	stopped     bool
	startErr    error
	shutdownErr error
}

func (f *fakeRunnable) Topic() string { return f.topic }

func (f *fakeRunnable) Start(context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}

	f.started = true

	return nil
}

func (f *fakeRunnable) Shutdown() error {
	f.stopped = true

	return f.shutdownErr
}

func newGroup(runnables ...*fakeRunnable) (*messaging.ConsumerGroup, *mockSubscriber) {
	sub := newMockSubscriber()
	group := messaging.NewConsumerGroup(sub, zap.NewNop())

	for _, r := range runnables {
		group.Add(r)
	}

	return group, sub
}

func TestConsumerGroup(t *testing.T) {
	t.Run("starts every consumer and lists topics", func(t *testing.T) {
		resolved := &fakeRunnable{topic: analytics.TopicRouteResolved}
		issued := &fakeRunnable{topic: analytics.TopicSEOURLIssued}
		group, _ := newGroup(resolved, issued)

		require.NoError(t, group.Start(context.Background()))

		assert.True(t, resolved.started)
		assert.True(t, issued.started)
		assert.Equal(t, []string{"route.resolved", "seo_url.issued"}, group.Topics())
	})

	t.Run("stops started consumers when one fails to start", func(t *testing.T) {
		resolved := &fakeRunnable{topic: analytics.TopicRouteResolved}
		created := &fakeRunnable{topic: analytics.TopicProfileCreated, startErr: errors.New("start error")}
		group, _ := newGroup(resolved, created)

		err := group.Start(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile.created")
		assert.True(t, resolved.stopped)
		assert.False(t, created.started)
	})

	t.Run("shutdown stops all consumers and closes the subscriber", func(t *testing.T) {
		resolved := &fakeRunnable{topic: analytics.TopicRouteResolved}
		created := &fakeRunnable{topic: analytics.TopicProfileCreated}
		group, sub := newGroup(resolved, created)
		require.NoError(t, group.Start(context.Background()))

		require.NoError(t, group.Shutdown())

		assert.True(t, resolved.stopped)
		assert.True(t, created.stopped)
		assert.True(t, sub.closed)
	})

	t.Run("shutdown joins errors and stops everyone", func(t *testing.T) {
		resolved := &fakeRunnable{topic: analytics.TopicRouteResolved, shutdownErr: errors.New("shutdown error 1")}
		created := &fakeRunnable{topic: analytics.TopicProfileCreated, shutdownErr: errors.New("shutdown error 2")}
		group, _ := newGroup(resolved, created)

		err := group.Shutdown()

		require.Error(t, err)
		assert.ErrorIs(t, err, resolved.shutdownErr)
		assert.ErrorIs(t, err, created.shutdownErr)
		assert.Contains(t, err.Error(), "stop consumer for route.resolved")
		assert.True(t, created.stopped)
	})
}
