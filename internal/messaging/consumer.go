package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Handler processes a single decoded event.
type Handler[T any] func(ctx context.Context, event *T) error

// Consumer subscribes to one topic and feeds each JSON message to a typed handler.
// Messages that fail to decode, fail to handle, or make the handler panic are
// nacked for redelivery.
type Consumer[T any] struct {
	subscriber message.Subscriber
	topic      string
	handler    Handler[T]
	logger     *zap.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewConsumer creates a new generic consumer for a specific event type.
func NewConsumer[T any](
	subscriber message.Subscriber,
	topic string,
	handler Handler[T],
	logger *zap.Logger,
) *Consumer[T] {
	return &Consumer[T]{
		subscriber: subscriber,
		topic:      topic,
		handler:    handler,
		logger:     logger.With(zap.String("topic", topic)),
		done:       make(chan struct{}),
	}
}

// Topic returns the topic this consumer subscribes to.
func (c *Consumer[T]) Topic() string {
	return c.topic
}

// Start subscribes and processes messages in the background until ctx is
// cancelled, the subscription closes, or Shutdown is called.
func (c *Consumer[T]) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	msgs, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		cancel()

		return fmt.Errorf("subscribe %s: %w", c.topic, err)
	}

	c.cancel = cancel

	go c.consume(ctx, msgs)

	return nil
}

func (c *Consumer[T]) consume(ctx context.Context, msgs <-chan *message.Message) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			if c.process(ctx, msg) {
				msg.Ack()
			} else {
				msg.Nack()
			}
		}
	}
}

func (c *Consumer[T]) process(ctx context.Context, msg *message.Message) (ok bool) {
	logger := c.logger.With(zap.String("message_uuid", msg.UUID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("event handler panicked", zap.Any("panic", r))

			ok = false
		}
	}()

	var event T
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		logger.Error("failed to decode event", zap.Error(err))

		return false
	}

	if err := c.handler(ctx, &event); err != nil {
		logger.Error("failed to handle event", zap.Error(err))

		return false
	}

	logger.Debug("processed event")

	return true
}

// Shutdown stops the consumer and waits for the in-flight message to finish.
// It returns immediately for a consumer that was never started.
func (c *Consumer[T]) Shutdown() error {
	if c.cancel == nil {
		return nil
	}

	c.cancel()
	<-c.done

	return nil
}
