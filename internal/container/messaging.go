package container

import (
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/marketplace-routes/internal/analytics"
	analyticsstore "github.com/serroba/marketplace-routes/internal/analytics/store"
	"github.com/serroba/marketplace-routes/internal/messaging"
	"go.uber.org/zap"
)

const consumerGroup = "analytics"

// PublisherGroupPackage provides the Redis Streams publisher and one typed
// publish function per analytics topic.
func PublisherGroupPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{Client: do.MustInvoke[*redis.Client](i)},
			messaging.NewZapLoggerAdapter(do.MustInvoke[*zap.Logger](i)),
		)
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(i, func(i *do.Injector) (messaging.Publish[analytics.RouteResolvedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.RouteResolvedEvent](group.Publisher(), analytics.TopicRouteResolved), nil
	})

	do.Provide(i, func(i *do.Injector) (messaging.Publish[analytics.SEOURLIssuedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.SEOURLIssuedEvent](group.Publisher(), analytics.TopicSEOURLIssued), nil
	})

	do.Provide(i, func(i *do.Injector) (messaging.Publish[analytics.ProfileCreatedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.ProfileCreatedEvent](group.Publisher(), analytics.TopicProfileCreated), nil
	})
}

// ConsumerGroupPackage provides the analytics consumers, one per topic, sharing
// a Redis Streams subscriber in the "analytics" consumer group.
func ConsumerGroupPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (analytics.Store, error) {
		return analyticsstore.NewNoop(do.MustInvoke[*zap.Logger](i)), nil
	})

	do.Provide(i, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		events := do.MustInvoke[analytics.Store](i)

		subscriber, err := redisstream.NewSubscriber(
			redisstream.SubscriberConfig{
				Client:        do.MustInvoke[*redis.Client](i),
				ConsumerGroup: consumerGroup,
			},
			messaging.NewZapLoggerAdapter(logger),
		)
		if err != nil {
			return nil, err
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer(subscriber, analytics.TopicRouteResolved, events.SaveRouteResolved, logger))
		group.Add(messaging.NewConsumer(subscriber, analytics.TopicSEOURLIssued, events.SaveSEOURLIssued, logger))
		group.Add(messaging.NewConsumer(subscriber, analytics.TopicProfileCreated, events.SaveProfileCreated, logger))

		return group, nil
	})
}
