package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"

	"pokeproxy/internal/config"
	"pokeproxy/internal/logging"
)

type Router struct {
	router *message.Router
}

// NewRouter consumes the lookups topic and logs every event it sees.
func NewRouter(
	ctx context.Context,
	cfg config.KafkaConfig,
	baseLogger logging.Logger,
) (*Router, error) {
	if !cfg.Enabled {
		return &Router{router: nil}, nil
	}

	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	router, err := message.NewRouter(message.RouterConfig{}, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	subCfg := kafka.SubscriberConfig{
		Brokers:       cfg.Brokers,
		Unmarshaler:   kafka.DefaultMarshaler{},
		ConsumerGroup: cfg.GroupID,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
		NackResendSleep:     5 * time.Second,
		ReconnectRetrySleep: 10 * time.Second,
	}

	subscriber, err := kafka.NewSubscriber(subCfg, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create kafka subscriber: %w", err)
	}

	topic := lookupsTopic(cfg.TopicPrefix)
	logger := baseLogger.With("component", "lookup_consumer")

	router.AddNoPublisherHandler(
		"pokemon-lookups-handler",
		topic,
		subscriber,
		lookupHandler(logger),
	)

	return &Router{router: router}, nil
}

// lookupHandler acks malformed messages after logging them; redelivery
// would not fix them.
func lookupHandler(logger logging.Logger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		var env Envelope
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			logger.Error("dropping malformed envelope", "uuid", msg.UUID, "error", err)
			return nil
		}
		if env.Type != PokemonViewedType {
			logger.Debug("ignoring event", "type", env.Type, "uuid", msg.UUID)
			return nil
		}

		var ev PokemonViewed
		if err := json.Unmarshal(env.Payload, &ev); err != nil {
			logger.Error("dropping malformed payload", "uuid", msg.UUID, "error", err)
			return nil
		}

		logger.Info("pokemon viewed",
			"id", ev.ID,
			"name", ev.Name,
			"search", ev.Search,
			"correlation_id", env.CorrelationID,
			"occurred_at", env.OccurredAt,
		)
		return nil
	}
}

func (r *Router) Run(ctx context.Context) error {
	if r.router == nil {
		return nil // Kafka disabled
	}
	return r.router.Run(ctx)
}

func (r *Router) Close(ctx context.Context) error {
	if r.router == nil {
		return nil
	}
	return r.router.Close()
}
