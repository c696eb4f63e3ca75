package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"oglasnik-service/internal/constants"
	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/contracts"
	"oglasnik-service/internal/core/port"
	"oglasnik-service/internal/core/port/usecases_port"
	"oglasnik-service/pkg/rabbitmq/rabbitmq_common"
	"oglasnik-service/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AnnouncementConsumerAdapter listens to the announcement lifecycle queue
// and routes each event to the matching use case. Both event kinds share
// one queue and are told apart by the event-type header.
type AnnouncementConsumerAdapter struct {
	consumer rabbitmq_consumer.Consumer
	saveUC   usecases_port.SaveAnnouncementUseCase
	removeUC usecases_port.RemoveAnnouncementUseCase
	logger   port.LoggerPort
}

func NewAnnouncementConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	connManager *rabbitmq_common.ConnectionManager,
	saveUC usecases_port.SaveAnnouncementUseCase,
	removeUC usecases_port.RemoveAnnouncementUseCase,
	logger port.LoggerPort,
) (*AnnouncementConsumerAdapter, error) {

	adapter := &AnnouncementConsumerAdapter{
		saveUC:   saveUC,
		removeUC: removeUC,
		logger:   logger.WithFields(port.Fields{"component": "AnnouncementConsumerAdapter"}),
	}

	consumer, err := rabbitmq_consumer.NewDistributingConsumer(consumerCfg, adapter.handleMessage, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for announcement events: %w", err)
	}
	adapter.consumer = consumer

	return adapter, nil
}

// handleMessage validates the delivery against its schema and dispatches it.
// A returned error sends the message through the retry loop.
func (a *AnnouncementConsumerAdapter) handleMessage(d amqp.Delivery) error {
	eventType, _ := d.Headers["event-type"].(string)
	eventVersion, _ := d.Headers["event-version"].(string)

	msgLogger := a.logger.WithFields(port.Fields{
		"event_type":    eventType,
		"event_version": eventVersion,
		"delivery_tag":  d.DeliveryTag,
	})

	ctx := contextkeys.ContextWithLogger(context.Background(), msgLogger)
	if traceID, ok := d.Headers["x-trace-id"].(string); ok && traceID != "" {
		ctx = contextkeys.ContextWithTraceID(ctx, traceID)
		msgLogger = msgLogger.WithFields(port.Fields{"trace_id": traceID})
		ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	}

	if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
		msgLogger.Error("Message failed schema validation", err, nil)
		return err
	}

	switch eventType {
	case constants.EventAnnouncementPublished:
		return a.handlePublished(ctx, d.Body)
	case constants.EventAnnouncementRemoved:
		return a.handleRemoved(ctx, d.Body)
	default:
		err := fmt.Errorf("unknown event type '%s'", eventType)
		msgLogger.Error("Dropping message", err, nil)
		return err
	}
}

func (a *AnnouncementConsumerAdapter) handlePublished(ctx context.Context, body []byte) error {
	var dto AnnouncementPublishedDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return fmt.Errorf("failed to unmarshal published event: %w", err)
	}
	if dto.Announcement.ID == uuid.Nil {
		return fmt.Errorf("published event carries a nil announcement id")
	}

	return a.saveUC.Execute(ctx, toDomainAnnouncement(dto))
}

func (a *AnnouncementConsumerAdapter) handleRemoved(ctx context.Context, body []byte) error {
	var dto AnnouncementRemovedDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return fmt.Errorf("failed to unmarshal removed event: %w", err)
	}
	if dto.AnnouncementID == uuid.Nil {
		return fmt.Errorf("removed event carries a nil announcement id")
	}

	return a.removeUC.Execute(ctx, dto.AnnouncementID)
}

// Start implements EventListenerPort.
func (a *AnnouncementConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

// Close implements EventListenerPort.
func (a *AnnouncementConsumerAdapter) Close() error {
	return a.consumer.Close()
}
