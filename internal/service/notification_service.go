package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/health-facility-service/internal/events"
)

// NotificationOutboxKey is the Redis list that buffers notification records
// for downstream delivery.
const NotificationOutboxKey = "notifications:outbox"

// NotificationService pushes health-data events onto a Redis outbox so
// delivery can happen outside the request path.
type NotificationService struct {
	dispatcher events.Dispatcher
	client     *redis.Client
	logger     *zap.Logger
}

// NewNotificationService creates the service. The Redis client may be nil, in
// which case events are only logged.
func NewNotificationService(dispatcher events.Dispatcher, client *redis.Client, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, client: client, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventHealthDataReported, n.handleEvent)
	n.dispatcher.Subscribe(events.EventHealthDataStatusChanged, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("health data event",
		zap.String("event_type", string(event.Type)),
		zap.String("health_data_id", event.HealthDataID),
		zap.String("actor_id", event.Actor.UserID))

	if n.client == nil {
		return nil
	}
	record, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := n.client.LPush(ctx, NotificationOutboxKey, record).Err(); err != nil {
		n.logger.Warn("failed to enqueue notification", zap.Error(err))
		return err
	}
	return nil
}
