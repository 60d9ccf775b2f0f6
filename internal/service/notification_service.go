package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
)

const notificationDedupTTL = 10 * time.Minute

// NotificationService emits notifications for domain events. A redis
// SETNX key deduplicates fan-out when the same event is delivered more
// than once; without redis every delivery notifies.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *persistence.Redis
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, redis *persistence.Redis, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		redis:      redis,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketEvent)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketEvent)
	n.dispatcher.Subscribe(events.EventCommentAdded, n.handleTicketEvent)
}

func (n *NotificationService) handleTicketEvent(ctx context.Context, event events.Event) error {
	if !n.firstDelivery(ctx, event.ID) {
		return nil
	}
	n.logger.Info("notify",
		zap.String("event_type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
		zap.Int64("actor_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) firstDelivery(ctx context.Context, eventID string) bool {
	if n.redis == nil || n.redis.Client == nil || eventID == "" {
		return true
	}
	key := fmt.Sprintf("notify:seen:%s", eventID)
	ok, err := n.redis.Client.SetNX(ctx, key, 1, notificationDedupTTL).Result()
	if err != nil {
		// redis down: notify anyway
		return true
	}
	return ok
}
