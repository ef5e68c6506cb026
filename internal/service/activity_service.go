package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/repository"
)

// ActivityService records domain events: order status transitions go to the
// audit table, everything else is logged for the operations trail.
type ActivityService struct {
	dispatcher events.Dispatcher
	history    repository.OrderHistoryRepository
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, history repository.OrderHistoryRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		history:    history,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventOrderPlaced, a.handleOrderPlaced)
	a.dispatcher.Subscribe(events.EventOrderStatusChanged, a.handleOrderStatusChanged)
	a.dispatcher.Subscribe(events.EventReservationCreated, a.handleReservationEvent)
	a.dispatcher.Subscribe(events.EventReservationStatusChanged, a.handleReservationEvent)
}

func (a *ActivityService) handleOrderPlaced(ctx context.Context, event events.Event) error {
	a.logger.Info("OrderPlaced", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))

	payload, ok := event.Payload.(events.OrderPlacedPayload)
	if !ok || a.history == nil {
		return nil
	}
	return a.history.Insert(ctx, &domain.OrderHistoryEntry{
		OrderID:    payload.OrderID,
		FromStatus: domain.OrderStatusPlaced,
		ToStatus:   domain.OrderStatusPlaced,
		ActorID:    event.ActorID,
		Note:       "order placed",
	})
}

func (a *ActivityService) handleOrderStatusChanged(ctx context.Context, event events.Event) error {
	a.logger.Info("OrderStatusChanged", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))

	payload, ok := event.Payload.(events.OrderStatusChangedPayload)
	if !ok || a.history == nil {
		return nil
	}
	return a.history.Insert(ctx, &domain.OrderHistoryEntry{
		OrderID:    payload.OrderID,
		FromStatus: payload.OldStatus,
		ToStatus:   payload.NewStatus,
		ActorID:    event.ActorID,
		Note:       payload.Note,
	})
}

func (a *ActivityService) handleReservationEvent(_ context.Context, event events.Event) error {
	a.logger.Info(string(event.Type), zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	return nil
}
