package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

// OrderLine is a requested quantity of one menu item.
type OrderLine struct {
	MenuItemID string
	Quantity   int
}

// OrderService handles online order placement and kitchen-side transitions.
type OrderService struct {
	orders     repository.OrderRepository
	history    repository.OrderHistoryRepository
	menu       repository.MenuRepository
	dispatcher events.Dispatcher
}

// OrderDependencies encapsulates repo requirements for the order service.
type OrderDependencies struct {
	OrderRepo   repository.OrderRepository
	HistoryRepo repository.OrderHistoryRepository
	MenuRepo    repository.MenuRepository
	Dispatcher  events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		history:    deps.HistoryRepo,
		menu:       deps.MenuRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Place creates an order for the calling customer. Lines are validated
// against the live menu and priced server-side.
func (s *OrderService) Place(ctx context.Context, accountID string, orderType domain.OrderType, deliveryAddress *string, lines []OrderLine) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, apperrors.NewValidationError("order has no items", nil)
	}
	if orderType != domain.OrderTypePickup && orderType != domain.OrderTypeDelivery {
		return nil, apperrors.NewValidationError("unknown order type", nil)
	}
	if orderType == domain.OrderTypeDelivery && (deliveryAddress == nil || *deliveryAddress == "") {
		return nil, apperrors.NewValidationError("delivery orders require an address", nil)
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, apperrors.NewValidationError("item quantity must be positive", nil)
		}
		ids = append(ids, line.MenuItemID)
	}

	menuItems, err := s.menu.ListItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	order := &domain.Order{
		AccountID:       accountID,
		Type:            orderType,
		Status:          domain.OrderStatusPlaced,
		DeliveryAddress: deliveryAddress,
	}
	for _, line := range lines {
		item, ok := byID[line.MenuItemID]
		if !ok {
			return nil, apperrors.NewValidationError("unknown menu item", map[string]any{"menu_item_id": line.MenuItemID})
		}
		if !item.Available {
			return nil, apperrors.NewValidationError("menu item unavailable", map[string]any{"menu_item_id": line.MenuItemID})
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:     item.ID,
			Name:           item.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: item.PriceCents,
		})
		order.TotalCents += item.PriceCents * int64(line.Quantity)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderPlaced,
		ActorID:   accountID,
		Timestamp: time.Now(),
		Payload: events.OrderPlacedPayload{
			OrderID:    order.ID,
			Type:       order.Type,
			TotalCents: order.TotalCents,
			ItemCount:  len(order.Items),
		},
	})
	return order, nil
}

// ListOwn returns the caller's orders, newest first.
func (s *OrderService) ListOwn(ctx context.Context, accountID string, limit, offset int) ([]domain.Order, error) {
	return s.orders.ListByAccount(ctx, accountID, limit, offset)
}

// GetOwn loads one of the caller's orders. Another customer's order is
// reported as not found.
func (s *OrderService) GetOwn(ctx context.Context, accountID, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AccountID != accountID {
		return nil, apperrors.NewNotFound("order", nil)
	}
	return order, nil
}

// ListByStatus returns the kitchen queue for one status.
func (s *OrderService) ListByStatus(ctx context.Context, status domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	return s.orders.ListByStatus(ctx, status, limit, offset)
}

// History returns the audit trail for an order.
func (s *OrderService) History(ctx context.Context, orderID string) ([]domain.OrderHistoryEntry, error) {
	return s.history.ListByOrder(ctx, orderID)
}

var orderTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusPlaced:    {domain.OrderStatusPreparing, domain.OrderStatusCancelled},
	domain.OrderStatusPreparing: {domain.OrderStatusReady, domain.OrderStatusCancelled},
	domain.OrderStatusReady:     {domain.OrderStatusCompleted},
}

// UpdateStatus moves an order through its lifecycle on behalf of staff.
func (s *OrderService) UpdateStatus(ctx context.Context, actorID, orderID string, status domain.OrderStatus, note string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range orderTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.NewValidationError("illegal order status transition", map[string]any{
			"from": order.Status,
			"to":   status,
		})
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, err
	}

	old := order.Status
	order.Status = status
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrderStatusChanged,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: events.OrderStatusChangedPayload{
			OrderID:   order.ID,
			OldStatus: old,
			NewStatus: status,
			Note:      note,
		},
	})
	return order, nil
}

// DailySummary aggregates non-cancelled orders per day for the back office.
func (s *OrderService) DailySummary(ctx context.Context, from, to time.Time) ([]repository.DailyOrderSummary, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if !from.Before(to) {
		return nil, apperrors.NewValidationError("invalid summary range", nil)
	}
	return s.orders.DailySummary(ctx, from, to)
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
