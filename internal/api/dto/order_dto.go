package dto

import (
	"time"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// OrderLineRequest is one requested menu item on a new order.
type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest payload for placing an order.
type PlaceOrderRequest struct {
	Type            string             `json:"type"`
	DeliveryAddress *string            `json:"delivery_address"`
	Items           []OrderLineRequest `json:"items"`
}

// UpdateOrderStatusRequest payload for kitchen status changes.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// OrderItemResponse is one line on an order.
type OrderItemResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// OrderResponse response.
type OrderResponse struct {
	ID              string              `json:"id"`
	AccountID       string              `json:"account_id"`
	Type            domain.OrderType    `json:"type"`
	Status          domain.OrderStatus  `json:"status"`
	TotalCents      int64               `json:"total_cents"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
}

// OrderHistoryEntryResponse is one audit row for an order.
type OrderHistoryEntryResponse struct {
	ID         string             `json:"id"`
	FromStatus domain.OrderStatus `json:"from_status"`
	ToStatus   domain.OrderStatus `json:"to_status"`
	ActorID    string             `json:"actor_id"`
	Note       string             `json:"note,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// DailyOrderSummaryResponse aggregates order volume and revenue for one day.
type DailyOrderSummaryResponse struct {
	Day          time.Time `json:"day"`
	OrderCount   int64     `json:"order_count"`
	RevenueCents int64     `json:"revenue_cents"`
}

// NewOrderResponse maps an order and its lines onto the transport view.
func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			MenuItemID:     item.MenuItemID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return OrderResponse{
		ID:              order.ID,
		AccountID:       order.AccountID,
		Type:            order.Type,
		Status:          order.Status,
		TotalCents:      order.TotalCents,
		DeliveryAddress: order.DeliveryAddress,
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}

// NewOrderHistoryEntryResponse maps an audit row onto the transport view.
func NewOrderHistoryEntryResponse(entry *domain.OrderHistoryEntry) OrderHistoryEntryResponse {
	return OrderHistoryEntryResponse{
		ID:         entry.ID,
		FromStatus: entry.FromStatus,
		ToStatus:   entry.ToStatus,
		ActorID:    entry.ActorID,
		Note:       entry.Note,
		CreatedAt:  entry.CreatedAt,
	}
}
