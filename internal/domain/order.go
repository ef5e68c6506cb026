package domain

import "time"

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderType distinguishes pickup from delivery orders.
type OrderType string

const (
	OrderTypePickup   OrderType = "PICKUP"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// Order is a placed online order. TotalCents is computed server-side from
// menu prices at placement time and never trusted from the client.
type Order struct {
	ID              string
	AccountID       string
	Type            OrderType
	Status          OrderStatus
	TotalCents      int64
	DeliveryAddress *string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is a line on an order. Name and unit price are copied from the
// menu item at placement time so later menu edits do not rewrite history.
type OrderItem struct {
	ID             string
	OrderID        string
	MenuItemID     string
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// OrderHistoryEntry records a status transition for auditing.
type OrderHistoryEntry struct {
	ID         string
	OrderID    string
	FromStatus OrderStatus
	ToStatus   OrderStatus
	ActorID    string
	Note       string
	CreatedAt  time.Time
}
