package events

import (
	"time"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced              EventType = "order_placed"
	EventOrderStatusChanged       EventType = "order_status_changed"
	EventReservationCreated       EventType = "reservation_created"
	EventReservationStatusChanged EventType = "reservation_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID    string           `json:"order_id"`
	Type       domain.OrderType `json:"type"`
	TotalCents int64            `json:"total_cents"`
	ItemCount  int              `json:"item_count"`
}

// OrderStatusChangedPayload payload.
type OrderStatusChangedPayload struct {
	OrderID   string             `json:"order_id"`
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
	Note      string             `json:"note,omitempty"`
}

// ReservationCreatedPayload payload.
type ReservationCreatedPayload struct {
	ReservationID string    `json:"reservation_id"`
	PartySize     int       `json:"party_size"`
	ReservedFor   time.Time `json:"reserved_for"`
}

// ReservationStatusChangedPayload payload.
type ReservationStatusChangedPayload struct {
	ReservationID string                   `json:"reservation_id"`
	OldStatus     domain.ReservationStatus `json:"old_status"`
	NewStatus     domain.ReservationStatus `json:"new_status"`
}
