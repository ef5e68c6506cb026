package dto

import (
	"time"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// CreateReservationRequest payload for booking a table.
type CreateReservationRequest struct {
	PartySize   int       `json:"party_size"`
	ReservedFor time.Time `json:"reserved_for"`
	Notes       string    `json:"notes"`
}

// UpdateReservationStatusRequest payload for staff status changes.
type UpdateReservationStatusRequest struct {
	Status string `json:"status"`
}

// ReservationResponse response.
type ReservationResponse struct {
	ID               string                   `json:"id"`
	AccountID        string                   `json:"account_id"`
	PartySize        int                      `json:"party_size"`
	ReservedFor      time.Time                `json:"reserved_for"`
	Status           domain.ReservationStatus `json:"status"`
	Notes            string                   `json:"notes,omitempty"`
	ConfirmationCode string                   `json:"confirmation_code"`
	CreatedAt        time.Time                `json:"created_at"`
}

// NewReservationResponse maps a reservation onto the transport view.
func NewReservationResponse(reservation *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               reservation.ID,
		AccountID:        reservation.AccountID,
		PartySize:        reservation.PartySize,
		ReservedFor:      reservation.ReservedFor,
		Status:           reservation.Status,
		Notes:            reservation.Notes,
		ConfirmationCode: reservation.ConfirmationCode,
		CreatedAt:        reservation.CreatedAt,
	}
}
