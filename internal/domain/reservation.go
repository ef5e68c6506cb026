package domain

import "time"

// ReservationStatus enumerates reservation lifecycle states.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

// Reservation models a table booking made by a customer.
type Reservation struct {
	ID               string
	AccountID        string
	PartySize        int
	ReservedFor      time.Time
	Status           ReservationStatus
	Notes            string
	ConfirmationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
