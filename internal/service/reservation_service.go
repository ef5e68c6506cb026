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

const maxPartySize = 20

// ReservationService coordinates bookings for customers and the floor staff.
type ReservationService struct {
	repo       repository.ReservationRepository
	dispatcher events.Dispatcher
}

// NewReservationService builds the service.
func NewReservationService(repo repository.ReservationRepository, dispatcher events.Dispatcher) *ReservationService {
	return &ReservationService{repo: repo, dispatcher: dispatcher}
}

// Create books a table for the calling customer.
func (s *ReservationService) Create(ctx context.Context, accountID string, partySize int, reservedFor time.Time, notes string) (*domain.Reservation, error) {
	if partySize < 1 || partySize > maxPartySize {
		return nil, apperrors.NewValidationError("party size must be between 1 and 20", nil)
	}
	if reservedFor.Before(time.Now()) {
		return nil, apperrors.NewValidationError("reservation time must be in the future", nil)
	}

	reservation := &domain.Reservation{
		AccountID:        accountID,
		PartySize:        partySize,
		ReservedFor:      reservedFor,
		Status:           domain.ReservationStatusPending,
		Notes:            notes,
		ConfirmationCode: uuid.NewString(),
	}
	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventReservationCreated,
		ActorID:   accountID,
		Timestamp: time.Now(),
		Payload: events.ReservationCreatedPayload{
			ReservationID: reservation.ID,
			PartySize:     reservation.PartySize,
			ReservedFor:   reservation.ReservedFor,
		},
	})
	return reservation, nil
}

// ListOwn returns the caller's reservations, newest first.
func (s *ReservationService) ListOwn(ctx context.Context, accountID string) ([]domain.Reservation, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

// CancelOwn cancels one of the caller's reservations. Reservations owned by
// someone else are reported as not found rather than forbidden.
func (s *ReservationService) CancelOwn(ctx context.Context, accountID, reservationID string) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.AccountID != accountID {
		return nil, apperrors.NewNotFound("reservation", nil)
	}
	return s.transition(ctx, reservation, domain.ReservationStatusCancelled, accountID)
}

// ListForDay returns every reservation for the given calendar day.
func (s *ReservationService) ListForDay(ctx context.Context, day time.Time) ([]domain.Reservation, error) {
	return s.repo.ListByDay(ctx, day)
}

// UpdateStatus moves a reservation through its lifecycle on behalf of staff.
func (s *ReservationService) UpdateStatus(ctx context.Context, actorID, reservationID string, status domain.ReservationStatus) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, reservation, status, actorID)
}

var reservationTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationStatusPending:   {domain.ReservationStatusConfirmed, domain.ReservationStatusCancelled},
	domain.ReservationStatusConfirmed: {domain.ReservationStatusCompleted, domain.ReservationStatusCancelled},
}

func (s *ReservationService) transition(ctx context.Context, reservation *domain.Reservation, to domain.ReservationStatus, actorID string) (*domain.Reservation, error) {
	allowed := false
	for _, next := range reservationTransitions[reservation.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apperrors.NewValidationError("illegal reservation status transition", map[string]any{
			"from": reservation.Status,
			"to":   to,
		})
	}

	if err := s.repo.UpdateStatus(ctx, reservation.ID, to); err != nil {
		return nil, err
	}

	old := reservation.Status
	reservation.Status = to
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventReservationStatusChanged,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: events.ReservationStatusChangedPayload{
			ReservationID: reservation.ID,
			OldStatus:     old,
			NewStatus:     to,
		},
	})
	return reservation, nil
}

func (s *ReservationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
