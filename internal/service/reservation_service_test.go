package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
)

type fakeReservationRepo struct {
	reservations map[string]*domain.Reservation
	nextID       int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*domain.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) error {
	f.nextID++
	reservation.ID = fmt.Sprintf("res-%d", f.nextID)
	copied := *reservation
	f.reservations[reservation.ID] = &copied
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *reservation
	return &copied, nil
}

func (f *fakeReservationRepo) ListByAccount(_ context.Context, accountID string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, reservation := range f.reservations {
		if reservation.AccountID == accountID {
			out = append(out, *reservation)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByDay(_ context.Context, day time.Time) ([]domain.Reservation, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var out []domain.Reservation
	for _, reservation := range f.reservations {
		if !reservation.ReservedFor.Before(start) && reservation.ReservedFor.Before(end) {
			out = append(out, *reservation)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	reservation, ok := f.reservations[id]
	if !ok {
		return pgx.ErrNoRows
	}
	reservation.Status = status
	return nil
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	tomorrow := time.Now().AddDate(0, 0, 1)

	t.Run("pending reservation with confirmation code", func(t *testing.T) {
		repo := newFakeReservationRepo()
		dispatcher := events.NewInMemoryDispatcher()
		var published []events.Event
		dispatcher.Subscribe(events.EventReservationCreated, func(_ context.Context, event events.Event) error {
			published = append(published, event)
			return nil
		})
		svc := NewReservationService(repo, dispatcher)

		reservation, err := svc.Create(ctx, "acc-1", 4, tomorrow, "window seat")
		require.NoError(t, err)
		require.Equal(t, domain.ReservationStatusPending, reservation.Status)
		require.NotEmpty(t, reservation.ConfirmationCode)
		require.Len(t, published, 1)
	})

	t.Run("party size bounds", func(t *testing.T) {
		svc := NewReservationService(newFakeReservationRepo(), nil)

		_, err := svc.Create(ctx, "acc-1", 0, tomorrow, "")
		require.Error(t, err)
		_, err = svc.Create(ctx, "acc-1", 21, tomorrow, "")
		require.Error(t, err)
		_, err = svc.Create(ctx, "acc-1", 20, tomorrow, "")
		require.NoError(t, err)
	})

	t.Run("past reservation time", func(t *testing.T) {
		svc := NewReservationService(newFakeReservationRepo(), nil)

		_, err := svc.Create(ctx, "acc-1", 2, time.Now().Add(-time.Hour), "")
		require.Error(t, err)
	})
}

func TestCancelOwnReservation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReservationRepo()
	svc := NewReservationService(repo, nil)

	reservation, err := svc.Create(ctx, "acc-1", 2, time.Now().AddDate(0, 0, 1), "")
	require.NoError(t, err)

	t.Run("foreign reservation looks absent", func(t *testing.T) {
		_, err := svc.CancelOwn(ctx, "acc-2", reservation.ID)
		require.Error(t, err)
	})

	t.Run("owner cancels", func(t *testing.T) {
		cancelled, err := svc.CancelOwn(ctx, "acc-1", reservation.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ReservationStatusCancelled, cancelled.Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		_, err := svc.CancelOwn(ctx, "acc-1", reservation.ID)
		require.Error(t, err)
	})
}

func TestReservationLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReservationRepo()
	svc := NewReservationService(repo, nil)

	reservation, err := svc.Create(ctx, "acc-1", 6, time.Now().AddDate(0, 0, 2), "")
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(ctx, "staff-1", reservation.ID, domain.ReservationStatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, domain.ReservationStatusConfirmed, confirmed.Status)

	// Pending-only moves are no longer available.
	_, err = svc.UpdateStatus(ctx, "staff-1", reservation.ID, domain.ReservationStatusPending)
	require.Error(t, err)

	completed, err := svc.UpdateStatus(ctx, "staff-1", reservation.ID, domain.ReservationStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.ReservationStatusCompleted, completed.Status)
}

func TestListReservationsForDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReservationRepo()
	svc := NewReservationService(repo, nil)

	target := time.Now().AddDate(0, 0, 3)
	_, err := svc.Create(ctx, "acc-1", 2, target, "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "acc-1", 2, target.AddDate(0, 0, 1), "")
	require.NoError(t, err)

	reservations, err := svc.ListForDay(ctx, target)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
}
