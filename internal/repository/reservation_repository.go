package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// ReservationRepository defines persistence access for table bookings.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Reservation, error)
	ListByDay(ctx context.Context, day time.Time) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

type reservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository returns a Postgres-backed implementation.
func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &reservationRepository{pool: pool}
}

const reservationColumns = `id, account_id, party_size, reserved_for, status, notes, confirmation_code, created_at, updated_at`

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := row.Scan(
		&reservation.ID,
		&reservation.AccountID,
		&reservation.PartySize,
		&reservation.ReservedFor,
		&reservation.Status,
		&reservation.Notes,
		&reservation.ConfirmationCode,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	const query = `
        INSERT INTO reservations (account_id, party_size, reserved_for, status, notes, confirmation_code)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		reservation.AccountID,
		reservation.PartySize,
		reservation.ReservedFor,
		reservation.Status,
		reservation.Notes,
		reservation.ConfirmationCode,
	).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	const query = `
        SELECT ` + reservationColumns + `
        FROM reservations WHERE id=$1`

	return scanReservation(r.pool.QueryRow(ctx, query, id))
}

func (r *reservationRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Reservation, error) {
	const query = `
        SELECT ` + reservationColumns + `
        FROM reservations WHERE account_id=$1 ORDER BY reserved_for DESC`

	return r.queryReservations(ctx, query, accountID)
}

func (r *reservationRepository) ListByDay(ctx context.Context, day time.Time) ([]domain.Reservation, error) {
	const query = `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE reserved_for >= $1 AND reserved_for < $2
        ORDER BY reserved_for`

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.queryReservations(ctx, query, start, start.Add(24*time.Hour))
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	const query = `
        UPDATE reservations SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *reservation)
	}
	return reservations, rows.Err()
}
