package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// OrderHistoryRepository records order status transitions for auditing.
type OrderHistoryRepository interface {
	Insert(ctx context.Context, entry *domain.OrderHistoryEntry) error
	ListByOrder(ctx context.Context, orderID string) ([]domain.OrderHistoryEntry, error)
}

type orderHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewOrderHistoryRepository instantiates repository.
func NewOrderHistoryRepository(pool *pgxpool.Pool) OrderHistoryRepository {
	return &orderHistoryRepository{pool: pool}
}

func (r *orderHistoryRepository) Insert(ctx context.Context, entry *domain.OrderHistoryEntry) error {
	const query = `
        INSERT INTO order_history (order_id, from_status, to_status, actor_id, note)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.OrderID,
		entry.FromStatus,
		entry.ToStatus,
		entry.ActorID,
		entry.Note,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *orderHistoryRepository) ListByOrder(ctx context.Context, orderID string) ([]domain.OrderHistoryEntry, error) {
	const query = `
        SELECT id, order_id, from_status, to_status, actor_id, note, created_at
        FROM order_history WHERE order_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.OrderHistoryEntry
	for rows.Next() {
		var entry domain.OrderHistoryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.OrderID,
			&entry.FromStatus,
			&entry.ToStatus,
			&entry.ActorID,
			&entry.Note,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
