package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// DailyOrderSummary aggregates order volume and revenue for one day.
type DailyOrderSummary struct {
	Day          time.Time
	OrderCount   int64
	RevenueCents int64
}

// OrderRepository encapsulates order persistence. Create writes the order
// header and its lines in a single transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus, limit, offset int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	DailySummary(ctx context.Context, from, to time.Time) ([]DailyOrderSummary, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO orders (account_id, type, status, total_cents, delivery_address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, orderQuery,
		order.AccountID,
		order.Type,
		order.Status,
		order.TotalCents,
		order.DeliveryAddress,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price_cents)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery,
			item.OrderID,
			item.MenuItemID,
			item.Name,
			item.Quantity,
			item.UnitPriceCents,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const orderColumns = `id, account_id, type, status, total_cents, delivery_address, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.AccountID,
		&order.Type,
		&order.Status,
		&order.TotalCents,
		&order.DeliveryAddress,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const query = `
        SELECT ` + orderColumns + `
        FROM orders WHERE id=$1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Order, error) {
	const query = `
        SELECT ` + orderColumns + `
        FROM orders WHERE account_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	return r.queryOrders(ctx, query, accountID, normalizeLimit(limit), offset)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	const query = `
        SELECT ` + orderColumns + `
        FROM orders WHERE status=$1 ORDER BY created_at LIMIT $2 OFFSET $3`

	return r.queryOrders(ctx, query, status, normalizeLimit(limit), offset)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const query = `
        UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) DailySummary(ctx context.Context, from, to time.Time) ([]DailyOrderSummary, error) {
	const query = `
        SELECT date_trunc('day', created_at) AS day, COUNT(*), COALESCE(SUM(total_cents), 0)
        FROM orders
        WHERE created_at >= $1 AND created_at < $2 AND status <> $3
        GROUP BY day ORDER BY day`

	rows, err := r.pool.Query(ctx, query, from, to, domain.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []DailyOrderSummary
	for rows.Next() {
		var summary DailyOrderSummary
		if err := rows.Scan(&summary.Day, &summary.OrderCount, &summary.RevenueCents); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	const query = `
        SELECT id, order_id, menu_item_id, name, quantity, unit_price_cents
        FROM order_items WHERE order_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = order.Items[:0]
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.Name,
			&item.Quantity,
			&item.UnitPriceCents,
		); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}
