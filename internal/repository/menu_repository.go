package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// MenuRepository defines persistence access for categories and items.
type MenuRepository interface {
	ListCategories(ctx context.Context) ([]domain.MenuCategory, error)
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error)
	ListItemsByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error)
	CreateCategory(ctx context.Context, category *domain.MenuCategory) error
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id string) error
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

const menuItemColumns = `id, category_id, name, description, price_cents, available, image_url, created_at, updated_at`

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Description,
		&item.PriceCents,
		&item.Available,
		&item.ImageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]domain.MenuCategory, error) {
	const query = `
        SELECT id, name, position, created_at, updated_at
        FROM menu_categories ORDER BY position, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.MenuCategory
	for rows.Next() {
		var category domain.MenuCategory
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Position,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *menuRepository) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT ` + menuItemColumns + `
        FROM menu_items ORDER BY name`

	return r.queryItems(ctx, query)
}

func (r *menuRepository) GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const query = `
        SELECT ` + menuItemColumns + `
        FROM menu_items WHERE id=$1`

	return scanMenuItem(r.pool.QueryRow(ctx, query, id))
}

func (r *menuRepository) ListItemsByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	const query = `
        SELECT ` + menuItemColumns + `
        FROM menu_items WHERE id = ANY($1)`

	return r.queryItems(ctx, query, ids)
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *domain.MenuCategory) error {
	const query = `
        INSERT INTO menu_categories (name, position)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		category.Name,
		category.Position,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *menuRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (category_id, name, description, price_cents, available, image_url)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.CategoryID,
		item.Name,
		item.Description,
		item.PriceCents,
		item.Available,
		item.ImageURL,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        UPDATE menu_items
        SET category_id=$1, name=$2, description=$3, price_cents=$4, available=$5, image_url=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		item.CategoryID,
		item.Name,
		item.Description,
		item.PriceCents,
		item.Available,
		item.ImageURL,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM menu_items WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *menuRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
